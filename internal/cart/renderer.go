package cart

import (
	"bytes"
	"embed"
	"html/template"
	"sync"

	"github.com/wichananm65/plant-shop-storefront/internal/money"
)

// EmptyMessage is shown in place of the item list when the cart is empty.
const EmptyMessage = "Seu carrinho está vazio"

//go:embed templates/*.html
var templateFS embed.FS

var cartTemplate = template.Must(template.ParseFS(templateFS, "templates/cart.html"))

type Badge struct {
	Visible bool `json:"visible"`
	Count   int  `json:"count"`
}

type Row struct {
	Index           int     `json:"index"`
	Name            string  `json:"name"`
	UnitPrice       float64 `json:"unitPrice"`
	UnitPriceText   string  `json:"unitPriceDisplay"`
	Quantity        int     `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
	SubtotalDisplay string  `json:"subtotalDisplay"`
}

// CartView is the projection of a snapshot that the page displays.
type CartView struct {
	Badge           Badge   `json:"badge"`
	Empty           bool    `json:"empty"`
	EmptyMessage    string  `json:"emptyMessage,omitempty"`
	Rows            []Row   `json:"rows"`
	CheckoutEnabled bool    `json:"checkoutEnabled"`
	TotalPrice      float64 `json:"totalPrice"`
	TotalDisplay    string  `json:"totalDisplay"`
}

// Project builds the view for s. It is pure.
func Project(s Snapshot) CartView {
	t := s.Totals()
	v := CartView{
		Badge:           Badge{Visible: t.Count > 0, Count: t.Count},
		Empty:           s.Len() == 0,
		Rows:            make([]Row, 0, s.Len()),
		CheckoutEnabled: s.Len() > 0,
		TotalPrice:      t.Price,
		TotalDisplay:    money.FormatBRL(t.Price),
	}
	if v.Empty {
		v.EmptyMessage = EmptyMessage
	}
	for i, it := range s.Items {
		v.Rows = append(v.Rows, Row{
			Index:           i,
			Name:            it.Name,
			UnitPrice:       it.UnitPrice,
			UnitPriceText:   money.FormatBRL(it.UnitPrice),
			Quantity:        it.Quantity,
			Subtotal:        it.Subtotal(),
			SubtotalDisplay: money.FormatBRL(it.Subtotal()),
		})
	}
	return v
}

// Renderer keeps the latest projection of the store it observes. It never
// mutates the store.
type Renderer struct {
	mu   sync.RWMutex
	view CartView
}

func NewRenderer() *Renderer {
	return &Renderer{view: Project(Snapshot{})}
}

func (r *Renderer) CartChanged(s Snapshot) {
	v := Project(s)
	r.mu.Lock()
	r.view = v
	r.mu.Unlock()
}

func (r *Renderer) View() CartView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view
}

// HTML renders the cart panel fragment for the current view.
func (r *Renderer) HTML() (string, error) {
	return RenderHTML(r.View())
}

func RenderHTML(v CartView) (string, error) {
	var buf bytes.Buffer
	if err := cartTemplate.ExecuteTemplate(&buf, "cart", v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
