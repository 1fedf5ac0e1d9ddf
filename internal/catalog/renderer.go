package catalog

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"strings"

	"github.com/wichananm65/plant-shop-storefront/internal/money"
)

const (
	PlaceholderImage = "https://via.placeholder.com/500x500?text=Produto"
	EmptyMessage     = "Nenhum produto disponível no momento."
	ErrorMessage     = "Não foi possível carregar produtos da API. Tente novamente mais tarde."

	shortExcerpt = 80
	longExcerpt  = 120
	maxStars     = 5
)

//go:embed templates/*.html
var templateFS embed.FS

var gridTemplate = template.Must(template.ParseFS(templateFS, "templates/catalog.html"))

// CardView is one flip-card: the front summarizes, the back details and
// carries the add control.
type CardView struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	FallbackImage    string  `json:"fallbackImage"`
	Category         string  `json:"category"`
	ShortDescription string  `json:"shortDescription"`
	LongDescription  string  `json:"longDescription"`
	Stars            string  `json:"stars"`
	RatingRate       float64 `json:"ratingRate"`
	RatingCount      int     `json:"ratingCount"`
	Price            float64 `json:"price"`
	PriceDisplay     string  `json:"priceDisplay"`
	AriaLabel        string  `json:"ariaLabel"`
}

// GridView is one render pass. Exactly one of Error, Empty or Cards is shown.
type GridView struct {
	Cards        []CardView `json:"cards"`
	Empty        bool       `json:"empty"`
	EmptyMessage string     `json:"emptyMessage,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// Stars renders round(rate) clamped to [0,5] filled stars followed by the
// empty ones.
func Stars(rate float64) string {
	n := int(math.Round(rate))
	if n < 0 || math.IsNaN(rate) {
		n = 0
	}
	if n > maxStars {
		n = maxStars
	}
	return strings.Repeat("⭐", n) + strings.Repeat("☆", maxStars-n)
}

// excerpt keeps the first n runes and always appends the ellipsis.
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + ellipsis
}

func Card(p DisplayProduct) CardView {
	img := p.Image
	if img == "" {
		img = PlaceholderImage
	}
	return CardView{
		ID:               p.ID,
		Name:             p.Name,
		Image:            img,
		FallbackImage:    PlaceholderImage,
		Category:         p.Category,
		ShortDescription: excerpt(p.Description, shortExcerpt),
		LongDescription:  excerpt(p.Description, longExcerpt),
		Stars:            Stars(p.Rating.Rate),
		RatingRate:       p.Rating.Rate,
		RatingCount:      p.Rating.Count,
		Price:            p.Price,
		PriceDisplay:     money.FormatBRL(p.Price),
		AriaLabel:        "Produto: " + p.Name,
	}
}

// Render projects the products of one fetch. fetchErr, when set, replaces
// the grid with the error panel and no cards.
func Render(products []DisplayProduct, fetchErr error) GridView {
	if fetchErr != nil {
		return GridView{Cards: []CardView{}, Error: ErrorMessage}
	}
	if len(products) == 0 {
		return GridView{Cards: []CardView{}, Empty: true, EmptyMessage: EmptyMessage}
	}
	v := GridView{Cards: make([]CardView, 0, len(products))}
	for _, p := range products {
		v.Cards = append(v.Cards, Card(p))
	}
	return v
}

// RenderHTML writes the product grid fragment.
func RenderHTML(v GridView) (string, error) {
	var buf bytes.Buffer
	if err := gridTemplate.ExecuteTemplate(&buf, "catalog", v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
