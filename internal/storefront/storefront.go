package storefront

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/wichananm65/plant-shop-storefront/internal/cart"
	"github.com/wichananm65/plant-shop-storefront/internal/catalog"
	"github.com/wichananm65/plant-shop-storefront/internal/clock"
	"github.com/wichananm65/plant-shop-storefront/internal/preference"
	"github.com/wichananm65/plant-shop-storefront/internal/share"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// Page is everything the storefront page shows on first paint.
type Page struct {
	CartID      string
	Preferences preference.Preferences
	ThemeClass  string
	ThemeIcon   string
	Cart        template.HTML
	Catalog     template.HTML
	Clock       string
	Share       share.Links
	QR          share.Result

	// Generated links use schemes html/template would otherwise reject.
	QRSrc        template.URL
	SMSLink      template.URL
	WhatsAppLink template.URL
	Installments []int
}

const maxInstallments = 12

// Build assembles the page view. Fragments are rendered by their own
// packages and embedded as trusted HTML.
func Build(sess *cart.Session, prefs preference.Preferences, grid catalog.GridView, links share.Links, qr share.Result, now time.Time) (Page, error) {
	cartHTML, err := sess.Renderer.HTML()
	if err != nil {
		return Page{}, err
	}
	catalogHTML, err := catalog.RenderHTML(grid)
	if err != nil {
		return Page{}, err
	}
	return Page{
		CartID:      sess.ID,
		Preferences: prefs,
		ThemeClass:  preference.ThemeBodyClass(prefs.ThemeEnabled),
		ThemeIcon:   preference.ThemeIcon(prefs.ThemeEnabled),
		Cart:        template.HTML(cartHTML),
		Catalog:     template.HTML(catalogHTML),
		Clock:       clock.Format(now),
		Share:       links,
		QR:          qr,

		QRSrc:        template.URL(qr.Src),
		SMSLink:      template.URL(links.SMS),
		WhatsAppLink: template.URL(links.WhatsApp),
		Installments: installments(),
	}, nil
}

func installments() []int {
	out := make([]int, maxInstallments)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func Render(p Page) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page", p); err != nil {
		return "", err
	}
	return buf.String(), nil
}
