package clock

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
)

const zoneName = "America/Sao_Paulo"

var (
	weekdays = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}
	months   = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
)

// Location returns the storefront time zone, or a fixed UTC-3 zone when the
// zone database is unavailable.
func Location() *time.Location {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

// Format renders t as the footer text, e.g.
// "📅 segunda-feira, 5 de janeiro de 2026 14:03:09".
func Format(t time.Time) string {
	t = t.In(Location())
	return fmt.Sprintf("📅 %s, %d de %s de %d %02d:%02d:%02d",
		weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year(),
		t.Hour(), t.Minute(), t.Second())
}

// Handler serves the current footer text.
type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/v1/clock", h.getClock)
}

func (h *Handler) getClock(c *fiber.Ctx) error {
	now := h.now()
	return c.JSON(fiber.Map{"text": Format(now), "timestamp": now.UTC()})
}
