package preference

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/plant-shop-storefront/internal/visitor"
)

// Handler exposes the visitor's persisted scalars.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/v1/preferences", h.getPreferences)
	app.Post("/api/v1/preferences/theme", h.toggleTheme)
}

func (h *Handler) getPreferences(c *fiber.Ctx) error {
	// an unidentified visitor still gets defaults
	id, _ := visitor.IDFromCtx(c)
	return c.JSON(h.service.Load(c.UserContext(), id))
}

func (h *Handler) toggleTheme(c *fiber.Ctx) error {
	id, err := visitor.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "visitor not identified"})
	}
	enabled := h.service.ToggleTheme(c.UserContext(), id)
	return c.JSON(fiber.Map{
		"themeEnabled": enabled,
		"icon":         ThemeIcon(enabled),
		"bodyClass":    ThemeBodyClass(enabled),
	})
}

// ThemeIcon is the toggle glyph: the sun offers light mode while dark is on.
func ThemeIcon(dark bool) string {
	if dark {
		return "☀️"
	}
	return "🌙"
}

// ThemeBodyClass is the class applied to <body> for the dark theme.
func ThemeBodyClass(dark bool) string {
	if dark {
		return "tema-escuro"
	}
	return ""
}
