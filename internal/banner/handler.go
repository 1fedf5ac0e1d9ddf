package banner

import (
	"github.com/gofiber/fiber/v2"
)

// PageURLFunc resolves the shared page URL for a request.
type PageURLFunc func(c *fiber.Ctx) string

type Handler struct {
	service *Service
	pageURL PageURLFunc
}

func NewHandler(s *Service, pageURL PageURLFunc) *Handler {
	return &Handler{service: s, pageURL: pageURL}
}

func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/v1/share/banner", h.getBanner)
}

func (h *Handler) getBanner(c *fiber.Ctx) error {
	width := c.QueryInt("width", 0)
	url := ""
	if h.pageURL != nil {
		url = h.pageURL(c)
	}
	return c.JSON(h.service.ShareBanner(c.Get(fiber.HeaderUserAgent), width, url))
}
