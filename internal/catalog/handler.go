package catalog

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/catalog", h.getCatalogFragment)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	snap := h.service.Snapshot()
	if snap.Err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":  ErrorMessage,
			"products": []DisplayProduct{},
		})
	}
	products := snap.Products
	if products == nil {
		products = []DisplayProduct{}
	}
	return c.JSON(fiber.Map{"products": products, "fetchedAt": snap.FetchedAt})
}

func (h *Handler) getCatalogFragment(c *fiber.Ctx) error {
	html, err := RenderHTML(h.service.View())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}
