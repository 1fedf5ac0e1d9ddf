package search

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/plant-shop-storefront/internal/catalog"
)

// Catalog provides the products searched over.
type Catalog interface {
	Snapshot() catalog.Snapshot
}

type Handler struct {
	catalog Catalog
}

func NewHandler(c Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/v1/search", h.search)
}

type response struct {
	Valid    bool                     `json:"valid"`
	Term     string                   `json:"term,omitempty"`
	Message  string                   `json:"message"`
	Products []catalog.DisplayProduct `json:"products"`
}

func (h *Handler) search(c *fiber.Ctx) error {
	term, err := Validate(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response{
			Term:     term,
			Message:  err.Error(),
			Products: []catalog.DisplayProduct{},
		})
	}
	return c.JSON(response{
		Valid:    true,
		Term:     term,
		Message:  AcceptedMessage(term),
		Products: Filter(h.catalog.Snapshot().Products, term),
	})
}
