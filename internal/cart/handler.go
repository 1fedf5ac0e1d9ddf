package cart

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/wichananm65/plant-shop-storefront/internal/visitor"
)

// Handler exposes the page-session cart over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/v1/cart/:cartId", h.getCart)
	app.Get("/cart/:cartId", h.getCartFragment)
	app.Post("/api/v1/cart/:cartId/items", h.addItem)
	app.Patch("/api/v1/cart/:cartId/items/:index", h.adjustItem)
	app.Delete("/api/v1/cart/:cartId/items/:index", h.removeItem)
	app.Delete("/api/v1/cart/:cartId", h.clearCart)
}

type addRequest struct {
	Name      string  `json:"name" form:"name"`
	Price     float64 `json:"price" form:"price"`
	Confirmed bool    `json:"confirmed" form:"confirmed"`
}

type adjustRequest struct {
	Delta int `json:"delta" form:"delta"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	view, err := h.service.View(c.Params("cartId"))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

func (h *Handler) getCartFragment(c *fiber.Ctx) error {
	view, err := h.service.View(c.Params("cartId"))
	if err != nil {
		return cartError(c, err)
	}
	html, err := RenderHTML(view)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	// form values alias the request buffer; the name outlives the request
	payload.Name = utils.CopyString(strings.TrimSpace(payload.Name))
	if payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required"})
	}
	if payload.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price must not be negative"})
	}

	// counting clicks needs a visitor; without one the count is not persisted
	visitorID, _ := visitor.IDFromCtx(c)
	res, err := h.service.Add(c.UserContext(), c.Params("cartId"), visitorID, payload.Name, payload.Price, payload.Confirmed)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) adjustItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid index"})
	}
	payload := new(adjustRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	view, err := h.service.AdjustQuantity(c.Params("cartId"), index, payload.Delta)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid index"})
	}
	view, err := h.service.Remove(c.Params("cartId"), index)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	view, err := h.service.Clear(c.Params("cartId"))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(view)
}

func cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrCartNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart not found"})
	case errors.Is(err, ErrIndexOutOfRange):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
