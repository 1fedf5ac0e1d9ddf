package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/wichananm65/plant-shop-storefront/internal/cart"
)

// Handler delegates checkout to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/api/v1/checkout", h.checkout)
	app.Get("/api/v1/orders/:orderId", h.getOrder)
}

type checkoutRequest struct {
	CartID string `json:"cartId" form:"cartId"`
	Payment
}

// detach copies form values out of the request buffer before they are kept
// in a receipt.
func (r *checkoutRequest) detach() {
	r.CartID = utils.CopyString(r.CartID)
	r.Type = PaymentType(utils.CopyString(string(r.Type)))
	r.CardNumber = utils.CopyString(r.CardNumber)
	r.Expiry = utils.CopyString(r.Expiry)
	r.CVV = utils.CopyString(r.CVV)
	r.CardName = utils.CopyString(r.CardName)
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.detach()
	if payload.CartID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cartId is required"})
	}

	receipt, err := h.service.Checkout(c.UserContext(), payload.CartID, payload.Payment)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payment", "fields": verr.Fields})
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart cannot be empty"})
		case errors.Is(err, cart.ErrCartNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusOK).JSON(receipt)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.Get(c.UserContext(), c.Params("orderId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(ord)
}
