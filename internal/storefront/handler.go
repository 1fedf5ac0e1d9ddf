package storefront

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wichananm65/plant-shop-storefront/internal/cart"
	"github.com/wichananm65/plant-shop-storefront/internal/catalog"
	"github.com/wichananm65/plant-shop-storefront/internal/preference"
	"github.com/wichananm65/plant-shop-storefront/internal/share"
	"github.com/wichananm65/plant-shop-storefront/internal/visitor"
)

// Handler serves the storefront page. Each page load opens a fresh cart.
type Handler struct {
	carts   *cart.Registry
	prefs   *preference.Service
	catalog *catalog.Service
	share   *share.Handler
	encoder share.Encoder
	logger  *zap.Logger
	now     func() time.Time
}

func NewHandler(carts *cart.Registry, prefs *preference.Service, cat *catalog.Service, sh *share.Handler, enc share.Encoder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{carts: carts, prefs: prefs, catalog: cat, share: sh, encoder: enc, logger: logger, now: time.Now}
}

func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.getPage)
	app.Get("/healthz", h.healthz)
}

func (h *Handler) getPage(c *fiber.Ctx) error {
	visitorID, _ := visitor.IDFromCtx(c)
	prefs := h.prefs.Load(c.UserContext(), visitorID)
	sess := h.carts.Open()

	pageURL := h.share.PageURL(c)
	page, err := Build(sess, prefs, h.catalog.View(), share.BuildLinks(pageURL), share.QRCode(pageURL, h.encoder), h.now())
	if err != nil {
		h.logger.Error("storefront: build page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	html, err := Render(page)
	if err != nil {
		h.logger.Error("storefront: render page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (h *Handler) healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "openCarts": h.carts.Len()})
}
