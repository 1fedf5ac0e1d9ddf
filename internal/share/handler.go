package share

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves share payloads for the storefront page.
type Handler struct {
	publicURL string
	encoder   Encoder
	logger    *zap.Logger
}

func NewHandler(publicURL string, enc Encoder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{publicURL: publicURL, encoder: enc, logger: logger}
}

func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/v1/share", h.getShare)
	app.Get("/share/qr.png", h.getQRImage)
}

// PageURL is the URL shared for a request.
func (h *Handler) PageURL(c *fiber.Ctx) string {
	path := c.Query("path", "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return URLFor(h.publicURL, c.BaseURL()+path)
}

type shareResponse struct {
	Links
	QR        Result            `json:"qr"`
	Clipboard map[string]string `json:"clipboardMessages"`
}

func (h *Handler) getShare(c *fiber.Ctx) error {
	pageURL := h.PageURL(c)
	qr := QRCode(pageURL, h.encoder)
	if qr.Source != SourceLocal {
		h.logger.Warn("share: local qr unavailable", zap.String("source", qr.Source), zap.Strings("errors", qr.Errors))
	}
	return c.JSON(shareResponse{
		Links: BuildLinks(pageURL),
		QR:    qr,
		Clipboard: map[string]string{
			"success":  CopiedMessage,
			"fallback": CopiedFallbackMessage,
			"failure":  CopyFailedMessage,
		},
	})
}

// getQRImage renders the PNG locally and falls back to the remote image.
func (h *Handler) getQRImage(c *fiber.Ctx) error {
	pageURL := h.PageURL(c)
	if h.encoder != nil {
		png, err := h.encoder.PNG(pageURL, QRSize)
		if err == nil {
			c.Set(fiber.HeaderCacheControl, "public, max-age=300")
			c.Type("png")
			return c.Send(png)
		}
		h.logger.Warn("share: render qr", zap.Error(err))
	}
	return c.Redirect(RemoteQRURL(pageURL), fiber.StatusFound)
}
