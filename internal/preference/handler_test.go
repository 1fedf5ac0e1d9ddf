package preference

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/plant-shop-storefront/internal/visitor"
)

func makeAppWithPreferenceHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(visitor.Middleware(visitor.Config{Secret: []byte("test")}))
	h.RegisterRoutes(app)
	return app
}

func TestPreferenceRoutes(t *testing.T) {
	app := makeAppWithPreferenceHandler(NewHandler(NewService(NewInMemoryStore(), nil)))

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/preferences", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"themeEnabled":false`) || !strings.Contains(string(b), `"clickCount":0`) {
		t.Fatalf("unexpected defaults %s", string(b))
	}

	// keep the minted visitor cookie for the toggle
	cookie := strings.SplitN(res.Header.Get("Set-Cookie"), ";", 2)[0]
	req := httptest.NewRequest("POST", "/api/v1/preferences/theme", nil)
	req.Header.Set("Cookie", cookie)
	res2, _ := app.Test(req)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on toggle, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"themeEnabled":true`) || !strings.Contains(string(b2), "tema-escuro") {
		t.Fatalf("unexpected toggle body %s", string(b2))
	}

	req3 := httptest.NewRequest("GET", "/api/v1/preferences", nil)
	req3.Header.Set("Cookie", cookie)
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"themeEnabled":true`) {
		t.Fatalf("expected persisted dark theme, got %s", string(b3))
	}
}
