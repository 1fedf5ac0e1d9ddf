package banner

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestIsMobile(t *testing.T) {
	tests := []struct {
		ua    string
		width int
		want  bool
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", 0, true},
		{"Mozilla/5.0 (Linux; android 14; Pixel 8)", 1200, true},
		{"Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)", 0, true},
		{"Mozilla/5.0 (X11; Linux x86_64)", 0, false},
		{"Mozilla/5.0 (X11; Linux x86_64)", 768, true},
		{"Mozilla/5.0 (X11; Linux x86_64)", 769, false},
	}
	for _, tt := range tests {
		if got := IsMobile(tt.ua, tt.width); got != tt.want {
			t.Errorf("IsMobile(%q, %d) = %v, want %v", tt.ua, tt.width, got, tt.want)
		}
	}
}

func TestBannerRoute(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(), func(*fiber.Ctx) string { return "https://shop.example.com" }).RegisterRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/share/banner", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPad; CPU OS 17_0)")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"show":true`) || !strings.Contains(string(b), `"delayMs":2000`) {
		t.Fatalf("unexpected banner %s", string(b))
	}

	req = httptest.NewRequest("GET", "/api/v1/share/banner?width=1440", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0)")
	res, _ = app.Test(req)
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"show":false`) {
		t.Fatalf("expected hidden banner on desktop, got %s", string(b))
	}
}
