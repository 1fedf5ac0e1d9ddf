package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestStars(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0, "☆☆☆☆☆"},
		{2.4, "⭐⭐☆☆☆"},
		{2.5, "⭐⭐⭐☆☆"},
		{4.7, "⭐⭐⭐⭐⭐"},
		{7, "⭐⭐⭐⭐⭐"},
		{-1, "☆☆☆☆☆"},
	}
	for _, tt := range tests {
		if got := Stars(tt.rate); got != tt.want {
			t.Errorf("Stars(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestCard(t *testing.T) {
	desc := strings.Repeat("a", 200)
	c := Card(DisplayProduct{ID: 3, Name: "Vaso", Price: 1234.5, Description: desc, Rating: Rating{Rate: 3.9, Count: 120}})
	if c.Image != PlaceholderImage {
		t.Fatalf("expected placeholder image, got %q", c.Image)
	}
	if c.ShortDescription != strings.Repeat("a", 80)+"..." {
		t.Fatalf("unexpected short description length %d", len(c.ShortDescription))
	}
	if c.LongDescription != strings.Repeat("a", 120)+"..." {
		t.Fatalf("unexpected long description length %d", len(c.LongDescription))
	}
	if c.PriceDisplay != "R$ 1.234,50" || c.Stars != "⭐⭐⭐⭐☆" {
		t.Fatalf("unexpected card %+v", c)
	}
}

func TestRenderHTML_ImageFallsBackOnError(t *testing.T) {
	html, err := RenderHTML(Render([]DisplayProduct{{ID: 1, Name: "Vaso", Image: "https://img.example/broken.jpg"}}, nil))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, `onerror="this.onerror=null;this.src=`) {
		t.Fatalf("expected onerror fallback on product image: %s", html)
	}
	if !strings.Contains(html, "via.placeholder.com") {
		t.Fatalf("expected placeholder as fallback target: %s", html)
	}
	if strings.Contains(html, "ZgotmplZ") {
		t.Fatal("fallback rejected by the template escaper")
	}
}

func TestRender_States(t *testing.T) {
	v := Render(nil, errors.New("status 500"))
	if v.Error != ErrorMessage || len(v.Cards) != 0 {
		t.Fatalf("expected error panel and no cards, got %+v", v)
	}
	html, err := RenderHTML(v)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, ErrorMessage) || strings.Contains(html, "<article") {
		t.Fatalf("unexpected error fragment %s", html)
	}

	v = Render([]DisplayProduct{}, nil)
	if !v.Empty {
		t.Fatalf("expected empty placeholder")
	}
	html, _ = RenderHTML(v)
	if !strings.Contains(html, EmptyMessage) {
		t.Fatalf("expected empty placeholder in %s", html)
	}

	v = Render([]DisplayProduct{{ID: 1, Name: "Samambaia", Price: 20}, {ID: 2, Name: "Ficus", Price: 30}}, nil)
	html, _ = RenderHTML(v)
	if strings.Count(html, "<article") != 2 {
		t.Fatalf("expected two cards in %s", html)
	}
	if !strings.Contains(html, `data-name="Samambaia"`) {
		t.Fatalf("expected add control bound to name in %s", html)
	}
}
