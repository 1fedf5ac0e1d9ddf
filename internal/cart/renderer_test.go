package cart

import (
	"strings"
	"testing"
)

func TestProject_Empty(t *testing.T) {
	v := Project(Snapshot{})
	if v.Badge.Visible {
		t.Fatalf("badge must be hidden for an empty cart")
	}
	if !v.Empty || v.EmptyMessage != EmptyMessage {
		t.Fatalf("expected empty placeholder, got %+v", v)
	}
	if v.CheckoutEnabled {
		t.Fatalf("checkout must be disabled for an empty cart")
	}
	if v.TotalDisplay != "R$ 0,00" {
		t.Fatalf("unexpected total %q", v.TotalDisplay)
	}
}

func TestProject_Rows(t *testing.T) {
	v := Project(Snapshot{Items: []LineItem{
		{Name: "Samambaia", UnitPrice: 49.9, Quantity: 2},
		{Name: "Vaso", UnitPrice: 1200, Quantity: 1},
	}})
	if !v.Badge.Visible || v.Badge.Count != 3 {
		t.Fatalf("unexpected badge %+v", v.Badge)
	}
	if !v.CheckoutEnabled || v.Empty {
		t.Fatalf("expected checkout enabled for a non-empty cart")
	}
	if len(v.Rows) != 2 || v.Rows[0].Name != "Samambaia" || v.Rows[1].Index != 1 {
		t.Fatalf("unexpected rows %+v", v.Rows)
	}
	if v.Rows[0].SubtotalDisplay != "R$ 99,80" {
		t.Fatalf("unexpected subtotal %q", v.Rows[0].SubtotalDisplay)
	}
	if v.TotalDisplay != "R$ 1.299,80" {
		t.Fatalf("unexpected total %q", v.TotalDisplay)
	}
}

func TestRenderer_FollowsStore(t *testing.T) {
	s := NewStore()
	r := NewRenderer()
	s.Subscribe(r)

	s.Add("Samambaia", 20)
	if got := r.View().Badge.Count; got != 1 {
		t.Fatalf("expected badge 1, got %d", got)
	}

	html, err := r.HTML()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "Samambaia") || !strings.Contains(html, "R$ 20,00 cada") {
		t.Fatalf("row missing from fragment: %s", html)
	}
	if strings.Contains(html, "disabled") {
		t.Fatalf("checkout should be enabled: %s", html)
	}

	s.Clear()
	html, _ = r.HTML()
	if !strings.Contains(html, EmptyMessage) || !strings.Contains(html, "disabled") {
		t.Fatalf("expected empty placeholder and disabled checkout: %s", html)
	}
	if !strings.Contains(html, `cart-count hidden`) {
		t.Fatalf("expected hidden badge: %s", html)
	}
}

func TestRenderHTML_EscapesNames(t *testing.T) {
	html, err := RenderHTML(Project(Snapshot{Items: []LineItem{{Name: "<b>x</b>", UnitPrice: 1, Quantity: 1}}}))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(html, "<b>x</b>") {
		t.Fatalf("expected name to be escaped: %s", html)
	}
}
