package search

import (
	"errors"
	"strings"
	"testing"

	"github.com/wichananm65/plant-shop-storefront/internal/catalog"
)

func TestValidate_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"blank", "   ", ErrEmpty},
		{"one char", "a", ErrTooShort},
		{"two chars", "ab", nil},
		{"fifty chars", strings.Repeat("x", 50), nil},
		{"fifty one chars", strings.Repeat("x", 51), ErrTooLong},
		{"multibyte counted as chars", strings.Repeat("ç", 50), nil},
		{"padded", "  ab  ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate(%q) = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestAcceptedMessage(t *testing.T) {
	term, err := Validate("  samambaia ")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := AcceptedMessage(term); got != `✅ Pesquisando por: "samambaia"` {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFilter(t *testing.T) {
	products := []catalog.DisplayProduct{
		{ID: 1, Name: "Jaqueta Masculina", Category: "Roupas Masculinas"},
		{ID: 2, Name: "SSD Interno", Category: "Eletrônicos", Description: "Armazenamento confiável"},
		{ID: 3, Name: "Pulseira", Category: "Joias"},
	}
	got := Filter(products, "masculin")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected result %+v", got)
	}
	if got := Filter(products, "ARMAZENAMENTO"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected description match, got %+v", got)
	}
	if got := Filter(products, "vaso"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %+v", got)
	}
}
