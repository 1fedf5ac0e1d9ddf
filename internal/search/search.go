package search

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/wichananm65/plant-shop-storefront/internal/catalog"
)

const (
	MinLength = 2
	MaxLength = 50
)

var (
	ErrEmpty    = errors.New("⚠️ Por favor, digite um termo para pesquisar.")
	ErrTooShort = errors.New("⚠️ Digite pelo menos 2 caracteres para pesquisar.")
	ErrTooLong  = errors.New("⚠️ O termo de pesquisa é muito longo. Máximo 50 caracteres.")
)

// Validate trims the term and checks its length in characters. The returned
// error text is the message shown next to the search field.
func Validate(input string) (string, error) {
	term := strings.TrimSpace(input)
	n := utf8.RuneCountInString(term)
	switch {
	case n == 0:
		return "", ErrEmpty
	case n < MinLength:
		return term, ErrTooShort
	case n > MaxLength:
		return term, ErrTooLong
	}
	return term, nil
}

// AcceptedMessage confirms a valid search.
func AcceptedMessage(term string) string {
	return `✅ Pesquisando por: "` + term + `"`
}

// Filter returns the products whose name, category or description contains
// term, case-insensitively, in catalog order.
func Filter(products []catalog.DisplayProduct, term string) []catalog.DisplayProduct {
	needle := strings.ToLower(term)
	out := make([]catalog.DisplayProduct, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}
