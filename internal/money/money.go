package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is prefixed to every formatted amount. Only BRL is supported.
const Symbol = "R$"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders v as pt-BR currency with grouping and two decimals,
// e.g. 1234.5 => "R$ 1.234,50".
func FormatBRL(v float64) string {
	return Symbol + " " + printer.Sprintf("%.2f", v)
}
