package order

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

const maxInstallments = 12

// Validate checks the payment form the way the masked inputs shape it:
// "1234 5678 ..." card numbers, "MM/YY" expiry, digit-only CVV.
func (p Payment) Validate(now time.Time) error {
	fields := map[string]string{}

	switch p.Type {
	case Credit, Debit:
	default:
		fields["paymentType"] = "must be credito or debito"
	}
	if p.Installments < 1 || p.Installments > maxInstallments {
		fields["installments"] = "must be between 1 and 12"
	} else if p.Type == Debit && p.Installments != 1 {
		fields["installments"] = "debit is paid in 1x"
	}

	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) < 13 || len(digits) > 19 || !allDigits(digits) {
		fields["cardNumber"] = "must have 13 to 19 digits"
	}
	if !validExpiry(p.Expiry, now) {
		fields["expiry"] = "must be a future MM/YY date"
	}
	if len(p.CVV) < 3 || len(p.CVV) > 4 || !allDigits(p.CVV) {
		fields["cvv"] = "must have 3 or 4 digits"
	}
	if strings.TrimSpace(p.CardName) == "" {
		fields["cardName"] = "is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (p Payment) last4() string {
	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// validExpiry accepts MM/YY not earlier than the current month.
func validExpiry(v string, now time.Time) bool {
	mm, yy, ok := strings.Cut(v, "/")
	if !ok || len(mm) != 2 || len(yy) != 2 {
		return false
	}
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(yy)
	if err != nil {
		return false
	}
	year += 2000
	return year > now.Year() || (year == now.Year() && month >= int(now.Month()))
}
