package order

import (
	"errors"
	"strings"
	"time"

	"github.com/wichananm65/plant-shop-storefront/internal/cart"
)

var (
	ErrEmptyCart = errors.New("order: cart is empty")
	ErrNotFound  = errors.New("order: not found")
)

type PaymentType string

const (
	Credit PaymentType = "credito"
	Debit  PaymentType = "debito"

	StatusPaid = "paid"
)

// Label is the pt-BR name shown to the buyer.
func (p PaymentType) Label() string {
	if p == Credit {
		return "Crédito"
	}
	return "Débito"
}

// Payment is the submitted payment form. Card data is only validated, never
// stored.
type Payment struct {
	Type         PaymentType `json:"paymentType" form:"paymentType"`
	Installments int         `json:"installments" form:"installments"`
	CardNumber   string      `json:"cardNumber" form:"cardNumber"`
	Expiry       string      `json:"expiry" form:"expiry"`
	CVV          string      `json:"cvv" form:"cvv"`
	CardName     string      `json:"cardName" form:"cardName"`
}

// Order is the receipt of a simulated payment.
type Order struct {
	OrderID      string          `json:"orderID"`
	Items        []cart.LineItem `json:"items"`
	Quantity     int             `json:"quantity"`
	TotalPrice   float64         `json:"totalPrice"`
	PaymentType  PaymentType     `json:"paymentType"`
	Installments int             `json:"installments"`
	CardLast4    string          `json:"cardLast4"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ValidationError lists the payment fields that were rejected.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return "order: invalid payment: " + strings.Join(keys, ", ")
}
