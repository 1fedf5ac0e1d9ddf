package cart

import "errors"

var (
	// ErrIndexOutOfRange is returned when an index does not address an item
	// of the current snapshot. The cart is left untouched.
	ErrIndexOutOfRange = errors.New("cart: index out of range")
	// ErrCartNotFound is returned for unknown or expired cart sessions.
	ErrCartNotFound = errors.New("cart: session not found")
)

// LineItem is one product entry in the cart. Name is the identity: adding
// the same name again merges into the existing item.
type LineItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Subtotal is Quantity x UnitPrice.
func (li LineItem) Subtotal() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// Snapshot is an immutable copy of the cart contents in display order.
type Snapshot struct {
	Items []LineItem `json:"items"`
}

// Totals is derived from a snapshot and never stored.
type Totals struct {
	Count int     `json:"totalItemCount"`
	Price float64 `json:"totalPrice"`
}

// Totals recomputes the item count and price from the items.
func (s Snapshot) Totals() Totals {
	var t Totals
	for _, it := range s.Items {
		t.Count += it.Quantity
		t.Price += it.Subtotal()
	}
	return t
}

func (s Snapshot) Len() int { return len(s.Items) }

// Observer is notified with a fresh snapshot after every successful mutation.
// Observers run while the store is locked and must not call back into it.
type Observer interface {
	CartChanged(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) CartChanged(s Snapshot) { f(s) }
