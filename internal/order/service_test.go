package order

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/wichananm65/plant-shop-storefront/internal/cart"
)

func validPayment() Payment {
	return Payment{
		Type:         Credit,
		Installments: 3,
		CardNumber:   "4111 1111 1111 1111",
		Expiry:       "12/99",
		CVV:          "123",
		CardName:     "Maria Silva",
	}
}

func newCheckout() (*Service, *cart.Service) {
	carts := cart.NewService(cart.NewRegistry(time.Hour), nil, nil)
	return NewService(NewInMemoryRepository(), carts, nil), carts
}

func TestCheckout_ClearsCart(t *testing.T) {
	svc, carts := newCheckout()
	sess := carts.Registry().Open()
	sess.Store.Add("Plant A", 20)
	sess.Store.Add("Plant A", 20)

	receipt, err := svc.Checkout(context.Background(), sess.ID, validPayment())
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if got := sess.Store.Totals(); got.Count != 0 || got.Price != 0 {
		t.Fatalf("expected totals (0,0), got %+v", got)
	}
	if !receipt.Cart.Empty {
		t.Fatalf("expected empty cart view in receipt")
	}
	if receipt.Order.Quantity != 2 || receipt.Order.TotalPrice != 40 || receipt.Order.CardLast4 != "1111" {
		t.Fatalf("unexpected receipt %+v", receipt.Order)
	}
	if receipt.Notification != "Pagamento processado com sucesso! Crédito em 3x" {
		t.Fatalf("unexpected notification %q", receipt.Notification)
	}

	stored, err := svc.Get(context.Background(), receipt.Order.OrderID)
	if err != nil || stored.Status != StatusPaid {
		t.Fatalf("expected stored receipt, got %+v %v", stored, err)
	}
}

func TestCheckout_RejectsEmptyCartAndBadPayment(t *testing.T) {
	svc, carts := newCheckout()
	sess := carts.Registry().Open()

	if _, err := svc.Checkout(context.Background(), sess.ID, validPayment()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	sess.Store.Add("Plant A", 20)
	bad := validPayment()
	bad.CVV = "12a"
	_, err := svc.Checkout(context.Background(), sess.ID, bad)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Fields["cvv"] == "" {
		t.Fatalf("expected cvv validation error, got %v", err)
	}
	if sess.Store.Snapshot().Len() != 1 {
		t.Fatalf("rejected payment must keep the cart")
	}

	if _, err := svc.Checkout(context.Background(), "missing", validPayment()); !errors.Is(err, cart.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestPayment_Validate(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		edit  func(*Payment)
		field string
	}{
		{"ok", func(*Payment) {}, ""},
		{"unknown type", func(p *Payment) { p.Type = "pix" }, "paymentType"},
		{"too many installments", func(p *Payment) { p.Installments = 13 }, "installments"},
		{"debit in installments", func(p *Payment) { p.Type = Debit }, "installments"},
		{"short card", func(p *Payment) { p.CardNumber = "4111 1111" }, "cardNumber"},
		{"expired", func(p *Payment) { p.Expiry = "02/26" }, "expiry"},
		{"bad month", func(p *Payment) { p.Expiry = "13/30" }, "expiry"},
		{"current month", func(p *Payment) { p.Expiry = "03/26" }, ""},
		{"blank name", func(p *Payment) { p.CardName = "  " }, "cardName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayment()
			tt.edit(&p)
			err := p.Validate(now)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("expected valid payment, got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Fields[tt.field] == "" {
				t.Fatalf("expected error on %s, got %v", tt.field, err)
			}
		})
	}
}

type failingRepository struct{ *InMemoryRepository }

func (failingRepository) Create(context.Context, Order) (Order, error) {
	return Order{}, errors.New("disk full")
}

func TestCheckout_RepositoryFailureKeepsCart(t *testing.T) {
	carts := cart.NewService(cart.NewRegistry(time.Hour), nil, nil)
	svc := NewService(failingRepository{NewInMemoryRepository()}, carts, nil)
	sess := carts.Registry().Open()
	sess.Store.Add("Plant A", 20)

	if _, err := svc.Checkout(context.Background(), sess.ID, validPayment()); err == nil {
		t.Fatal("expected error when the receipt cannot be recorded")
	}
	if sess.Store.Snapshot().Len() != 1 {
		t.Fatal("cart must be kept when the receipt is not recorded")
	}
}

func TestCheckout_ConcurrentAddsAreNeverLost(t *testing.T) {
	svc, carts := newCheckout()
	sess := carts.Registry().Open()
	sess.Store.Add("seed", 1)

	const adds = 200
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < adds; i++ {
			sess.Store.Add("item-"+strconv.Itoa(i), 1)
		}
	}()
	receipt, err := svc.Checkout(context.Background(), sess.ID, validPayment())
	wg.Wait()
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// every line is either on the receipt or still in the cart, never both
	seen := map[string]int{}
	for _, it := range receipt.Order.Items {
		seen[it.Name]++
	}
	for _, it := range sess.Store.Snapshot().Items {
		seen[it.Name]++
	}
	if len(seen) != adds+1 {
		t.Fatalf("expected %d distinct lines, got %d", adds+1, len(seen))
	}
	for name, n := range seen {
		if n != 1 {
			t.Fatalf("line %q appears %d times", name, n)
		}
	}
}
