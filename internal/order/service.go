package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wichananm65/plant-shop-storefront/internal/cart"
)

// Carts is the part of the cart workflow checkout needs.
type Carts interface {
	Drain(cartID string, commit func(cart.Snapshot) error) (cart.CartView, error)
}

// Receipt is returned by a successful checkout.
type Receipt struct {
	Order        Order         `json:"order"`
	Notification string        `json:"notification"`
	Cart         cart.CartView `json:"cart"`
}

// Service runs the simulated payment path.
type Service struct {
	repo   Repository
	carts  Carts
	logger *zap.Logger
	now    func() time.Time
}

func NewService(r Repository, carts Carts, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: r, carts: carts, logger: logger, now: time.Now}
}

// SuccessNotification is the toast shown once the payment went through.
func SuccessNotification(p PaymentType, installments int) string {
	return fmt.Sprintf("Pagamento processado com sucesso! %s em %dx", p.Label(), installments)
}

// Checkout validates the payment, records a receipt and clears the cart.
// No payment provider is contacted.
func (s *Service) Checkout(ctx context.Context, cartID string, p Payment) (Receipt, error) {
	now := s.now()
	var created Order
	view, err := s.carts.Drain(cartID, func(snap cart.Snapshot) error {
		if snap.Len() == 0 {
			return ErrEmptyCart
		}
		if err := p.Validate(now); err != nil {
			return err
		}
		totals := snap.Totals()
		o, err := s.repo.Create(ctx, Order{
			OrderID:      uuid.NewString(),
			Items:        snap.Items,
			Quantity:     totals.Count,
			TotalPrice:   totals.Price,
			PaymentType:  p.Type,
			Installments: p.Installments,
			CardLast4:    p.last4(),
			Status:       StatusPaid,
			CreatedAt:    now.UTC(),
		})
		if err != nil {
			return fmt.Errorf("order: record receipt: %w", err)
		}
		created = o
		return nil
	})
	if err != nil {
		return Receipt{}, err
	}
	s.logger.Info("order: payment simulated",
		zap.String("order", created.OrderID),
		zap.Int("quantity", created.Quantity),
		zap.Float64("total", created.TotalPrice))

	return Receipt{
		Order:        created,
		Notification: SuccessNotification(p.Type, p.Installments),
		Cart:         view,
	}, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (Order, error) {
	return s.repo.Get(ctx, orderID)
}
