package cart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wichananm65/plant-shop-storefront/internal/money"
	"github.com/wichananm65/plant-shop-storefront/internal/preference"
)

// AddResult describes the outcome of an add action. When Confirmed is false
// the cart was not touched and Prompt holds the question to ask the user.
type AddResult struct {
	Confirmed    bool     `json:"confirmed"`
	Prompt       string   `json:"prompt,omitempty"`
	Notification string   `json:"notification,omitempty"`
	ClickCount   int      `json:"clickCount"`
	Cart         CartView `json:"cart"`
}

// Service runs the cart workflows of a page session on top of the registry.
type Service struct {
	registry *Registry
	prefs    *preference.Service
	logger   *zap.Logger
}

func NewService(registry *Registry, prefs *preference.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{registry: registry, prefs: prefs, logger: logger}
}

func (s *Service) Registry() *Registry { return s.registry }

// ConfirmPrompt is the question shown before a product is added.
func ConfirmPrompt(name string, price float64) string {
	return fmt.Sprintf("Deseja adicionar \"%s\" ao carrinho por %s?", name, money.FormatBRL(price))
}

// AddedNotification is the toast shown after a confirmed add.
func AddedNotification(name string) string {
	return name + " foi adicionado ao carrinho."
}

// Add counts the click for the visitor and, only when confirmed, adds the
// product to the cart.
func (s *Service) Add(ctx context.Context, cartID, visitorID, name string, price float64, confirmed bool) (AddResult, error) {
	sess, err := s.registry.Get(cartID)
	if err != nil {
		return AddResult{}, err
	}

	res := AddResult{Confirmed: confirmed}
	if s.prefs != nil {
		res.ClickCount = s.prefs.IncrementClickCounter(ctx, visitorID)
	}

	if !confirmed {
		res.Prompt = ConfirmPrompt(name, price)
		res.Cart = sess.Renderer.View()
		return res, nil
	}

	sess.Store.Add(name, price)
	res.Notification = AddedNotification(name)
	res.Cart = sess.Renderer.View()
	s.logger.Debug("cart: item added", zap.String("cart", cartID), zap.String("name", name))
	return res, nil
}

func (s *Service) AdjustQuantity(cartID string, index, delta int) (CartView, error) {
	sess, err := s.registry.Get(cartID)
	if err != nil {
		return CartView{}, err
	}
	if err := sess.Store.AdjustQuantity(index, delta); err != nil {
		return CartView{}, err
	}
	return sess.Renderer.View(), nil
}

func (s *Service) Remove(cartID string, index int) (CartView, error) {
	sess, err := s.registry.Get(cartID)
	if err != nil {
		return CartView{}, err
	}
	if err := sess.Store.Remove(index); err != nil {
		return CartView{}, err
	}
	return sess.Renderer.View(), nil
}

func (s *Service) Clear(cartID string) (CartView, error) {
	sess, err := s.registry.Get(cartID)
	if err != nil {
		return CartView{}, err
	}
	sess.Store.Clear()
	return sess.Renderer.View(), nil
}

func (s *Service) View(cartID string) (CartView, error) {
	sess, err := s.registry.Get(cartID)
	if err != nil {
		return CartView{}, err
	}
	return sess.Renderer.View(), nil
}

// Drain runs commit over the cart contents and clears the cart in the same
// store operation. Used by checkout so no add slips between the two.
func (s *Service) Drain(cartID string, commit func(Snapshot) error) (CartView, error) {
	sess, err := s.registry.Get(cartID)
	if err != nil {
		return CartView{}, err
	}
	if err := sess.Store.Drain(commit); err != nil {
		return CartView{}, err
	}
	return sess.Renderer.View(), nil
}

// SweepIdle removes expired sessions.
func (s *Service) SweepIdle() {
	if n := s.registry.Sweep(); n > 0 {
		s.logger.Info("cart: swept idle sessions", zap.Int("removed", n), zap.Int("open", s.registry.Len()))
	}
}
