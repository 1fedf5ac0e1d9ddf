package order

import (
	"context"
	"sync"
)

// Repository keeps receipts of simulated payments.
type Repository interface {
	Create(ctx context.Context, ord Order) (Order, error)
	Get(ctx context.Context, orderID string) (Order, error)
}

// InMemoryRepository holds receipts for the lifetime of the process.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string]Order)}
}

func (r *InMemoryRepository) Create(_ context.Context, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[ord.OrderID] = ord
	return ord, nil
}

func (r *InMemoryRepository) Get(_ context.Context, orderID string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ord, ok := r.orders[orderID]
	if !ok {
		return Order{}, ErrNotFound
	}
	return ord, nil
}
