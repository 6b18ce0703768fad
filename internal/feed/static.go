package feed

import (
	"context"
	"sync"

	"github.com/liwesley02/order-up/internal/model"
)

// StaticFeed serves a fixed snapshot that can be swapped at runtime. It
// backs tests and the import command's replay loop.
type StaticFeed struct {
	mu     sync.RWMutex
	orders []model.Order
	err    error
}

// NewStaticFeed creates a feed preloaded with the given orders.
func NewStaticFeed(orders []model.Order) *StaticFeed {
	f := &StaticFeed{}
	f.SetOrders(orders)
	return f
}

// SetOrders replaces the snapshot served by subsequent Fetch calls.
func (f *StaticFeed) SetOrders(orders []model.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = make([]model.Order, len(orders))
	for i := range orders {
		f.orders[i] = orders[i].Clone()
	}
}

// SetError makes subsequent Fetch calls fail with err until cleared.
func (f *StaticFeed) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Fetch returns a copy of the current snapshot.
func (f *StaticFeed) Fetch(ctx context.Context) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.err != nil {
		return nil, f.err
	}

	orders := make([]model.Order, len(f.orders))
	for i := range f.orders {
		orders[i] = f.orders[i].Clone()
	}
	return orders, nil
}
