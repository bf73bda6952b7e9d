// Package storage provides order persistence implementations.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
)

// Compile-time interface check.
var _ domain.OrderStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory order store. Safe for concurrent access.
// Orders are copied on the way in and out, so callers never share state
// with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	log    *logger.Logger
}

// NewMemoryStore creates an in-memory store holding the given orders.
func NewMemoryStore(log *logger.Logger, seed ...*domain.Order) *MemoryStore {
	s := &MemoryStore{
		orders: make(map[string]*domain.Order, len(seed)),
		log:    log,
	}
	for _, o := range seed {
		s.orders[o.ID] = clone(o)
	}
	return s
}

// Save persists an order. Overwrites if it already exists.
func (s *MemoryStore) Save(ctx context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving order %s (customer=%s, status=%s)", order.ID, order.CustomerName, order.Status)
	s.orders[order.ID] = clone(order)
	return nil
}

// Load retrieves an order by ID.
func (s *MemoryStore) Load(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		s.log.Debug("order not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return clone(o), nil
}

// Delete removes an order by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.orders, id)
	s.log.Debug("deleted order %s", id)
	return nil
}

// List returns every order, oldest first.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, clone(o))
	}
	sortByCreated(out)
	s.log.Debug("listing orders, count=%d", len(out))
	return out, nil
}

func sortByCreated(orders []*domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		return orders[i].ID < orders[j].ID
	})
}

func clone(o *domain.Order) *domain.Order {
	c := *o
	c.Items = append([]domain.LineItem(nil), o.Items...)
	return &c
}
