package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
)

// Compile-time interface check.
var _ domain.OrderStore = (*PebbleStore)(nil)

// Orders live under this key prefix, one JSON document per key.
const orderPrefix = "order/"

// PebbleStore keeps orders in an embedded Pebble database on local disk.
type PebbleStore struct {
	db  *pebble.DB
	log *logger.Logger
}

// OpenPebbleStore opens (or creates) the database in dir.
func OpenPebbleStore(dir string, log *logger.Logger) (*PebbleStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("opening order store: %w", err)
	}
	log.Info("order store opened at %s", dir)
	return &PebbleStore{db: db, log: log}, nil
}

// Close flushes and closes the database.
func (p *PebbleStore) Close() error { return p.db.Close() }

func orderKey(id string) []byte { return []byte(orderPrefix + id) }

// Save persists an order. Overwrites if it already exists.
func (p *PebbleStore) Save(ctx context.Context, order *domain.Order) error {
	b, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encoding order %s: %w", order.ID, err)
	}
	if err := p.db.Set(orderKey(order.ID), b, pebble.Sync); err != nil {
		return fmt.Errorf("saving order %s: %w", order.ID, err)
	}
	p.log.Debug("saved order %s (status=%s)", order.ID, order.Status)
	return nil
}

// SaveAll writes many orders in one batch.
func (p *PebbleStore) SaveAll(ctx context.Context, orders []*domain.Order) error {
	wb := p.db.NewBatch()
	defer wb.Close()

	for _, o := range orders {
		b, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("encoding order %s: %w", o.ID, err)
		}
		if err := wb.Set(orderKey(o.ID), b, nil); err != nil {
			return fmt.Errorf("batching order %s: %w", o.ID, err)
		}
	}
	if err := wb.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("committing %d orders: %w", len(orders), err)
	}
	p.log.Info("imported %d orders", len(orders))
	return nil
}

// Load retrieves an order by ID.
func (p *PebbleStore) Load(ctx context.Context, id string) (*domain.Order, error) {
	v, closer, err := p.db.Get(orderKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading order %s: %w", id, err)
	}
	defer closer.Close()

	var o domain.Order
	if err := json.Unmarshal(v, &o); err != nil {
		return nil, fmt.Errorf("decoding order %s: %w", id, err)
	}
	return &o, nil
}

// Delete removes an order by ID.
func (p *PebbleStore) Delete(ctx context.Context, id string) error {
	if _, err := p.Load(ctx, id); err != nil {
		return err
	}
	if err := p.db.Delete(orderKey(id), pebble.Sync); err != nil {
		return fmt.Errorf("deleting order %s: %w", id, err)
	}
	p.log.Debug("deleted order %s", id)
	return nil
}

// List returns every order, oldest first.
func (p *PebbleStore) List(ctx context.Context) ([]*domain.Order, error) {
	it, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(orderPrefix),
		UpperBound: prefixEnd([]byte(orderPrefix)),
	})
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer it.Close()

	var out []*domain.Order
	for it.First(); it.Valid(); it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var o domain.Order
		if err := json.Unmarshal(it.Value(), &o); err != nil {
			p.log.Warn("skipping undecodable order at %s: %v", it.Key(), err)
			continue
		}
		out = append(out, &o)
	}
	sortByCreated(out)
	p.log.Debug("listing orders, count=%d", len(out))
	return out, nil
}

// prefixEnd returns the smallest key greater than every key with prefix.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
