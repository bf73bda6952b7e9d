package storage

import (
	"context"
	"testing"
	"time"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
)

func TestMemoryStoreCRUD(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewMemoryStore(log)
	ctx := context.Background()

	order := &domain.Order{
		ID:           "order-1",
		CustomerName: "Test Customer",
		Items:        []domain.LineItem{{Name: "Mini Beef", Quantity: 12}},
		PickupDate:   "2024-03-05",
		PickupTime:   "2:30pm",
		Status:       domain.StatusPending,
		CreatedAt:    time.Now(),
	}

	// Save.
	if err := store.Save(ctx, order); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Load.
	loaded, err := store.Load(ctx, "order-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.CustomerName != order.CustomerName {
		t.Fatalf("expected customer %s, got %s", order.CustomerName, loaded.CustomerName)
	}

	// Loaded copies are independent of the store.
	loaded.Items[0].Quantity = 99
	again, _ := store.Load(ctx, "order-1")
	if again.Items[0].Quantity != 12 {
		t.Fatalf("expected stored quantity 12, got %d", again.Items[0].Quantity)
	}

	// Load nonexistent.
	if _, err := store.Load(ctx, "nonexistent"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// List.
	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 order, got %d", len(all))
	}

	// Delete.
	if err := store.Delete(ctx, "order-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Load(ctx, "order-1"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Delete nonexistent.
	if err := store.Delete(ctx, "nonexistent"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreListOrder(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore(log,
		&domain.Order{ID: "c", CreatedAt: base.Add(2 * time.Hour)},
		&domain.Order{ID: "b", CreatedAt: base},
		&domain.Order{ID: "a", CreatedAt: base},
	)

	all, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if all[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, all[i].ID)
		}
	}
}

func TestSampleOrders(t *testing.T) {
	orders := SampleOrders(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	if len(orders) < 4 {
		t.Fatalf("expected at least 4 sample orders, got %d", len(orders))
	}
	seen := map[string]bool{}
	for _, o := range orders {
		if seen[o.ID] {
			t.Fatalf("duplicate sample id %s", o.ID)
		}
		seen[o.ID] = true
		if len(o.Items) == 0 {
			t.Fatalf("sample %s has no items", o.ID)
		}
	}
}
