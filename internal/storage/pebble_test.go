package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
)

func openTestPebble(t *testing.T) *PebbleStore {
	t.Helper()
	st, err := OpenPebbleStore(t.TempDir(), logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("pebble open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestPebbleStoreCRUD(t *testing.T) {
	st := openTestPebble(t)
	ctx := context.Background()

	order := &domain.Order{
		ID:           "order-1",
		CustomerName: "Test Customer",
		Items: []domain.LineItem{
			{Name: "Mini Beef", Quantity: 12},
			{Name: "Beef", Quantity: 2, Category: domain.CategoryFull},
		},
		DeliveryFee: decimal.RequireFromString("4.50"),
		PickupDate:  "03/05/2024",
		PickupTime:  "2:30",
		Status:      domain.StatusApproved,
		CreatedAt:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	if err := st.Save(ctx, order); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Load(ctx, "order-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}
	if !got.DeliveryFee.Equal(order.DeliveryFee) {
		t.Fatalf("expected fee %s, got %s", order.DeliveryFee, got.DeliveryFee)
	}
	if got.Items[0].Category != domain.CategoryFromName || got.Items[1].Category != domain.CategoryFull {
		t.Fatalf("categories did not round-trip: %+v", got.Items)
	}
	if !got.CreatedAt.Equal(order.CreatedAt) {
		t.Fatalf("expected created %s, got %s", order.CreatedAt, got.CreatedAt)
	}

	if _, err := st.Load(ctx, "nonexistent"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := st.Delete(ctx, "order-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Load(ctx, "order-1"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := st.Delete(ctx, "order-1"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPebbleStoreSaveAllAndList(t *testing.T) {
	st := openTestPebble(t)
	ctx := context.Background()

	orders := SampleOrders(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	if err := st.SaveAll(ctx, orders); err != nil {
		t.Fatalf("save all: %v", err)
	}

	all, err := st.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(orders) {
		t.Fatalf("expected %d orders, got %d", len(orders), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.Before(all[i-1].CreatedAt) {
			t.Fatalf("orders not sorted by creation time at %d", i)
		}
	}
}

func TestPrefixEnd(t *testing.T) {
	if got := string(prefixEnd([]byte("order/"))); got != "order0" {
		t.Fatalf("expected order0, got %q", got)
	}
	if got := prefixEnd([]byte{0xff, 0xff}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
