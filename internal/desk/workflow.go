package desk

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pricing"
)

// allowed lists the statuses each status may move to.
var allowed = map[domain.OrderStatus][]domain.OrderStatus{
	domain.StatusPending:  {domain.StatusApproved, domain.StatusCancelled},
	domain.StatusApproved: {domain.StatusPending, domain.StatusCompleted, domain.StatusCancelled},
}

func canMove(from, to domain.OrderStatus) bool {
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Approve confirms a pending order. An order whose pickup cannot be read
// is refused with ErrInvalidPickup: it stays pending until someone fixes
// the date.
func (d *Desk) Approve(ctx context.Context, ref string) (*Entry, error) {
	return d.transition(ctx, ref, domain.StatusApproved)
}

// Reopen moves an approved order back to pending.
func (d *Desk) Reopen(ctx context.Context, ref string) (*Entry, error) {
	return d.transition(ctx, ref, domain.StatusPending)
}

// Complete marks an approved order as picked up.
func (d *Desk) Complete(ctx context.Context, ref string) (*Entry, error) {
	return d.transition(ctx, ref, domain.StatusCompleted)
}

// Cancel cancels a pending or approved order.
func (d *Desk) Cancel(ctx context.Context, ref string) (*Entry, error) {
	return d.transition(ctx, ref, domain.StatusCancelled)
}

func (d *Desk) transition(ctx context.Context, ref string, to domain.OrderStatus) (*Entry, error) {
	o, err := d.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	if !canMove(o.Status, to) {
		return nil, fmt.Errorf("order %s is %s, cannot mark %s: %w", o.ID, o.Status, to, domain.ErrInvalidTransition)
	}

	at := pickup.ParseInstantIn(d.loc, o.PickupDate, o.PickupTime)
	if to == domain.StatusApproved && !at.Valid() {
		d.log.Warn("refusing to approve order %s: pickup %q %q unreadable", o.ID, o.PickupDate, o.PickupTime)
		return nil, fmt.Errorf("order %s: %w", o.ID, domain.ErrInvalidPickup)
	}

	from := o.Status
	o.Status = to
	o.UpdatedAt = d.now()
	if err := d.store.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("saving order: %w", err)
	}

	d.metrics.StatusTransitions.WithLabelValues(to.String()).Inc()
	d.log.Info("order %s: %s -> %s", o.ID, from, to)

	e := d.entry(o, at)
	return &e, nil
}

// Reschedule replaces an order's pickup date and time. The new values are
// stored as given; the returned entry shows whether they can be read.
func (d *Desk) Reschedule(ctx context.Context, ref, date, clock string) (*Entry, error) {
	o, err := d.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	o.PickupDate = date
	o.PickupTime = clock
	o.UpdatedAt = d.now()
	if err := d.store.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("saving order: %w", err)
	}

	e := d.entry(o, pickup.ParseInstantIn(d.loc, date, clock))
	d.log.Info("order %s rescheduled to %s", o.ID, e.Pickup)
	return &e, nil
}

// BatchSaver is an optional interface an OrderStore can satisfy to write
// many orders at once.
type BatchSaver interface {
	SaveAll(ctx context.Context, orders []*domain.Order) error
}

// Import stores a batch of orders, generating IDs where missing. Orders
// with no items or a duplicate ID are skipped. It returns how many orders
// were stored.
func (d *Desk) Import(ctx context.Context, orders []*domain.Order) (int, error) {
	existing, err := d.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing orders: %w", err)
	}
	seen := make(map[string]bool, len(existing)+len(orders))
	for _, o := range existing {
		seen[o.ID] = true
	}

	now := d.now()
	var batch []*domain.Order
	for _, o := range orders {
		if len(o.Items) == 0 {
			d.log.Warn("skipping imported order %q: %v", o.ID, domain.ErrEmptyOrder)
			continue
		}
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		if seen[o.ID] {
			d.log.Warn("skipping imported order %q: %v", o.ID, domain.ErrAlreadyExists)
			continue
		}
		seen[o.ID] = true
		if o.CreatedAt.IsZero() {
			o.CreatedAt = now
		}
		o.UpdatedAt = now
		batch = append(batch, o)
	}

	if bs, ok := d.store.(BatchSaver); ok {
		if err := bs.SaveAll(ctx, batch); err != nil {
			return 0, fmt.Errorf("importing orders: %w", err)
		}
	} else {
		for i, o := range batch {
			if err := d.store.Save(ctx, o); err != nil {
				return i, fmt.Errorf("importing order %s: %w", o.ID, err)
			}
		}
	}

	for _, o := range batch {
		d.countPriced(pricing.Quote(o.Items, o.DeliveryFee, d.settings))
	}
	d.log.Info("imported %d of %d orders", len(batch), len(orders))
	return len(batch), nil
}
