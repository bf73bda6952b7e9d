// Package desk implements the order desk: the workflow an operator runs
// over stored orders. It is the caller of the pricing calculator and the
// pickup normalizer, and the place that decides what to do with orders
// whose pickup cannot be read.
package desk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/metrics"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pricing"
)

// Option configures the desk.
type Option func(*Desk)

// WithLocation sets the time zone pickup dates are read in.
func WithLocation(loc *time.Location) Option {
	return func(d *Desk) {
		if loc != nil {
			d.loc = loc
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Desk) {
		d.now = now
	}
}

// WithMetrics records desk activity in reg.
func WithMetrics(reg *metrics.Registry) Option {
	return func(d *Desk) {
		d.metrics = reg
	}
}

// Desk runs the order workflow. It depends only on the store interface and
// is fully testable with the in-memory store.
type Desk struct {
	store    domain.OrderStore
	settings domain.PricingSettings
	log      *logger.Logger
	loc      *time.Location
	now      func() time.Time
	metrics  *metrics.Registry
}

// New creates a desk over store, pricing orders with settings.
func New(store domain.OrderStore, settings domain.PricingSettings, log *logger.Logger, opts ...Option) *Desk {
	d := &Desk{
		store:    store,
		settings: settings,
		log:      log,
		loc:      time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.metrics == nil {
		d.metrics = metrics.NewRegistry()
	}
	return d
}

// Location returns the time zone pickups are read in.
func (d *Desk) Location() *time.Location { return d.loc }

// Now returns the desk's current time in its location.
func (d *Desk) Now() time.Time { return d.now().In(d.loc) }

// Settings returns the price list in use.
func (d *Desk) Settings() domain.PricingSettings { return d.settings }

// Entry is an order with its parsed pickup and its price.
type Entry struct {
	Order  *domain.Order
	Pickup pickup.Instant
	Quote  pricing.Breakdown
}

// NeedsReview reports whether an operator has to look at the order before
// it can be trusted: the pickup is unreadable or an item was not recognised.
func (e Entry) NeedsReview() bool {
	return !e.Pickup.Valid() || len(e.Quote.Warnings) > 0
}

// Issues lists the reasons the entry needs review.
func (e Entry) Issues() []string {
	var out []string
	if !e.Pickup.Valid() {
		out = append(out, fmt.Sprintf("pickup %q %q could not be read", e.Order.PickupDate, e.Order.PickupTime))
	}
	for _, w := range e.Quote.Warnings {
		out = append(out, w.String())
	}
	return out
}

func (d *Desk) entry(o *domain.Order, at pickup.Instant) Entry {
	e := Entry{
		Order:  o,
		Pickup: at,
		Quote:  pricing.Quote(o.Items, o.DeliveryFee, d.settings),
	}
	if !at.Valid() {
		d.log.Debug("order %s has unreadable pickup %q %q", o.ID, o.PickupDate, o.PickupTime)
	}
	return e
}

// countPriced records an order entering the desk through Create, Import
// or Quote. Listings reprice stored orders and are not counted.
func (d *Desk) countPriced(b pricing.Breakdown) {
	d.metrics.OrdersPriced.Inc()
	if n := len(b.Warnings); n > 0 {
		d.metrics.PricingWarnings.Add(float64(n))
	}
}

// Entries prices every stored order and returns them in pickup order,
// orders with an unreadable pickup first.
func (d *Desk) Entries(ctx context.Context) ([]Entry, error) {
	orders, err := d.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	scheduled := pickup.Schedule(orders, d.loc)
	out := make([]Entry, 0, len(scheduled))
	open, invalid := 0, 0
	for _, s := range scheduled {
		if s.Order.Status.Open() {
			open++
			if !s.At.Valid() {
				invalid++
			}
		}
		out = append(out, d.entry(s.Order, s.At))
	}
	d.metrics.OpenOrders.Set(float64(open))
	d.metrics.PickupInvalid.Set(float64(invalid))
	return out, nil
}

// Get loads one order by ID or by a unique ID prefix.
func (d *Desk) Get(ctx context.Context, ref string) (*Entry, error) {
	o, err := d.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	e := d.entry(o, pickup.ParseInstantIn(d.loc, o.PickupDate, o.PickupTime))
	return &e, nil
}

func (d *Desk) resolve(ctx context.Context, ref string) (*domain.Order, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("empty order reference: %w", domain.ErrNotFound)
	}

	o, err := d.store.Load(ctx, ref)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("loading order: %w", err)
	}

	orders, err := d.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	var match *domain.Order
	for _, o := range orders {
		if !strings.HasPrefix(o.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("order reference %q is ambiguous", ref)
		}
		match = o
	}
	if match == nil {
		return nil, fmt.Errorf("order %q: %w", ref, domain.ErrNotFound)
	}
	return match, nil
}

// Create stores a new order. A missing ID is generated; an existing ID is
// refused with ErrAlreadyExists.
func (d *Desk) Create(ctx context.Context, o *domain.Order) (*Entry, error) {
	if len(o.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	} else {
		_, err := d.store.Load(ctx, o.ID)
		switch {
		case err == nil:
			return nil, fmt.Errorf("order %s: %w", o.ID, domain.ErrAlreadyExists)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("loading order: %w", err)
		}
	}

	now := d.now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	if err := d.store.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("saving order: %w", err)
	}

	e := d.entry(o, pickup.ParseInstantIn(d.loc, o.PickupDate, o.PickupTime))
	d.countPriced(e.Quote)
	d.log.Info("created order %s for %q (total=%s, pickup=%s)", o.ID, o.CustomerName, e.Quote.Total.StringFixed(2), e.Pickup)
	return &e, nil
}

// Quote prices an ad-hoc list of items with the desk's price list.
func (d *Desk) Quote(items []domain.LineItem, deliveryFee decimal.Decimal) pricing.Breakdown {
	b := pricing.Quote(items, deliveryFee, d.settings)
	d.countPriced(b)
	return b
}
