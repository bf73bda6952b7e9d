package desk

import (
	"context"
	"strings"
	"time"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
)

// View selects which orders the pickup board shows.
type View int

const (
	ViewToday View = iota
	ViewTomorrow
	ViewWeek
	ViewMonth
	ViewAll
)

// String returns the view name.
func (v View) String() string {
	switch v {
	case ViewToday:
		return "today"
	case ViewTomorrow:
		return "tomorrow"
	case ViewWeek:
		return "week"
	case ViewMonth:
		return "month"
	case ViewAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseView reads a view name. An empty name is today.
func ParseView(s string) (View, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return ViewToday, true
	case "tomorrow":
		return ViewTomorrow, true
	case "week", "this week":
		return ViewWeek, true
	case "month", "this month":
		return ViewMonth, true
	case "all", "everything":
		return ViewAll, true
	default:
		return ViewToday, false
	}
}

// Range returns the pickup window for the view at now. ViewAll has no
// window and returns false.
func (v View) Range(now time.Time) (pickup.Range, bool) {
	switch v {
	case ViewToday:
		return pickup.Day(now), true
	case ViewTomorrow:
		return pickup.Day(now.AddDate(0, 0, 1)), true
	case ViewWeek:
		return pickup.Week(now), true
	case ViewMonth:
		return pickup.Month(now), true
	default:
		return pickup.Range{}, false
	}
}

// Board returns the orders picked up in the view's window, in pickup
// order. Cancelled orders are left out of windowed views. ViewAll returns
// every order, unreadable pickups first.
func (d *Desk) Board(ctx context.Context, v View) ([]Entry, error) {
	entries, err := d.Entries(ctx)
	if err != nil {
		return nil, err
	}

	r, windowed := v.Range(d.Now())
	if !windowed {
		return entries, nil
	}

	var out []Entry
	for _, e := range entries {
		if e.Order.Status == domain.StatusCancelled {
			continue
		}
		if r.Contains(e.Pickup) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Review returns open orders that need an operator: unreadable pickups
// and unrecognised items.
func (d *Desk) Review(ctx context.Context) ([]Entry, error) {
	entries, err := d.Entries(ctx)
	if err != nil {
		return nil, err
	}

	var out []Entry
	for _, e := range entries {
		if e.Order.Status.Open() && e.NeedsReview() {
			out = append(out, e)
		}
	}
	return out, nil
}

// Upcoming returns approved orders picked up between now and now+within.
func (d *Desk) Upcoming(ctx context.Context, within time.Duration) ([]Entry, error) {
	entries, err := d.Entries(ctx)
	if err != nil {
		return nil, err
	}

	r := pickup.Within(d.Now(), within)
	var out []Entry
	for _, e := range entries {
		if e.Order.Status == domain.StatusApproved && r.Contains(e.Pickup) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Summary is the headline state of the desk.
type Summary struct {
	Pending     int
	Approved    int
	NeedsReview int
	Next        *Entry // next open pickup from now, nil when none
}

// Summarize counts open orders and finds the next pickup.
func (d *Desk) Summarize(ctx context.Context) (Summary, error) {
	entries, err := d.Entries(ctx)
	if err != nil {
		return Summary{}, err
	}

	now := pickup.At(d.Now())
	var s Summary
	for i := range entries {
		e := entries[i]
		if !e.Order.Status.Open() {
			continue
		}
		if e.Order.Status == domain.StatusPending {
			s.Pending++
		} else {
			s.Approved++
		}
		if e.NeedsReview() {
			s.NeedsReview++
		}
		if s.Next == nil && e.Pickup.Valid() && !e.Pickup.Before(now) {
			s.Next = &entries[i]
		}
	}
	return s, nil
}

// Overdue returns approved orders whose pickup passed more than grace ago
// without being completed.
func (d *Desk) Overdue(ctx context.Context, grace time.Duration) ([]Entry, error) {
	entries, err := d.Entries(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := pickup.At(d.Now().Add(-grace))
	var out []Entry
	for _, e := range entries {
		if e.Order.Status == domain.StatusApproved && e.Pickup.Valid() && e.Pickup.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out, nil
}
