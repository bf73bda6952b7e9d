package pickup

import (
	"sort"
	"time"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
)

// Range is the half-open interval [From, To). It never contains Invalid.
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether a valid instant falls inside the range.
func (r Range) Contains(i Instant) bool {
	t, ok := i.Time()
	if !ok {
		return false
	}
	return !t.Before(r.From) && t.Before(r.To)
}

// Day returns the calendar day containing t, in t's location.
func Day(t time.Time) Range {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Range{From: start, To: start.AddDate(0, 0, 1)}
}

// Week returns the Monday-to-Sunday week containing t.
func Week(t time.Time) Range {
	day := Day(t).From
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return Range{From: start, To: start.AddDate(0, 0, 7)}
}

// Month returns the calendar month containing t.
func Month(t time.Time) Range {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Range{From: start, To: start.AddDate(0, 1, 0)}
}

// Within returns the window from now up to now+d.
func Within(now time.Time, d time.Duration) Range {
	return Range{From: now, To: now.Add(d)}
}

// Scheduled pairs an order with its parsed pickup instant.
type Scheduled struct {
	Order *domain.Order
	At    Instant
}

// Schedule parses the pickup of every order in loc and returns them in
// pickup order. Orders with an Invalid pickup come first, in their input
// order, so they are the first thing an operator sees.
func Schedule(orders []*domain.Order, loc *time.Location) []Scheduled {
	out := make([]Scheduled, 0, len(orders))
	for _, o := range orders {
		out = append(out, Scheduled{Order: o, At: ParseInstantIn(loc, o.PickupDate, o.PickupTime)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out
}

// Filter returns the entries whose pickup falls inside r.
func Filter(entries []Scheduled, r Range) []Scheduled {
	var out []Scheduled
	for _, e := range entries {
		if r.Contains(e.At) {
			out = append(out, e)
		}
	}
	return out
}

// Invalids returns the entries whose pickup could not be parsed.
func Invalids(entries []Scheduled) []Scheduled {
	var out []Scheduled
	for _, e := range entries {
		if !e.At.Valid() {
			out = append(out, e)
		}
	}
	return out
}
