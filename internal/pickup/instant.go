// Package pickup turns the pickup date and time strings stored on an order
// into a single comparable instant.
//
// Stored dates come in more than one shape ("2024-03-05", "03/05/2024",
// "3-5-2024") and stored times are free text ("2:30pm", "14:00",
// "2:00-3:00"). Parsing never fails: a date that cannot be read yields the
// Invalid instant, which every comparison and filter in this package
// handles explicitly.
package pickup

import "time"

// Instant is either a valid point in time or Invalid. The zero value is
// Invalid.
type Instant struct {
	t     time.Time
	valid bool
}

// Invalid returns the instant used for unparseable pickup dates.
func Invalid() Instant { return Instant{} }

// At returns a valid instant for t.
func At(t time.Time) Instant { return Instant{t: t, valid: true} }

// Valid reports whether the instant holds a time.
func (i Instant) Valid() bool { return i.valid }

// Time returns the time and true for a valid instant, or the zero time
// and false for Invalid.
func (i Instant) Time() (time.Time, bool) {
	if !i.valid {
		return time.Time{}, false
	}
	return i.t, true
}

// Compare orders instants. Invalid sorts before every valid instant and
// equal to another Invalid. It returns -1, 0 or +1.
func (i Instant) Compare(o Instant) int {
	switch {
	case !i.valid && !o.valid:
		return 0
	case !i.valid:
		return -1
	case !o.valid:
		return 1
	default:
		return i.t.Compare(o.t)
	}
}

// Before reports whether i sorts before o under Compare.
func (i Instant) Before(o Instant) bool { return i.Compare(o) < 0 }

// Equal reports whether both instants are Invalid or both hold the same time.
func (i Instant) Equal(o Instant) bool { return i.Compare(o) == 0 }

// String formats the instant for logs.
func (i Instant) String() string {
	if !i.valid {
		return "invalid"
	}
	return i.t.Format(time.RFC3339)
}

// Format renders the instant for the operator, e.g. "Tue Mar 5, 2:30 PM".
func Format(i Instant) string {
	t, ok := i.Time()
	if !ok {
		return "invalid date"
	}
	return t.Format("Mon Jan 2, 3:04 PM")
}
