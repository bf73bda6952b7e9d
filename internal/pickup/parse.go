package pickup

import (
	"strconv"
	"strings"
	"time"
)

// Afternoon heuristic bounds. A time with no am/pm marker and an hour in
// [afternoonFrom, afternoonTo] is read as afternoon: the shop does not hand
// out orders before 8am, so "2:30" means 14:30. Genuine early-morning
// entries without a marker are misread; there is no way to tell them apart.
const (
	afternoonFrom = 1
	afternoonTo   = 7
)

// ParseInstant combines a stored pickup date and pickup time into an
// instant in the local time zone.
func ParseInstant(pickupDate, pickupTime string) Instant {
	return ParseInstantIn(time.Local, pickupDate, pickupTime)
}

// ParseInstantIn is ParseInstant for an explicit location.
//
// An empty or malformed date yields Invalid. A missing or malformed time
// never does: unreadable hour or minute fields default to 0.
func ParseInstantIn(loc *time.Location, pickupDate, pickupTime string) Instant {
	if loc == nil {
		loc = time.Local
	}
	if strings.TrimSpace(pickupDate) == "" {
		return Invalid()
	}

	year, month, day, ok := parseDate(pickupDate)
	if !ok {
		return Invalid()
	}
	hour, minute := parseClock(pickupTime)

	return At(time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc))
}

// parseDate reads YYYY-MM-DD, or MM/DD/YYYY with either separator.
func parseDate(s string) (year, month, day int, ok bool) {
	s = strings.TrimSpace(s)

	var parts []string
	if strings.Contains(s, "-") {
		parts = strings.Split(s, "-")
		if len(parts) == 3 && len(strings.TrimSpace(parts[0])) == 4 {
			return ymd(parts[0], parts[1], parts[2])
		}
	} else {
		parts = strings.Split(s, "/")
	}
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	return ymd(parts[2], parts[0], parts[1])
}

func ymd(ys, ms, ds string) (year, month, day int, ok bool) {
	var err error
	if year, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(strings.TrimSpace(ms)); err != nil {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(strings.TrimSpace(ds)); err != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// parseClock reads "H:MM" with an optional am/pm suffix. Anything after a
// '-' is a range end and is dropped.
func parseClock(s string) (hour, minute int) {
	if i := strings.Index(s, "-"); i >= 0 {
		s = s[:i]
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var am, pm bool
	switch {
	case strings.HasSuffix(s, "pm"):
		pm = true
	case strings.HasSuffix(s, "am"):
		am = true
	}
	if am || pm {
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	hour = atoiOrZero(parts[0])
	if len(parts) > 1 {
		minute = atoiOrZero(parts[1])
	}

	switch {
	case pm && hour < 12:
		hour += 12
	case am && hour == 12:
		hour = 0
	case !am && !pm && hour >= afternoonFrom && hour <= afternoonTo:
		hour += 12
	}
	return hour, minute
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
