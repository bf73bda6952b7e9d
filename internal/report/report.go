// Package report builds revenue summaries over priced orders, grouped by
// pickup day, week or month.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/desk"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
)

// Bucket is the grouping period.
type Bucket int

const (
	BucketDay Bucket = iota
	BucketWeek
	BucketMonth
)

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case BucketDay:
		return "day"
	case BucketWeek:
		return "week"
	case BucketMonth:
		return "month"
	default:
		return "unknown"
	}
}

// ParseBucket reads a bucket name. An empty name is day.
func ParseBucket(s string) (Bucket, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "day", "daily":
		return BucketDay, true
	case "week", "weekly":
		return BucketWeek, true
	case "month", "monthly":
		return BucketMonth, true
	default:
		return BucketDay, false
	}
}

// window returns the period containing t.
func (b Bucket) window(t time.Time) pickup.Range {
	switch b {
	case BucketWeek:
		return pickup.Week(t)
	case BucketMonth:
		return pickup.Month(t)
	default:
		return pickup.Day(t)
	}
}

func (b Bucket) label(start time.Time) string {
	switch b {
	case BucketWeek:
		return "Week of " + start.Format("Jan 2, 2006")
	case BucketMonth:
		return start.Format("January 2006")
	default:
		return start.Format("Mon Jan 2, 2006")
	}
}

// Row is one period of the report.
type Row struct {
	Label        string
	Start        time.Time
	Orders       int
	Minis        int
	Fulls        int
	SalsasSmall  int
	SalsasLarge  int
	DeliveryFees decimal.Decimal
	Revenue      decimal.Decimal
	Unrecognised int // line items charged by fallback rules
}

// Items is the total number of empanadas and salsas in the row.
func (r Row) Items() int {
	return r.Minis + r.Fulls + r.SalsasSmall + r.SalsasLarge
}

func (r *Row) add(e desk.Entry) {
	r.Orders++
	r.Minis += e.Quote.MiniQty
	r.Fulls += e.Quote.FullQty
	r.SalsasSmall += e.Quote.SalsaSmallQty
	r.SalsasLarge += e.Quote.SalsaLargeQty
	r.DeliveryFees = r.DeliveryFees.Add(e.Quote.DeliveryFee)
	r.Revenue = r.Revenue.Add(e.Quote.Total)
	r.Unrecognised += len(e.Quote.Warnings)
}

// Report is a revenue summary.
type Report struct {
	Bucket Bucket
	Range  *pickup.Range // nil covers every readable pickup
	Rows   []Row
	Total  Row

	// Excluded holds orders left out because their pickup could not be
	// read. Their revenue is not in any row.
	Excluded []desk.Entry
}

// Build groups entries into buckets by pickup. Cancelled orders are
// ignored. When within is non-nil only pickups inside it are counted.
func Build(entries []desk.Entry, bucket Bucket, within *pickup.Range) *Report {
	rep := &Report{Bucket: bucket, Range: within, Total: Row{Label: "Total"}}
	rows := make(map[time.Time]*Row)

	for _, e := range entries {
		if e.Order.Status == domain.StatusCancelled {
			continue
		}
		t, ok := e.Pickup.Time()
		if !ok {
			rep.Excluded = append(rep.Excluded, e)
			continue
		}
		if within != nil && !within.Contains(e.Pickup) {
			continue
		}

		start := bucket.window(t).From
		row, ok := rows[start]
		if !ok {
			row = &Row{Label: bucket.label(start), Start: start}
			rows[start] = row
		}
		row.add(e)
		rep.Total.add(e)
	}

	for _, row := range rows {
		rep.Rows = append(rep.Rows, *row)
	}
	sort.Slice(rep.Rows, func(i, j int) bool {
		return rep.Rows[i].Start.Before(rep.Rows[j].Start)
	})
	return rep
}
