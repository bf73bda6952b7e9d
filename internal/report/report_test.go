package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/desk"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pricing"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/settings"
)

func entry(id, date, clock string, status domain.OrderStatus, fee int64, items ...domain.LineItem) desk.Entry {
	o := &domain.Order{ID: id, CustomerName: id, Items: items, DeliveryFee: decimal.NewFromInt(fee), PickupDate: date, PickupTime: clock, Status: status}
	return desk.Entry{
		Order:  o,
		Pickup: pickup.ParseInstantIn(time.UTC, date, clock),
		Quote:  pricing.Quote(items, o.DeliveryFee, settings.Default()),
	}
}

func testEntries() []desk.Entry {
	minis := func(n int) domain.LineItem { return domain.LineItem{Name: "Mini Beef", Quantity: n} }
	return []desk.Entry{
		entry("bad", "tbd", "", domain.StatusPending, 0, minis(10)),
		entry("mon", "2024-03-04", "2:00", domain.StatusCompleted, 0, minis(10)),
		entry("tue1", "2024-03-05", "11:00am", domain.StatusApproved, 5, minis(25)),
		entry("tue2", "03/05/2024", "4:00", domain.StatusPending, 0, domain.LineItem{Name: "salsa small", Quantity: 3}),
		entry("tue-cancel", "2024-03-05", "1:00", domain.StatusCancelled, 0, minis(50)),
		entry("next-week", "2024-03-12", "3:00", domain.StatusApproved, 0, domain.LineItem{Name: "Full Beef", Quantity: 6}),
		entry("april", "2024-04-01", "3:00", domain.StatusApproved, 0, domain.LineItem{Name: "Guava", Quantity: 2}),
	}
}

func TestBuildByDay(t *testing.T) {
	rep := Build(testEntries(), BucketDay, nil)

	if len(rep.Rows) != 4 {
		t.Fatalf("expected 4 day rows, got %d", len(rep.Rows))
	}
	tue := rep.Rows[1]
	if tue.Orders != 2 {
		t.Fatalf("expected 2 orders on tuesday, got %d", tue.Orders)
	}
	// 25 minis = 35, fee 5, 3 small salsas = 6
	if !tue.Revenue.Equal(decimal.NewFromInt(46)) {
		t.Fatalf("expected 46, got %s", tue.Revenue)
	}
	if tue.Items() != 28 {
		t.Fatalf("expected 28 items, got %d", tue.Items())
	}
	if !tue.DeliveryFees.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected fees 5, got %s", tue.DeliveryFees)
	}

	if len(rep.Excluded) != 1 || rep.Excluded[0].Order.ID != "bad" {
		t.Fatalf("expected bad to be excluded, got %v", rep.Excluded)
	}
	// 15 + 46 + 27 + 3.5
	if !rep.Total.Revenue.Equal(decimal.RequireFromString("91.5")) {
		t.Fatalf("expected total 91.5, got %s", rep.Total.Revenue)
	}
	if rep.Total.Unrecognised != 1 {
		t.Fatalf("expected 1 unrecognised item, got %d", rep.Total.Unrecognised)
	}
}

func TestBuildByWeekAndMonth(t *testing.T) {
	tests := []struct {
		bucket Bucket
		rows   int
		first  string
	}{
		{BucketWeek, 3, "Week of Mar 4, 2024"},
		{BucketMonth, 2, "March 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.bucket.String(), func(t *testing.T) {
			rep := Build(testEntries(), tt.bucket, nil)
			if len(rep.Rows) != tt.rows {
				t.Fatalf("expected %d rows, got %d", tt.rows, len(rep.Rows))
			}
			if rep.Rows[0].Label != tt.first {
				t.Fatalf("expected %q, got %q", tt.first, rep.Rows[0].Label)
			}
		})
	}
}

func TestBuildWithinRange(t *testing.T) {
	r := pickup.Week(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	rep := Build(testEntries(), BucketDay, &r)
	if rep.Total.Orders != 3 {
		t.Fatalf("expected 3 orders in week, got %d", rep.Total.Orders)
	}
	if len(rep.Excluded) != 1 {
		t.Fatalf("expected invalid order still listed as excluded, got %d", len(rep.Excluded))
	}
}

func TestParseBucket(t *testing.T) {
	for in, want := range map[string]Bucket{"": BucketDay, "weekly": BucketWeek, "Month": BucketMonth} {
		got, ok := ParseBucket(in)
		if !ok || got != want {
			t.Fatalf("%q: expected %s, got %s (ok=%v)", in, want, got, ok)
		}
	}
	if _, ok := ParseBucket("year"); ok {
		t.Fatalf("expected year to be rejected")
	}
}

func TestWriteXLSX(t *testing.T) {
	rep := Build(testEntries(), BucketMonth, nil)

	var buf bytes.Buffer
	if err := WriteXLSX(rep, &buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(revenueSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	// header + 2 months + total
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[3][0] != "Total" {
		t.Fatalf("expected total row last, got %q", rows[3][0])
	}

	review, err := f.GetRows(reviewSheet)
	if err != nil {
		t.Fatalf("review rows: %v", err)
	}
	if len(review) != 2 || review[1][0] != "bad" {
		t.Fatalf("unexpected review sheet: %v", review)
	}
}
