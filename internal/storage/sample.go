package storage

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
)

// SampleOrders returns demo orders around now. Dates are written in the
// mix of formats the dashboard actually stores, and one order carries a
// pickup date nobody can read so the review queue has something in it.
func SampleOrders(now time.Time) []*domain.Order {
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }
	iso := func(t time.Time) string { return t.Format("2006-01-02") }
	us := func(t time.Time) string { return fmt.Sprintf("%02d/%02d/%d", int(t.Month()), t.Day(), t.Year()) }
	created := now.Add(-72 * time.Hour)

	return []*domain.Order{
		{
			ID:           "sample-1001",
			CustomerName: "Marisol Vega",
			Phone:        "225-555-0141",
			Items: []domain.LineItem{
				{Name: "Mini Beef Empanada", Quantity: 24},
				{Name: "Mini Chicken Empanada", Quantity: 12},
				{Name: "salsa verde small", Quantity: 2},
			},
			PickupDate: iso(day(0)),
			PickupTime: "4:30pm",
			Status:     domain.StatusApproved,
			CreatedAt:  created,
			UpdatedAt:  created,
		},
		{
			ID:           "sample-1002",
			CustomerName: "Dale Thibodeaux",
			Items: []domain.LineItem{
				{Name: "Full Pork Empanada", Quantity: 13},
				{Name: "salsa roja large", Quantity: 1},
			},
			DeliveryFee: decimal.NewFromInt(8),
			PickupDate:  us(day(0)),
			PickupTime:  "6:00",
			Status:      domain.StatusPending,
			CreatedAt:   created.Add(time.Hour),
			UpdatedAt:   created.Add(time.Hour),
		},
		{
			ID:           "sample-1003",
			CustomerName: "Priya Raman",
			Items: []domain.LineItem{
				{Name: "Mini Spinach & Cheese", Quantity: 50},
				{Name: "Guava & Cream Cheese", Quantity: 10},
			},
			PickupDate: iso(day(1)),
			PickupTime: "11:00am-12:00pm",
			Status:     domain.StatusPending,
			Notes:      "office party",
			CreatedAt:  created.Add(2 * time.Hour),
			UpdatedAt:  created.Add(2 * time.Hour),
		},
		{
			ID:           "sample-1004",
			CustomerName: "Ben Okafor",
			Items: []domain.LineItem{
				{Name: "Full Beef Empanada", Quantity: 6},
				{Name: "Full Chicken Empanada", Quantity: 6},
				{Name: "salsa verde", Quantity: 1},
			},
			PickupDate: "next friday",
			PickupTime: "5pm",
			Status:     domain.StatusPending,
			CreatedAt:  created.Add(3 * time.Hour),
			UpdatedAt:  created.Add(3 * time.Hour),
		},
		{
			ID:           "sample-1005",
			CustomerName: "Lena Broussard",
			Items: []domain.LineItem{
				{Name: "Mini Beef Empanada", Quantity: 10},
			},
			PickupDate: us(day(-2)),
			PickupTime: "2:15",
			Status:     domain.StatusCompleted,
			CreatedAt:  created.Add(-48 * time.Hour),
			UpdatedAt:  created,
		},
	}
}
