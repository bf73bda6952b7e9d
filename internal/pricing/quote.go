package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
)

// Warning reports a line item whose name was not positively recognised.
// Warnings never change the charged total.
type Warning struct {
	Item     string
	Quantity int
	Category domain.Category // the category the item was charged as
}

// String describes the warning for an operator.
func (w Warning) String() string {
	if w.Category == domain.CategoryUnclassified {
		return fmt.Sprintf("%q x%d not recognised, not charged", w.Item, w.Quantity)
	}
	return fmt.Sprintf("%q x%d not recognised, charged as %s", w.Item, w.Quantity, w.Category)
}

// Breakdown is the itemised result of pricing an order.
type Breakdown struct {
	MiniQty       int
	FullQty       int
	SalsaSmallQty int
	SalsaLargeQty int

	Mini        decimal.Decimal
	Full        decimal.Decimal
	SalsaSmall  decimal.Decimal
	SalsaLarge  decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal

	Warnings []Warning
}

// Subtotal is the total before the delivery fee.
func (b Breakdown) Subtotal() decimal.Decimal {
	return b.Total.Sub(b.DeliveryFee)
}

// Quote prices a list of line items. Quantities are summed per category,
// mini and full-size totals go through PriceForCount with their own price
// list, salsas are charged per unit, and the delivery fee is added once.
// No rounding is applied.
func Quote(items []domain.LineItem, deliveryFee decimal.Decimal, settings domain.PricingSettings) Breakdown {
	var b Breakdown

	for _, item := range items {
		cat, ok := CategoryOf(item)
		if !ok {
			b.Warnings = append(b.Warnings, Warning{Item: item.Name, Quantity: item.Quantity, Category: cat})
		}
		switch cat {
		case domain.CategoryMini:
			b.MiniQty += item.Quantity
		case domain.CategoryFull:
			b.FullQty += item.Quantity
		case domain.CategorySalsaSmall:
			b.SalsaSmallQty += item.Quantity
		case domain.CategorySalsaLarge:
			b.SalsaLargeQty += item.Quantity
		}
	}

	b.Mini = PriceForCount(b.MiniQty, settings.Mini.BasePrice, settings.Mini.Tiers)
	b.Full = PriceForCount(b.FullQty, settings.Full.BasePrice, settings.Full.Tiers)
	b.SalsaSmall = unitTotal(b.SalsaSmallQty, settings.SalsaSmallUnitPrice)
	b.SalsaLarge = unitTotal(b.SalsaLargeQty, settings.SalsaLargeUnitPrice)
	b.DeliveryFee = deliveryFee

	b.Total = b.Mini.Add(b.Full).Add(b.SalsaSmall).Add(b.SalsaLarge).Add(deliveryFee)
	return b
}

// OrderTotal returns the total charge for the items plus the delivery fee.
func OrderTotal(items []domain.LineItem, deliveryFee decimal.Decimal, settings domain.PricingSettings) decimal.Decimal {
	return Quote(items, deliveryFee, settings).Total
}

// unitTotal charges qty units at price; a non-positive quantity costs nothing.
func unitTotal(qty int, price decimal.Decimal) decimal.Decimal {
	if qty <= 0 {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(qty)))
}
