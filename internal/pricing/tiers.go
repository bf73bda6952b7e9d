// Package pricing computes order charges from line items and a price list.
//
// Mini and full-size empanadas are priced with package tiers: the largest
// package that fits is applied first, as many times as it fits, then the
// next largest, and whatever is left is charged at the base price. Salsas
// are charged per unit. Every function here is pure: inputs are never
// mutated and the same inputs always give the same total.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
)

// PriceForCount returns the charge for quantity units of one size class.
//
// Tiers are applied greedily from the largest package size down. Ties in
// package size keep their input order. Tiers with a non-positive package
// size are ignored. The greedy result is not always the cheapest split:
// with packages of 5 and 3 and a quantity of 6 it charges one 5-pack plus
// one unit at base price, never two 3-packs.
func PriceForCount(quantity int, basePrice decimal.Decimal, tiers []domain.PricingTier) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}

	sorted := make([]domain.PricingTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quantity > sorted[j].Quantity
	})

	total := decimal.Zero
	remaining := quantity
	for _, t := range sorted {
		if t.Quantity <= 0 {
			continue
		}
		packs := remaining / t.Quantity
		if packs > 0 {
			total = total.Add(t.Price.Mul(decimal.NewFromInt(int64(packs))))
			remaining %= t.Quantity
		}
	}

	if remaining > 0 {
		total = total.Add(basePrice.Mul(decimal.NewFromInt(int64(remaining))))
	}
	return total
}
