package domain

import "github.com/shopspring/decimal"

// PricingTier is a package deal: Quantity units sold together for Price.
type PricingTier struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// SizePricing is the price list for one size class.
type SizePricing struct {
	BasePrice decimal.Decimal `json:"basePrice"`
	Tiers     []PricingTier   `json:"tiers"`
}

// PricingSettings holds every price the calculator needs. Loaded by the
// caller from configuration and never mutated while pricing.
type PricingSettings struct {
	Mini                SizePricing     `json:"mini"`
	Full                SizePricing     `json:"full"`
	SalsaSmallUnitPrice decimal.Decimal `json:"salsaSmallUnitPrice"`
	SalsaLargeUnitPrice decimal.Decimal `json:"salsaLargeUnitPrice"`
}

// ForSize returns the price list for the given size class.
func (p PricingSettings) ForSize(s SizeClass) SizePricing {
	if s == SizeFull {
		return p.Full
	}
	return p.Mini
}
