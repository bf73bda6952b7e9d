// Package settings loads the price list used to charge orders.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
)

// Default returns the built-in price list.
func Default() domain.PricingSettings {
	return domain.PricingSettings{
		Mini: domain.SizePricing{
			BasePrice: decimal.RequireFromString("1.75"),
			Tiers: []domain.PricingTier{
				{Quantity: 10, Price: decimal.RequireFromString("15")},
				{Quantity: 25, Price: decimal.RequireFromString("35")},
				{Quantity: 50, Price: decimal.RequireFromString("65")},
			},
		},
		Full: domain.SizePricing{
			BasePrice: decimal.RequireFromString("5"),
			Tiers: []domain.PricingTier{
				{Quantity: 6, Price: decimal.RequireFromString("27")},
				{Quantity: 12, Price: decimal.RequireFromString("50")},
			},
		},
		SalsaSmallUnitPrice: decimal.RequireFromString("2"),
		SalsaLargeUnitPrice: decimal.RequireFromString("6"),
	}
}

// Load reads a price list from a JSON file. An empty path returns the
// defaults. Prices may be JSON numbers or strings.
func Load(path string) (domain.PricingSettings, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.PricingSettings{}, fmt.Errorf("reading settings: %w", err)
	}

	var s domain.PricingSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.PricingSettings{}, fmt.Errorf("decoding settings %s: %w", path, err)
	}
	if err := Validate(s); err != nil {
		return domain.PricingSettings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects price lists the calculator would silently misread:
// negative prices and non-positive package sizes.
func Validate(s domain.PricingSettings) error {
	var errs []error
	check := func(label string, size domain.SizePricing) {
		if size.BasePrice.IsNegative() {
			errs = append(errs, fmt.Errorf("%s base price is negative", label))
		}
		for i, t := range size.Tiers {
			if t.Quantity <= 0 {
				errs = append(errs, fmt.Errorf("%s tier %d has package size %d", label, i, t.Quantity))
			}
			if t.Price.IsNegative() {
				errs = append(errs, fmt.Errorf("%s tier %d has a negative price", label, i))
			}
		}
	}
	check("mini", s.Mini)
	check("full", s.Full)
	if s.SalsaSmallUnitPrice.IsNegative() {
		errs = append(errs, errors.New("small salsa price is negative"))
	}
	if s.SalsaLargeUnitPrice.IsNegative() {
		errs = append(errs, errors.New("large salsa price is negative"))
	}
	return errors.Join(errs...)
}
