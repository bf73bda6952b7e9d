package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tier(qty int, price string) domain.PricingTier {
	return domain.PricingTier{Quantity: qty, Price: dec(price)}
}

func TestPriceForCount(t *testing.T) {
	tests := []struct {
		name  string
		qty   int
		base  string
		tiers []domain.PricingTier
		want  string
	}{
		{"zero quantity", 0, "1.75", []domain.PricingTier{tier(10, "15")}, "0"},
		{"negative quantity", -4, "1.75", []domain.PricingTier{tier(10, "15")}, "0"},
		{"no tiers", 7, "2.5", nil, "17.5"},
		{"packs plus remainder", 25, "1.75", []domain.PricingTier{tier(10, "15")}, "38.75"},
		{"exact packs", 20, "1.75", []domain.PricingTier{tier(10, "15")}, "30"},
		{"below smallest pack", 4, "1.75", []domain.PricingTier{tier(10, "15")}, "7"},
		{"greedy is not optimal", 6, "3", []domain.PricingTier{tier(5, "10"), tier(3, "7")}, "13"},
		{"unsorted input", 6, "3", []domain.PricingTier{tier(3, "7"), tier(5, "10")}, "13"},
		{"cascades through tiers", 19, "2", []domain.PricingTier{tier(3, "5"), tier(12, "18"), tier(6, "10")}, "30"},
		{"zero size tier skipped", 5, "2", []domain.PricingTier{tier(0, "1"), tier(2, "3")}, "8"},
		{"negative size tier skipped", 5, "2", []domain.PricingTier{tier(-3, "1")}, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceForCount(tt.qty, dec(tt.base), tt.tiers)
			if !got.Equal(dec(tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPriceForCountStableTies(t *testing.T) {
	// Two 4-packs at different prices: the first listed wins.
	tiers := []domain.PricingTier{tier(4, "6"), tier(4, "5")}
	got := PriceForCount(8, dec("2"), tiers)
	if !got.Equal(dec("12")) {
		t.Fatalf("expected 12, got %s", got)
	}

	tiers = []domain.PricingTier{tier(4, "5"), tier(4, "6")}
	got = PriceForCount(8, dec("2"), tiers)
	if !got.Equal(dec("10")) {
		t.Fatalf("expected 10, got %s", got)
	}
}

func TestPriceForCountDoesNotMutateTiers(t *testing.T) {
	tiers := []domain.PricingTier{tier(3, "7"), tier(10, "15"), tier(5, "10")}
	before := make([]domain.PricingTier, len(tiers))
	copy(before, tiers)

	PriceForCount(42, dec("1"), tiers)

	for i := range tiers {
		if tiers[i].Quantity != before[i].Quantity || !tiers[i].Price.Equal(before[i].Price) {
			t.Fatalf("tier %d changed: expected %+v, got %+v", i, before[i], tiers[i])
		}
	}
}

func TestPriceForCountIdempotent(t *testing.T) {
	tiers := []domain.PricingTier{tier(12, "18"), tier(6, "10")}
	first := PriceForCount(31, dec("1.75"), tiers)
	for i := 0; i < 3; i++ {
		if got := PriceForCount(31, dec("1.75"), tiers); !got.Equal(first) {
			t.Fatalf("call %d: expected %s, got %s", i, first, got)
		}
	}
}
