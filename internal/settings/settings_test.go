package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !s.Mini.BasePrice.Equal(Default().Mini.BasePrice) {
		t.Fatalf("expected default mini base price, got %s", s.Mini.BasePrice)
	}
	if err := Validate(s); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.json")
	body := `{
		"mini": {"basePrice": 1.75, "tiers": [{"quantity": 10, "price": "15"}]},
		"full": {"basePrice": "4.5", "tiers": []},
		"salsaSmallUnitPrice": 2,
		"salsaLargeUnitPrice": 6.25
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Mini.Tiers) != 1 || s.Mini.Tiers[0].Quantity != 10 || !s.Mini.Tiers[0].Price.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("unexpected mini tiers: %+v", s.Mini.Tiers)
	}
	if !s.Full.BasePrice.Equal(decimal.RequireFromString("4.5")) {
		t.Fatalf("expected 4.5, got %s", s.Full.BasePrice)
	}
	if !s.SalsaLargeUnitPrice.Equal(decimal.RequireFromString("6.25")) {
		t.Fatalf("expected 6.25, got %s", s.SalsaLargeUnitPrice)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatalf("expected error for malformed file")
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.Mini.Tiers = append(s.Mini.Tiers, domain.PricingTier{Quantity: 0, Price: decimal.NewFromInt(1)})
	s.SalsaSmallUnitPrice = decimal.NewFromInt(-1)

	if err := Validate(s); err == nil {
		t.Fatalf("expected validation error")
	}
}
