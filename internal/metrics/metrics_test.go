package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCounters(t *testing.T) {
	r := NewRegistry()
	r.OrdersPriced.Add(3)
	r.StatusTransitions.WithLabelValues("approved").Inc()

	if got := counterValue(t, r, "ebr_orders_priced_total"); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := counterValue(t, r, "ebr_status_transitions_total"); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func counterValue(t *testing.T, r *Registry, name string) float64 {
	t.Helper()
	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var sum float64
		for _, m := range mf.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
		return sum
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestWriteFile(t *testing.T) {
	r := NewRegistry()
	r.PickupInvalid.Set(2)

	path := filepath.Join(t.TempDir(), "ebr.prom")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "ebr_pickup_invalid_orders 2") {
		t.Fatalf("expected invalid gauge in output, got:\n%s", data)
	}
}
