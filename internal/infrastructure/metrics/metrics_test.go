package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	if m.BankingOperations == nil || m.BankingAmount == nil || m.AvailableBanked == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.BankingOperations.WithLabelValues("bank", "success").Inc()
	m.AvailableBanked.WithLabelValues("R001").Set(150)
	m.EntriesCreated.Inc()

	if got := testutil.ToFloat64(m.BankingOperations.WithLabelValues("bank", "success")); got != 1 {
		t.Fatalf("expected operation counter to read 1, got %f", got)
	}
	if got := testutil.ToFloat64(m.AvailableBanked.WithLabelValues("R001")); got != 150 {
		t.Fatalf("expected banked gauge to read 150, got %f", got)
	}

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}
