package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the banking-domain Prometheus metrics. HTTP-level metrics are
// registered separately by the metrics middleware.
type Metrics struct {
	BankingOperations *prometheus.CounterVec
	BankingAmount     *prometheus.HistogramVec
	BankingDuration   prometheus.Histogram
	AvailableBanked   *prometheus.GaugeVec
	EntriesCreated    prometheus.Counter
}

// New creates and registers all banking metrics.
func New() *Metrics {
	return &Metrics{
		BankingOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fueleu_banking_operations_total",
				Help: "Total banking operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		BankingAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fueleu_banking_amount_gco2eq",
				Help:    "Requested banking amounts in gCO2eq",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"operation"},
		),
		BankingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fueleu_banking_operation_duration_seconds",
			Help:    "Duration of banking operations",
			Buckets: prometheus.DefBuckets,
		}),
		AvailableBanked: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fueleu_banking_available_banked_gco2eq",
				Help: "Available banked balance per ship after its last operation",
			},
			[]string{"ship_id"},
		),
		EntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fueleu_banking_entries_created_total",
			Help: "Total number of ledger entries created",
		}),
	}
}
