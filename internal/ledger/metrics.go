package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	earningsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_earnings_total",
			Help: "How many earnings were recorded, partitioned by source.",
		},
		[]string{"source"},
	)

	earnedAmount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_earned_amount_total",
			Help: "Sum of all recorded earnings.",
		},
	)

	allocationsCommitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_allocations_total",
			Help: "How many allocations were committed.",
		},
	)

	allocatedAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_allocated_amount_total",
			Help: "Allocated money, partitioned by bucket.",
		},
		[]string{"bucket"},
	)

	writeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_write_failures_total",
			Help: "Ledger writes that were rolled back, partitioned by reason.",
		},
		[]string{"reason"},
	)
)

// Collectors returns the Prometheus collectors of the ledger.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		earningsRecorded,
		earnedAmount,
		allocationsCommitted,
		allocatedAmount,
		writeFailures,
	}
}
