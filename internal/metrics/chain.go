package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainAppendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain",
		Name:      "append_total",
		Help:      "Count of block append attempts.",
	}, []string{"status"})

	chainAppendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain",
		Name:      "append_duration_seconds",
		Help:      "Duration of block validation and append.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	chainBlockTransactions = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain",
		Name:      "block_transactions",
		Help:      "Number of transactions per appended block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	})

	chainHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain",
		Name:      "height",
		Help:      "Index of the chain tip.",
	})

	chainHalted = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain",
		Name:      "halted",
		Help:      "1 once an integrity failure halted writes.",
	})

	assemblyTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "assembler",
		Name:      "transactions_total",
		Help:      "Count of candidate transactions by assembly outcome.",
	}, []string{"outcome"})

	assemblyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "assembler",
		Name:      "duration_seconds",
		Help:      "Duration of block assembly.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Chain tracks block append and assembly.
type Chain struct{}

// NewChain creates a Chain metrics collector.
func NewChain() *Chain {
	return &Chain{}
}

// ObserveAppend records an append attempt outcome and duration.
func (Chain) ObserveAppend(err error, txs int, started time.Time) {
	s := status(err)
	chainAppendTotal.WithLabelValues(s).Inc()
	chainAppendDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
	if err == nil {
		chainBlockTransactions.Observe(float64(txs))
	}
}

// ObserveAssemble records a finished assembly run.
func (Chain) ObserveAssemble(err error, included, skipped int, started time.Time) {
	assemblyDuration.WithLabelValues(status(err)).Observe(time.Since(started).Seconds())
	assemblyTransactionsTotal.WithLabelValues("included").Add(float64(included))
	assemblyTransactionsTotal.WithLabelValues("skipped").Add(float64(skipped))
}

// SetHeight publishes the tip index.
func (Chain) SetHeight(index uint64) {
	chainHeight.Set(float64(index))
}

// SetHalted flags an integrity halt.
func (Chain) SetHalted() {
	chainHalted.Set(1)
}
