package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storageOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "leveldb",
		Name:      "operations_total",
		Help:      "Count of local store operations.",
	}, []string{"operation", "status"})
	storageOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "leveldb",
		Name:      "operation_duration_seconds",
		Help:      "Duration of local store operations.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"operation", "status"})
)

// Storage tracks the local block store.
type Storage struct{}

// NewStorage creates a Storage metrics collector.
func NewStorage() *Storage {
	return &Storage{}
}

// Observe records duration and status of a store operation.
func (Storage) Observe(operation string, err error, started time.Time) {
	s := status(err)
	storageOperationsTotal.WithLabelValues(operation, s).Inc()
	storageOperationDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}
