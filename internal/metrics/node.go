package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Slot outcomes.
const (
	SlotProduced   = "produced"
	SlotNotElected = "not_elected"
	SlotSkipped    = "skipped"
	SlotFailed     = "failed"
)

// Transaction sources.
const (
	SourceLocal = "local"
	SourcePeer  = "peer"
)

var (
	nodeSlotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "slots_total",
		Help:      "Count of block slots by outcome.",
	}, []string{"outcome"})

	nodeTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "transactions_total",
		Help:      "Count of received transactions by validation status.",
	}, []string{"source", "status"})

	nodeBlocksReceivedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "blocks_received_total",
		Help:      "Count of blocks received from peers.",
	}, []string{"status"})

	nodeMempoolSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "mempool_size",
		Help:      "Pending transactions in the mempool.",
	})

	broadcastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gossip",
		Name:      "broadcast_total",
		Help:      "Count of per-peer broadcast calls.",
	}, []string{"method", "status"})

	broadcastDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gossip",
		Name:      "broadcast_duration_seconds",
		Help:      "Duration of per-peer broadcast calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// Node tracks the slot loop and peer intake.
type Node struct{}

// NewNode creates a Node metrics collector.
func NewNode() *Node {
	return &Node{}
}

// ObserveSlot counts a slot outcome.
func (Node) ObserveSlot(outcome string) {
	nodeSlotsTotal.WithLabelValues(outcome).Inc()
}

// ObserveTransaction counts a received transaction. source is "local" or "peer".
func (Node) ObserveTransaction(source string, err error) {
	nodeTransactionsTotal.WithLabelValues(source, status(err)).Inc()
}

// ObserveBlockReceived counts a block received from a peer.
func (Node) ObserveBlockReceived(err error) {
	nodeBlocksReceivedTotal.WithLabelValues(status(err)).Inc()
}

// SetMempoolSize publishes the pending transaction count.
func (Node) SetMempoolSize(n int) {
	nodeMempoolSize.Set(float64(n))
}

// Gossip tracks outbound broadcasts.
type Gossip struct{}

// NewGossip creates a Gossip metrics collector.
func NewGossip() *Gossip {
	return &Gossip{}
}

// Observe records one broadcast call to one peer.
func (Gossip) Observe(method string, err error, started time.Time) {
	s := status(err)
	broadcastTotal.WithLabelValues(method, s).Inc()
	broadcastDuration.WithLabelValues(method, s).Observe(time.Since(started).Seconds())
}
