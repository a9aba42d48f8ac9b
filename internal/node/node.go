// Package node runs the block slot loop and connects the chain to peers,
// clients and the explorer export.
package node

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/clock"
	"github.com/goodnatureofminers/pocschain/internal/crypto"
	"github.com/goodnatureofminers/pocschain/internal/metrics"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

const DefaultBlockTime = 5 * time.Second

// Deps are the collaborators of a Node. Signer, Broadcaster and Exporter are
// optional: without a signer the node only follows the chain.
type Deps struct {
	Chain       Chain
	Ledger      Ledger
	Registry    Registry
	Pool        Pool
	Validator   TxValidator
	Verifier    crypto.Verifier
	Signer      crypto.Signer
	Broadcaster Broadcaster
	Exporter    Exporter
	Clock       clock.Clock
	Metrics     Metrics
}

type evidence struct {
	producer model.Address
	index    uint64
	kind     model.OffenceKind
}

type Node struct {
	blockTime time.Duration
	Deps
	logger *zap.Logger

	mu       sync.Mutex
	reported map[evidence]struct{}

	// sendMu orders the node's own transactions so each gets the next nonce.
	sendMu sync.Mutex
}

// New validates deps and returns a Node. A zero blockTime selects
// DefaultBlockTime.
func New(blockTime time.Duration, deps Deps, logger *zap.Logger) (*Node, error) {
	if deps.Chain == nil || deps.Ledger == nil || deps.Registry == nil || deps.Pool == nil || deps.Validator == nil || deps.Verifier == nil {
		return nil, errors.New("node: chain, ledger, registry, pool, validator and verifier are required")
	}
	if blockTime <= 0 {
		blockTime = DefaultBlockTime
	}
	if deps.Broadcaster == nil {
		deps.Broadcaster = nopBroadcaster{}
	}
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	logger = logger.Named("node")
	if deps.Signer != nil {
		logger = logger.With(zap.Stringer("self", deps.Signer.Address()))
	}
	return &Node{
		blockTime: blockTime,
		Deps:      deps,
		logger:    logger,
		reported:  make(map[evidence]struct{}),
	}, nil
}

// Run ticks at every slot boundary until ctx is done.
func (n *Node) Run(ctx context.Context) error {
	n.logger.Info("slot loop started", zap.Duration("block_time", n.blockTime))
	for {
		wait := clock.UntilNextSlot(n.Clock.Now(), n.blockTime)
		if err := clock.SleepWithContext(ctx, wait); err != nil {
			n.logger.Info("slot loop stopped")
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		n.Slot(ctx)
	}
}

// Slot runs one production slot and returns its outcome.
func (n *Node) Slot(ctx context.Context) string {
	outcome := n.slot(ctx)
	n.Metrics.ObserveSlot(outcome)
	n.Metrics.SetMempoolSize(n.Pool.Len())
	return outcome
}

func (n *Node) slot(ctx context.Context) string {
	if halted, cause := n.Chain.Halted(); halted {
		n.logger.Error("slot refused, chain halted", zap.Error(cause))
		return metrics.SlotFailed
	}
	tip := n.Chain.Tip()
	now := clock.Millis(n.Clock)

	producer, err := n.Chain.Elect(now)
	switch {
	case errors.Is(err, model.ErrNoEligibleValidator):
		n.logger.Info("slot skipped, no eligible validator", zap.Uint64("height", tip.Index+1))
		return metrics.SlotSkipped
	case errors.Is(err, model.ErrStaleTimestamp):
		n.logger.Warn("slot skipped, clock behind the tip", zap.Uint64("height", tip.Index+1), zap.Error(err))
		return metrics.SlotSkipped
	case err != nil:
		n.logger.Error("election failed", zap.Uint64("height", tip.Index+1), zap.Error(err))
		return metrics.SlotFailed
	}

	if n.Signer == nil || producer != n.Signer.Address() {
		n.logger.Debug("not elected", zap.Uint64("height", tip.Index+1), zap.Stringer("producer", producer))
		return metrics.SlotNotElected
	}

	asm, err := n.Chain.Assemble(ctx, n.Signer, n.Pool, now)
	if err != nil {
		n.logger.Error("assembly failed", zap.Uint64("height", tip.Index+1), zap.Error(err))
		return metrics.SlotFailed
	}
	if err := n.Chain.Append(ctx, asm.Block); err != nil {
		n.logger.Error("own block refused", zap.Uint64("height", asm.Block.Index), zap.Error(err))
		return metrics.SlotFailed
	}
	n.confirm(ctx, *asm.Block)
	peers := n.Broadcaster.BroadcastBlock(ctx, *asm.Block)
	n.logger.Info("block produced",
		zap.Uint64("height", asm.Block.Index),
		zap.Stringer("hash", asm.Block.Hash),
		zap.Int("txs", len(asm.Block.Transactions)),
		zap.Int("skipped", len(asm.Skipped)),
		zap.Int("peers", peers))
	return metrics.SlotProduced
}

// confirm drops b's transactions from the pool and exports b.
func (n *Node) confirm(ctx context.Context, b model.Block) {
	n.Pool.Remove(b.TxHashes()...)
	pruned := n.Pool.PruneStale(func(addr model.Address) uint64 {
		acct, _ := n.Ledger.Account(addr)
		return acct.Nonce
	})
	if pruned > 0 {
		n.logger.Debug("stale transactions pruned", zap.Int("count", pruned))
	}
	if n.Exporter != nil {
		if err := n.Exporter.Export(ctx, b); err != nil {
			n.logger.Error("block not exported", zap.Uint64("height", b.Index), zap.Error(err))
		}
	}
}

func (n *Node) String() string {
	if n.Signer == nil {
		return "follower"
	}
	return fmt.Sprintf("producer %s", n.Signer.Address())
}

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastBlock(context.Context, model.Block) int             { return 0 }
func (nopBroadcaster) BroadcastTransaction(context.Context, model.Transaction) int { return 0 }

type nopMetrics struct{}

func (nopMetrics) ObserveSlot(string)               {}
func (nopMetrics) ObserveTransaction(string, error) {}
func (nopMetrics) ObserveBlockReceived(error)       {}
func (nopMetrics) SetMempoolSize(int)               {}
