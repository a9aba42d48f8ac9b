package node

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/clock"
	"github.com/goodnatureofminers/pocschain/internal/metrics"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// OnTransactionReceived admits a transaction relayed by a peer.
func (n *Node) OnTransactionReceived(_ context.Context, tx model.Transaction) error {
	err := n.admit(tx)
	n.Metrics.ObserveTransaction(metrics.SourcePeer, err)
	return err
}

// SubmitTransaction admits a client transaction and relays it to peers.
func (n *Node) SubmitTransaction(ctx context.Context, tx model.Transaction) error {
	err := n.admit(tx)
	n.Metrics.ObserveTransaction(metrics.SourceLocal, err)
	if err != nil {
		return err
	}
	go n.Broadcaster.BroadcastTransaction(context.WithoutCancel(ctx), tx)
	return nil
}

// admit runs the mempool admission path: validation against the committed
// ledger advanced by the sender's pending transactions, then the pool.
func (n *Node) admit(tx model.Transaction) error {
	if halted, cause := n.Chain.Halted(); halted {
		return model.Fatal("admit transaction", fmt.Errorf("%w: %v", model.ErrChainHalted, cause))
	}
	if n.Pool.Has(tx.Hash) {
		return model.Reject("admit transaction", fmt.Errorf("%s: %w", tx.Hash, model.ErrDuplicateTransaction))
	}
	if err := n.Validator.Validate(&tx, pendingView{ledger: n.Ledger, pool: n.Pool}).Err(); err != nil {
		n.logger.Debug("transaction rejected", zap.Stringer("tx", tx.Hash), zap.Error(err))
		return err
	}
	if err := n.Pool.Add(tx); err != nil {
		return model.Reject("admit transaction", err)
	}
	n.Metrics.SetMempoolSize(n.Pool.Len())
	return nil
}

// pendingView reports accounts with the nonce the sender's next pool
// transaction must carry.
type pendingView struct {
	ledger Ledger
	pool   Pool
}

func (v pendingView) Account(addr model.Address) (model.Account, bool) {
	acct, ok := v.ledger.Account(addr)
	if !ok {
		return acct, false
	}
	acct.Nonce = v.pool.PendingNonce(addr, acct.Nonce)
	return acct, true
}

// OnBlockReceived appends a peer block. Violations are returned to the
// sender and, where the block proves misbehaviour, reported on chain as
// evidence signed by this node.
func (n *Node) OnBlockReceived(ctx context.Context, b *model.Block) error {
	err := n.checkTimestamp(b)
	if err == nil {
		err = n.Chain.Append(ctx, b)
	}
	n.Metrics.ObserveBlockReceived(err)
	if err == nil {
		n.logger.Info("block accepted",
			zap.Uint64("height", b.Index),
			zap.Stringer("hash", b.Hash),
			zap.Stringer("producer", b.Producer))
		n.confirm(ctx, *b)
		return nil
	}
	switch model.ClassOf(err) {
	case model.ClassConsensusViolation:
		n.logger.Warn("block refused",
			zap.Uint64("height", b.Index),
			zap.Stringer("producer", b.Producer),
			zap.Error(err))
		n.collectEvidence(ctx, b, err)
	case model.ClassIntegrityFatal:
		n.logger.Error("block refused, chain halted", zap.Uint64("height", b.Index), zap.Error(err))
	default:
		n.logger.Warn("block not appended", zap.Uint64("height", b.Index), zap.Error(err))
	}
	return err
}

// checkTimestamp refuses blocks stamped more than one slot ahead of the
// local clock. The chain itself never reads the clock, so replay stays
// deterministic.
func (n *Node) checkTimestamp(b *model.Block) error {
	limit := clock.Millis(n.Clock) + n.blockTime.Milliseconds()
	if b.Timestamp > limit {
		return model.Violation("receive block", fmt.Errorf("timestamp %d, limit %d: %w", b.Timestamp, limit, model.ErrFutureTimestamp))
	}
	return nil
}

// collectEvidence submits an EVIDENCE transaction against the producer of a
// refused block when the block is provably its own work. Each producer is
// reported once per height and kind. Followers have no key to sign with.
func (n *Node) collectEvidence(ctx context.Context, b *model.Block, cause error) {
	if n.Signer == nil {
		return
	}
	if b.ComputeHash() != b.Hash || !n.Verifier.Verify(b.Producer, b.Hash, b.Signature) {
		return
	}
	ev, ok := n.evidenceOf(b, cause)
	if !ok {
		return
	}
	if _, known := n.Registry.Get(b.Producer); !known {
		return
	}
	key := evidence{producer: b.Producer, index: b.Index, kind: ev.Kind}
	n.mu.Lock()
	_, seen := n.reported[key]
	n.reported[key] = struct{}{}
	n.mu.Unlock()
	if seen {
		return
	}
	tx, err := n.operation(ctx, model.KindEvidence, b.Producer, ev)
	if err != nil {
		n.logger.Warn("evidence not submitted", zap.Stringer("producer", b.Producer), zap.Error(err))
		return
	}
	n.logger.Warn("misbehaviour reported",
		zap.Stringer("producer", b.Producer),
		zap.String("kind", string(ev.Kind)),
		zap.Uint64("height", b.Index),
		zap.Stringer("tx", tx.Hash))
}

// evidenceOf builds the proof for cause. A double sign pairs b with the
// appended block at its height. Any other content failure is an invalid
// proposal, provable only while b still extends the tip.
func (n *Node) evidenceOf(b *model.Block, cause error) (model.Evidence, bool) {
	switch {
	case errors.Is(cause, model.ErrIndexOccupied):
		existing, ok := n.Chain.BlockAt(b.Index)
		if !ok || existing.Producer != b.Producer || existing.PrevHash != b.PrevHash || existing.Hash == b.Hash {
			return model.Evidence{}, false
		}
		return model.Evidence{Kind: model.OffenceDoubleSign, Blocks: []model.Block{existing, *b}}, true
	case errors.Is(cause, model.ErrBrokenLinkage),
		errors.Is(cause, model.ErrWrongProducer),
		errors.Is(cause, model.ErrHashMismatch),
		errors.Is(cause, model.ErrStaleTimestamp),
		errors.Is(cause, model.ErrFutureTimestamp),
		errors.Is(cause, model.ErrNoEligibleValidator):
		return model.Evidence{}, false
	}
	tip := n.Chain.Tip()
	if b.Index != tip.Index+1 || b.PrevHash != tip.Hash {
		return model.Evidence{}, false
	}
	return model.Evidence{Kind: model.OffenceInvalidBlock, Blocks: []model.Block{*b}}, true
}
