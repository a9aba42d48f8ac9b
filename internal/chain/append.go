package chain

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/ledger"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// Append validates b against the tip and commits it. Any failure leaves the
// chain, ledger and registry untouched and is classified: ConsensusViolation
// for a bad block, IntegrityFatal when the stored tip no longer matches its
// hash. A block that cannot be persisted is not appended.
func (c *Chain) Append(ctx context.Context, b *model.Block) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveAppend(err, len(b.Transactions), started)
	}()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.append(ctx, b, false)
}

// append runs the ordered checks. replay appends already persisted blocks
// and skips the write.
func (c *Chain) append(ctx context.Context, b *model.Block, replay bool) error {
	if halted, _ := c.Halted(); halted {
		return model.Fatal("append", model.ErrChainHalted)
	}
	if c.Len() == 0 {
		return fmt.Errorf("append block %d: chain not open", b.Index)
	}
	tip := c.Tip()
	if recomputed := tip.ComputeHash(); recomputed != tip.Hash {
		return c.halt(fmt.Errorf("block %d stored hash %s, recomputed %s", tip.Index, tip.Hash, recomputed))
	}

	if b.Index <= tip.Index {
		return model.Violation("append", fmt.Errorf("index %d, tip %d: %w", b.Index, tip.Index, model.ErrIndexOccupied))
	}
	if b.Index != tip.Index+1 || b.PrevHash != tip.Hash {
		return model.Violation("append", fmt.Errorf("block %d prev %s, tip %d %s: %w",
			b.Index, b.PrevHash, tip.Index, tip.Hash, model.ErrBrokenLinkage))
	}
	elected, attempt, err := c.electAt(tip, b.Timestamp)
	if err != nil {
		return model.Violation("append", err)
	}
	if elected != b.Producer {
		return model.Violation("append", fmt.Errorf("producer %s, elected %s: %w", b.Producer, elected, model.ErrWrongProducer))
	}
	if !c.verifier.Verify(b.Producer, b.Hash, b.Signature) {
		return model.Violation("append", fmt.Errorf("block %d producer signature: %w", b.Index, model.ErrInvalidSignature))
	}
	if computed := b.ComputeHash(); computed != b.Hash {
		return model.Violation("append", fmt.Errorf("block %d declared %s, computed %s: %w", b.Index, b.Hash, computed, model.ErrHashMismatch))
	}
	work, deltas, err := c.verifyContent(ctx, tip, c.ledger, b)
	if err != nil {
		return model.Violation("append", err)
	}

	missed := c.missedDuties(tip, attempt)
	snapshot := c.registry.Snapshot()
	c.applyRegistry(b, missed)
	if !replay {
		if err := c.persist(ctx, b, work, deltas); err != nil {
			c.registry.Restore(snapshot)
			return fmt.Errorf("persist block %d: %w", b.Index, err)
		}
	}
	c.ledger.CommitFrom(work)
	c.push(*b)

	if !replay {
		c.logger.Info("block appended",
			zap.Uint64("index", b.Index),
			zap.Stringer("hash", b.Hash),
			zap.Stringer("producer", b.Producer),
			zap.Uint64("attempt", attempt),
			zap.Int("transactions", len(b.Transactions)))
	}
	return nil
}

// verifyContent checks the transactions of b on a clone of base, which must
// be the state at tip, and returns the executed clone.
func (c *Chain) verifyContent(ctx context.Context, tip model.Block, base *ledger.Ledger, b *model.Block) (*ledger.Ledger, []*model.StateDelta, error) {
	if len(b.Transactions) > c.params.MaxTransactions {
		return nil, nil, fmt.Errorf("%d transactions, limit %d: %w",
			len(b.Transactions), c.params.MaxTransactions, model.ErrTooManyTransactions)
	}
	if err := c.validator.VerifySignatures(ctx, b.Transactions, c.params.SignatureWorkers); err != nil {
		return nil, nil, err
	}
	work := base.Clone()
	deltas, err := c.execute(ctx, tip, base, work, b)
	if err != nil {
		return nil, nil, err
	}
	if root := work.StateRoot(); root != b.StateRoot {
		return nil, nil, fmt.Errorf("block %d declared root %s, computed %s: %w",
			b.Index, b.StateRoot, root, model.ErrStateRootMismatch)
	}
	return work, deltas, nil
}

// execute re-validates and applies every transaction of b on work, then
// issues the block reward.
func (c *Chain) execute(ctx context.Context, tip model.Block, base, work *ledger.Ledger, b *model.Block) ([]*model.StateDelta, error) {
	actx := ledger.ApplyContext{Producer: b.Producer, BlockIndex: b.Index}
	deltas := make([]*model.StateDelta, 0, len(b.Transactions))
	for i := range b.Transactions {
		tx := &b.Transactions[i]
		if err := c.validator.CheckState(tx, work).Reason; err != nil {
			return nil, fmt.Errorf("transaction %d %s: %w", i, tx.Hash, err)
		}
		if tx.Kind == model.KindEvidence {
			if err := c.checkEvidence(ctx, tip, base, b.Index, tx); err != nil {
				return nil, fmt.Errorf("transaction %d %s: %w", i, tx.Hash, err)
			}
		}
		delta, err := work.Apply(tx, actx)
		if err != nil {
			return nil, fmt.Errorf("transaction %d %s: %w", i, tx.Hash, err)
		}
		deltas = append(deltas, delta)
	}
	if err := c.reward(work, b.Producer, b.Index); err != nil {
		return nil, err
	}
	return deltas, nil
}

func (c *Chain) reward(work *ledger.Ledger, producer model.Address, index uint64) error {
	if producer == model.Mint {
		return nil
	}
	if err := work.Issue(producer, c.params.BlockReward, model.ZeroHash, index); err != nil {
		return fmt.Errorf("block reward: %w", err)
	}
	return nil
}

// persist writes b with the accounts and contracts it touched in state and
// every validator record.
func (c *Chain) persist(ctx context.Context, b *model.Block, state *ledger.Ledger, deltas []*model.StateDelta) error {
	if c.store == nil {
		return nil
	}
	touched := map[model.Address]struct{}{}
	contracts := map[model.Address]struct{}{}
	if b.Producer != model.Mint {
		touched[b.Producer] = struct{}{}
	}
	for _, d := range deltas {
		for _, a := range d.Accounts {
			touched[a.Address] = struct{}{}
		}
		if d.Contract != nil {
			contracts[d.Contract.Address] = struct{}{}
		}
	}
	if b.Index == 0 {
		for _, a := range state.Accounts() {
			touched[a.Address] = struct{}{}
		}
	}

	commit := Commit{
		Block:      *b,
		Contracts:  make(map[model.Address]map[string][]byte, len(contracts)),
		Validators: c.registry.Snapshot(),
	}
	for addr := range touched {
		if acct, ok := state.Account(addr); ok {
			commit.Accounts = append(commit.Accounts, acct)
		}
	}
	for addr := range contracts {
		commit.Contracts[addr] = state.ContractStorage(addr)
	}
	return c.store.Commit(ctx, commit)
}
