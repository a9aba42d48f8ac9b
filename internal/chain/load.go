package chain

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

// replay rebuilds the ledger and the registry from stored blocks. Every
// block goes through full append validation, election included. A gap in
// the stored indexes ends the replay there and drops the unreachable tail
// from the store; a stored block that fails validation halts the chain.
func (c *Chain) replay(ctx context.Context, genesis model.Block, stored []model.Block) error {
	first := stored[0]
	if first.ComputeHash() != first.Hash {
		return c.halt(fmt.Errorf("stored genesis hash %s does not match its contents", first.Hash))
	}
	if first.Hash != genesis.Hash {
		return c.halt(fmt.Errorf("stored genesis %s, configured genesis %s", first.Hash, genesis.Hash))
	}
	c.push(genesis)

	for _, b := range stored[1:] {
		if err := ctx.Err(); err != nil {
			return err
		}
		if next := c.Tip().Index + 1; b.Index != next {
			c.logger.Warn("stored chain has a gap, dropping the tail",
				zap.Uint64("missing", next),
				zap.Uint64("found", b.Index))
			if err := c.store.Truncate(ctx, next); err != nil {
				return fmt.Errorf("truncate stored blocks from %d: %w", next, err)
			}
			break
		}
		if err := c.append(ctx, &b, true); err != nil {
			if model.ClassOf(err) == model.ClassIntegrityFatal {
				return err
			}
			return c.halt(fmt.Errorf("replay block %d: %w", b.Index, err))
		}
	}
	if err := c.compareValidators(ctx); err != nil {
		return err
	}

	tip := c.Tip()
	c.logger.Info("chain reloaded",
		zap.Uint64("height", tip.Index),
		zap.Stringer("tip", tip.Hash),
		zap.Stringer("state_root", tip.StateRoot),
		zap.Int("validators", len(c.registry.Snapshot())))
	return nil
}

// compareValidators warns when the persisted validator records differ from
// the replayed registry. The replayed records win and are written with the
// next block.
func (c *Chain) compareValidators(ctx context.Context) error {
	stored, err := c.store.Validators(ctx)
	if err != nil {
		return fmt.Errorf("load validators: %w", err)
	}
	slices.SortFunc(stored, func(a, b model.ValidatorRecord) int { return a.ID.Compare(b.ID) })
	replayed := c.registry.Snapshot()
	if !reflect.DeepEqual(stored, replayed) {
		c.logger.Warn("persisted validators differ from replay",
			zap.Int("stored", len(stored)),
			zap.Int("replayed", len(replayed)))
	}
	return nil
}
