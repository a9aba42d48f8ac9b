package chain

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/ledger"
	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/internal/registry"
)

// applyRegistry feeds a block into the registry in a fixed order: the
// producers that missed the slots before it, then its transactions, then
// the producer's duty and reward. Every node replays the same sequence.
func (c *Chain) applyRegistry(b *model.Block, missed []model.Address) {
	for _, id := range missed {
		rec, err := c.registry.RecordMissedDuty(id, b.Index)
		if err != nil {
			c.logger.Warn("registry missed duty update failed", zap.Stringer("validator", id), zap.Error(err))
			continue
		}
		c.logger.Debug("producer missed its slot",
			zap.Stringer("validator", id),
			zap.Uint64("index", b.Index),
			zap.Stringer("status", rec.Status))
	}
	for i := range b.Transactions {
		tx := &b.Transactions[i]
		if err := c.applyOperation(tx, b.Index); err != nil {
			c.logger.Warn("registry update skipped",
				zap.Stringer("tx", tx.Hash),
				zap.Stringer("kind", tx.Kind),
				zap.Error(err))
		}
	}
	if b.Producer == model.Mint {
		return
	}
	if _, err := c.registry.RecordDuty(b.Producer, b.Index); err != nil {
		c.logger.Warn("registry duty update failed", zap.Stringer("producer", b.Producer), zap.Error(err))
		return
	}
	if err := c.registry.RecordReward(b.Producer, c.params.BlockReward); err != nil {
		c.logger.Warn("registry reward update failed", zap.Stringer("producer", b.Producer), zap.Error(err))
	}
}

// applyOperation applies the registry side of one committed transaction.
// The outcome depends only on the registry state and tx, so a rejected
// operation is rejected on every node alike.
func (c *Chain) applyOperation(tx *model.Transaction, height uint64) error {
	switch tx.Kind {
	case model.KindStake:
		_, err := c.registry.Stake(tx.From, tx.Amount, height)
		return err
	case model.KindUnstake:
		_, err := c.registry.Unstake(tx.From, tx.Amount)
		return err
	case model.KindCreditClaim:
		var claim model.CreditClaim
		if err := model.DecodePayload(tx.Payload, &claim); err != nil {
			return err
		}
		_, err := c.registry.EarnCredits(tx.From, registry.Activity(claim.Activity), claim.Credits, height)
		return err
	case model.KindCreditRedeem:
		var redemption model.CreditRedemption
		if err := model.DecodePayload(tx.Payload, &redemption); err != nil {
			return err
		}
		_, err := c.registry.RedeemCredits(tx.From, redemption.Credits)
		return err
	case model.KindPeerRating:
		var rating model.PeerRating
		if err := model.DecodePayload(tx.Payload, &rating); err != nil {
			return err
		}
		_, err := c.registry.RatePeer(tx.From, tx.To, float64(rating.Rating), height)
		return err
	case model.KindEvidence:
		var ev model.Evidence
		if err := model.DecodePayload(tx.Payload, &ev); err != nil {
			return err
		}
		_, err := c.registry.ReportOffence(tx.To, ev.Kind, ev.Height(),
			fmt.Sprintf("evidence %s from %s", tx.Hash, tx.From))
		return err
	}
	return nil
}

// checkEvidence runs the evidence rules that need the chain. Evidence may
// not point past the block carrying it. An invalid block proposal must
// extend tip, come from the producer elected for its slot and fail
// verification against base, the ledger at tip.
func (c *Chain) checkEvidence(ctx context.Context, tip model.Block, base *ledger.Ledger, height uint64, tx *model.Transaction) error {
	var ev model.Evidence
	if err := model.DecodePayload(tx.Payload, &ev); err != nil {
		return err
	}
	if ev.Height() > height {
		return fmt.Errorf("offence at %d reported at %d: %w", ev.Height(), height, model.ErrInvalidEvidence)
	}
	if ev.Kind != model.OffenceInvalidBlock {
		return nil
	}
	proposal := &ev.Blocks[0]
	if proposal.Index != tip.Index+1 || proposal.PrevHash != tip.Hash {
		return fmt.Errorf("proposal %d does not extend tip %d: %w", proposal.Index, tip.Index, model.ErrInvalidEvidence)
	}
	elected, _, err := c.electAt(tip, proposal.Timestamp)
	if err != nil || elected != proposal.Producer {
		return fmt.Errorf("proposal producer %s was not elected: %w", proposal.Producer, model.ErrInvalidEvidence)
	}
	if _, _, err := c.verifyContent(ctx, tip, base, proposal); err == nil {
		return fmt.Errorf("proposal %s verifies: %w", proposal.Hash, model.ErrInvalidEvidence)
	}
	return nil
}
