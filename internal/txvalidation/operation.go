package txvalidation

import (
	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/internal/registry"
)

// evidenceBlocks is the number of signed blocks each offence kind needs.
var evidenceBlocks = map[model.OffenceKind]int{
	model.OffenceDoubleSign:   2,
	model.OffenceInvalidBlock: 1,
}

// checkOperation validates the payload of a registry operation against the
// committed validator records.
func (v *Validator) checkOperation(tx *model.Transaction) Verdict {
	if tx.Amount != 0 {
		return reject("%s moves no value: %w", tx.Kind, model.ErrMalformedTransaction)
	}
	switch tx.Kind {
	case model.KindCreditClaim:
		if tx.To != tx.From {
			return reject("claim must target the claimant: %w", model.ErrMalformedTransaction)
		}
		var claim model.CreditClaim
		if err := model.DecodePayload(tx.Payload, &claim); err != nil {
			return reject("claim %w", err)
		}
		if _, ok := registry.ActivityCap(registry.Activity(claim.Activity)); !ok || claim.Credits == 0 {
			return reject("claim of %d credits for %q: %w", claim.Credits, claim.Activity, model.ErrMalformedTransaction)
		}
		if _, ok := v.validator(tx.From); !ok {
			return reject("claimant %s: %w", tx.From, model.ErrUnknownValidator)
		}
	case model.KindCreditRedeem:
		if tx.To != tx.From {
			return reject("redemption must target the holder: %w", model.ErrMalformedTransaction)
		}
		var redemption model.CreditRedemption
		if err := model.DecodePayload(tx.Payload, &redemption); err != nil {
			return reject("redemption %w", err)
		}
		if redemption.Credits == 0 {
			return reject("redemption of zero credits: %w", model.ErrMalformedTransaction)
		}
		rec, ok := v.validator(tx.From)
		if !ok {
			return reject("holder %s: %w", tx.From, model.ErrUnknownValidator)
		}
		if rec.Credits < redemption.Credits {
			return reject("redeem %d of %d credits: %w", redemption.Credits, rec.Credits, model.ErrInsufficientCredits)
		}
	case model.KindPeerRating:
		if tx.To == tx.From {
			return reject("validator cannot rate itself: %w", model.ErrMalformedTransaction)
		}
		var rating model.PeerRating
		if err := model.DecodePayload(tx.Payload, &rating); err != nil {
			return reject("rating %w", err)
		}
		if err := registry.CheckRating(float64(rating.Rating)); err != nil {
			return reject("%w", err)
		}
		if _, ok := v.validator(tx.From); !ok {
			return reject("reviewer %s: %w", tx.From, model.ErrUnknownValidator)
		}
		if _, ok := v.validator(tx.To); !ok {
			return reject("reviewee %s: %w", tx.To, model.ErrUnknownValidator)
		}
	case model.KindEvidence:
		return v.checkEvidence(tx)
	}
	return accept()
}

// checkEvidence verifies that every evidence block is signed by the accused
// and, for a double sign, that the two blocks conflict. Whether a single
// block is invalid depends on chain state and is left to the chain.
func (v *Validator) checkEvidence(tx *model.Transaction) Verdict {
	var ev model.Evidence
	if err := model.DecodePayload(tx.Payload, &ev); err != nil {
		return reject("evidence %w", err)
	}
	want, ok := evidenceBlocks[ev.Kind]
	if !ok || len(ev.Blocks) != want {
		return reject("%q evidence with %d blocks: %w", ev.Kind, len(ev.Blocks), model.ErrInvalidEvidence)
	}
	for i := range ev.Blocks {
		b := &ev.Blocks[i]
		if b.Producer != tx.To {
			return reject("block %d produced by %s, accused %s: %w", b.Index, b.Producer, tx.To, model.ErrInvalidEvidence)
		}
		if b.ComputeHash() != b.Hash || !v.verifier.Verify(b.Producer, b.Hash, b.Signature) {
			return reject("block %d is not signed by %s: %w", b.Index, b.Producer, model.ErrInvalidEvidence)
		}
	}
	if ev.Kind == model.OffenceDoubleSign {
		first, second := &ev.Blocks[0], &ev.Blocks[1]
		if first.Index != second.Index || first.PrevHash != second.PrevHash || first.Hash == second.Hash {
			return reject("blocks %s and %s do not conflict: %w", first.Hash, second.Hash, model.ErrInvalidEvidence)
		}
	}
	rec, ok := v.validator(tx.To)
	if !ok {
		return reject("accused %s: %w", tx.To, model.ErrUnknownValidator)
	}
	if rec.HasOffence(ev.Kind, ev.Height()) {
		return reject("%s at %d: %w", ev.Kind, ev.Height(), model.ErrOffenceRecorded)
	}
	return accept()
}

func (v *Validator) validator(id model.Address) (model.ValidatorRecord, bool) {
	if v.registry == nil {
		return model.ValidatorRecord{}, false
	}
	return v.registry.Get(id)
}
