package registry

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/pkg/safe"
)

// Activity is an off-chain contribution attested to the registry.
type Activity string

const (
	ActivityCodeAudit          Activity = "code_audit"
	ActivityDocumentation      Activity = "documentation"
	ActivityCommunitySupport   Activity = "community_support"
	ActivityBugReport          Activity = "bug_report"
	ActivityEducationalContent Activity = "educational_content"
)

// activityCaps bounds the credits a single claim may earn.
var activityCaps = map[Activity]uint64{
	ActivityCodeAudit:          100,
	ActivityDocumentation:      50,
	ActivityCommunitySupport:   30,
	ActivityBugReport:          200,
	ActivityEducationalContent: 80,
}

// ActivityCap returns the per-claim credit cap of an activity.
func ActivityCap(a Activity) (uint64, bool) {
	c, ok := activityCaps[a]
	return c, ok
}

// EarnCredits adds credits for an activity claimed at height, capped per
// claim. One activity may be claimed once per claim cooldown. Suspended
// validators may still earn credits.
func (r *Registry) EarnCredits(id model.Address, activity Activity, credits, height uint64) (uint64, error) {
	limit, ok := activityCaps[activity]
	if !ok {
		return 0, fmt.Errorf("unknown activity %q: %w", activity, model.ErrMalformedTransaction)
	}
	earned := min(credits, limit)
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return 0, model.ErrUnknownValidator
	}
	key := "claim:" + string(activity)
	if err := onCooldown(rec, key, height, r.params.ClaimCooldown); err != nil {
		return 0, err
	}
	total, err := safe.Add(rec.Credits, earned)
	if err != nil {
		return 0, err
	}
	rec.Credits = total
	stamp(rec, key, height)
	r.logger.Debug("credits earned",
		zap.Stringer("validator", id),
		zap.String("activity", string(activity)),
		zap.Uint64("credits", earned))
	return earned, nil
}

// RedeemCredits converts credits into bonded stake and applies one decay
// step. Bonded stake is registry weight only; no coins are issued.
func (r *Registry) RedeemCredits(id model.Address, credits uint64) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return 0, model.ErrUnknownValidator
	}
	if credits == 0 || credits > rec.Credits {
		return 0, fmt.Errorf("redeem %d of %d credits: %w", credits, rec.Credits, model.ErrInsufficientCredits)
	}
	value := uint64(math.Floor(float64(credits) * r.params.CreditToStakeRatio))
	stake, err := safe.Add(rec.Stake, value)
	if err != nil {
		return 0, err
	}
	rec.Credits -= credits
	rec.Stake = stake
	rec.Bonded += value
	r.decay(rec)
	r.logger.Info("credits redeemed",
		zap.Stringer("validator", id),
		zap.Uint64("credits", credits),
		zap.Uint64("stake", value),
		zap.Uint64("penalty_level", rec.PenaltyLevel))
	return value, nil
}

// RecordCollaboration raises the diversity metric, capped at 100.
func (r *Registry) RecordCollaboration(id model.Address, score float64) (model.ValidatorRecord, error) {
	if score < 0 || math.IsNaN(score) {
		return model.ValidatorRecord{}, fmt.Errorf("collaboration score %v must be non-negative", score)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return model.ValidatorRecord{}, model.ErrUnknownValidator
	}
	rec.Diversity = clamp(rec.Diversity+score, 0, maxDiversity)
	return rec.Clone(), nil
}
