package registry

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/pkg/safe"
)

// Registry tracks every staking validator and drives the penalty state
// machine. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	records map[model.Address]*model.ValidatorRecord
	params  Params
	logger  *zap.Logger
}

// New builds an empty registry.
func New(params Params, logger *zap.Logger) (*Registry, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("registry params: %w", err)
	}
	if params.EscalationWindow == 0 {
		params.EscalationWindow = defaultWindow
	}
	if params.Severity == nil {
		params.Severity = DefaultSeverity()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		records: make(map[model.Address]*model.ValidatorRecord),
		params:  params,
		logger:  logger.Named("registry"),
	}, nil
}

// Params returns the registry's tuning.
func (r *Registry) Params() Params {
	return r.params
}

// Restore replaces the registry contents with persisted records.
func (r *Registry) Restore(records []model.ValidatorRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[model.Address]*model.ValidatorRecord, len(records))
	for i := range records {
		rec := records[i].Clone()
		r.records[rec.ID] = &rec
	}
}

// Get returns a copy of the validator's record.
func (r *Registry) Get(id model.Address) (model.ValidatorRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return model.ValidatorRecord{}, false
	}
	return rec.Clone(), true
}

// StakeOf returns the withdrawable stake, zero for unknown accounts.
func (r *Registry) StakeOf(id model.Address) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rec, ok := r.records[id]; ok {
		return rec.Stake - rec.Bonded
	}
	return 0
}

// Snapshot returns copies of all records sorted by address.
func (r *Registry) Snapshot() []model.ValidatorRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ValidatorRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Clone())
	}
	slices.SortFunc(out, func(a, b model.ValidatorRecord) int { return a.ID.Compare(b.ID) })
	return out
}

// Eligible returns the records that may enter selection: staked and not
// suspended, sorted by address.
func (r *Registry) Eligible() []model.ValidatorRecord {
	all := r.Snapshot()
	out := all[:0]
	for _, rec := range all {
		if rec.Status != model.StatusSuspended && rec.Stake > 0 {
			out = append(out, rec)
		}
	}
	return out
}

// Stake registers a validator or adds to its stake.
func (r *Registry) Stake(id model.Address, amount, height uint64) (model.ValidatorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		rec = &model.ValidatorRecord{
			ID:           id,
			Reputation:   initReputation,
			Status:       model.StatusActive,
			RegisteredAt: height,
		}
	}
	stake, err := safe.Add(rec.Stake, amount)
	if err != nil {
		return model.ValidatorRecord{}, fmt.Errorf("stake %s: %w", id, err)
	}
	rec.Stake = stake
	if !ok {
		r.records[id] = rec
		r.logger.Info("validator registered", zap.Stringer("validator", id), zap.Uint64("stake", stake))
	}
	return rec.Clone(), nil
}

// Unstake withdraws stake. Dropping below the minimum demotes an active
// validator to probation.
func (r *Registry) Unstake(id model.Address, amount uint64) (model.ValidatorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return model.ValidatorRecord{}, model.ErrUnknownValidator
	}
	if amount > rec.Stake-rec.Bonded {
		return model.ValidatorRecord{}, model.ErrInsufficientStake
	}
	rec.Stake -= amount
	if rec.Stake < r.params.MinStake {
		r.transition(rec, eventStakeLost, input{level: rec.PenaltyLevel, stake: rec.Stake})
	}
	return rec.Clone(), nil
}

// ReportOffence records provable misbehaviour. The increment is the kind's
// severity scaled by recent repeat offences. A double sign or invalid block
// is charged once per height; downtime may repeat.
func (r *Registry) ReportOffence(id model.Address, kind model.OffenceKind, height uint64, reason string) (model.ValidatorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return model.ValidatorRecord{}, model.ErrUnknownValidator
	}
	severity, ok := r.params.Severity[kind]
	if !ok {
		return model.ValidatorRecord{}, fmt.Errorf("unknown offence kind %q", kind)
	}
	if kind != model.OffenceDowntime && rec.HasOffence(kind, height) {
		return model.ValidatorRecord{}, fmt.Errorf("%s at %d: %w", kind, height, model.ErrOffenceRecorded)
	}
	increment := r.escalate(rec, severity, height)
	r.penalize(rec, model.Offence{Kind: kind, Height: height, Increment: increment, Reason: reason})
	return rec.Clone(), nil
}

// escalate multiplies severity by min(5, 1 + 0.5*n) where n counts offences
// inside the escalation window ending at height.
func (r *Registry) escalate(rec *model.ValidatorRecord, severity, height uint64) uint64 {
	var prior uint64
	for _, o := range rec.Offences {
		if o.Kind == model.OffenceOverride {
			continue
		}
		if o.Height+r.params.EscalationWindow > height {
			prior++
		}
	}
	factor := min(2+prior, 2*maxEscalation)
	return severity * factor / 2
}

func (r *Registry) penalize(rec *model.ValidatorRecord, o model.Offence) {
	level, err := safe.Add(rec.PenaltyLevel, o.Increment)
	if err != nil {
		level = math.MaxUint64
	}
	rec.PenaltyLevel = level
	rec.Offences = append(rec.Offences, o)
	r.transition(rec, eventPenalty, input{level: level, increment: o.Increment, stake: rec.Stake})
	r.logger.Warn("validator penalized",
		zap.Stringer("validator", rec.ID),
		zap.String("offence", string(o.Kind)),
		zap.Uint64("increment", o.Increment),
		zap.Uint64("penalty_level", level),
		zap.Stringer("status", rec.Status))
}

// RecordDuty credits a fulfilled block duty at height and decays the penalty
// level. A decay stamped at or below the last applied stamp is ignored.
func (r *Registry) RecordDuty(id model.Address, height uint64) (model.ValidatorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return model.ValidatorRecord{}, model.ErrUnknownValidator
	}
	rec.DutiesExpected++
	rec.DutiesFulfilled++
	rec.BlocksProduced++
	if rec.Status != model.StatusSuspended {
		r.decayAt(rec, height)
	}
	return rec.Clone(), nil
}

// RecordMissedDuty counts an elected slot with no block and reports downtime.
func (r *Registry) RecordMissedDuty(id model.Address, height uint64) (model.ValidatorRecord, error) {
	r.mu.Lock()
	rec, ok := r.records[id]
	if !ok {
		r.mu.Unlock()
		return model.ValidatorRecord{}, model.ErrUnknownValidator
	}
	rec.DutiesExpected++
	r.mu.Unlock()
	return r.ReportOffence(id, model.OffenceDowntime, height, "missed block duty")
}

// RecordReward adds a block reward to the validator's lifetime total.
func (r *Registry) RecordReward(id model.Address, amount uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return model.ErrUnknownValidator
	}
	total, err := safe.Add(rec.TotalRewards, amount)
	if err != nil {
		return err
	}
	rec.TotalRewards = total
	return nil
}

func (r *Registry) decayAt(rec *model.ValidatorRecord, height uint64) {
	if height <= rec.LastDecayHeight {
		return
	}
	rec.LastDecayHeight = height
	r.decay(rec)
}

func (r *Registry) decay(rec *model.ValidatorRecord) {
	if rec.PenaltyLevel > r.params.DecayRate {
		rec.PenaltyLevel -= r.params.DecayRate
	} else {
		rec.PenaltyLevel = 0
	}
	r.transition(rec, eventDecay, input{level: rec.PenaltyLevel, stake: rec.Stake})
}

func (r *Registry) transition(rec *model.ValidatorRecord, ev event, in input) {
	next := step(r.params, rec.Status, ev, in)
	if next == rec.Status {
		return
	}
	r.logger.Info("validator status changed",
		zap.Stringer("validator", rec.ID),
		zap.Stringer("from", rec.Status),
		zap.Stringer("to", next),
		zap.Uint64("penalty_level", rec.PenaltyLevel))
	rec.Status = next
}

// CheckRating rejects ratings outside the accepted range.
func CheckRating(rating float64) error {
	if rating < minRating || rating > maxRating || math.IsNaN(rating) {
		return fmt.Errorf("rating %v outside [%v,%v]: %w", rating, minRating, maxRating, model.ErrMalformedTransaction)
	}
	return nil
}

// RatePeer folds a rating at height into the reviewee's reputation as an
// exponentially weighted moving average. A reviewer rates the same reviewee
// at most once per rating cooldown and gains collaboration for each rating.
func (r *Registry) RatePeer(reviewer, reviewee model.Address, rating float64, height uint64) (model.ValidatorRecord, error) {
	if err := CheckRating(rating); err != nil {
		return model.ValidatorRecord{}, err
	}
	if reviewer == reviewee {
		return model.ValidatorRecord{}, fmt.Errorf("validator %s cannot rate itself", reviewer)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	from, ok := r.records[reviewer]
	if !ok {
		return model.ValidatorRecord{}, fmt.Errorf("reviewer: %w", model.ErrUnknownValidator)
	}
	rec, ok := r.records[reviewee]
	if !ok {
		return model.ValidatorRecord{}, fmt.Errorf("reviewee: %w", model.ErrUnknownValidator)
	}
	key := ratingKey(reviewee)
	if err := onCooldown(from, key, height, r.params.RatingCooldown); err != nil {
		return model.ValidatorRecord{}, err
	}
	alpha := r.params.ReputationAlpha
	rec.Reputation = clamp(float64(alpha*rating)+float64((1-alpha)*rec.Reputation), 0, maxReputation)
	from.Diversity = clamp(from.Diversity+collaborationPerReview, 0, maxDiversity)
	stamp(from, key, height)
	return rec.Clone(), nil
}

func ratingKey(reviewee model.Address) string {
	return "rate:" + reviewee.String()
}

// onCooldown fails when key was stamped less than window blocks before height.
func onCooldown(rec *model.ValidatorRecord, key string, height, window uint64) error {
	last, ok := rec.Cooldowns[key]
	if ok && height < last+window {
		return fmt.Errorf("%s at height %d, last at %d: %w", key, height, last, model.ErrCooldown)
	}
	return nil
}

func stamp(rec *model.ValidatorRecord, key string, height uint64) {
	if rec.Cooldowns == nil {
		rec.Cooldowns = make(map[string]uint64)
	}
	rec.Cooldowns[key] = height
}

// Override sets the penalty level by governance decision and re-evaluates
// the status in the direction of the change.
func (r *Registry) Override(id model.Address, level, height uint64, reason string) (model.ValidatorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return model.ValidatorRecord{}, model.ErrUnknownValidator
	}
	prev := rec.PenaltyLevel
	rec.PenaltyLevel = level
	rec.Offences = append(rec.Offences, model.Offence{
		Kind:   model.OffenceOverride,
		Height: height,
		Reason: reason,
	})
	switch {
	case level > prev:
		r.transition(rec, eventPenalty, input{level: level, increment: level - prev, stake: rec.Stake})
	case level < prev:
		r.transition(rec, eventDecay, input{level: level, stake: rec.Stake})
	}
	r.logger.Warn("penalty overridden",
		zap.Stringer("validator", id),
		zap.Uint64("from", prev),
		zap.Uint64("to", level),
		zap.String("reason", reason))
	return rec.Clone(), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
