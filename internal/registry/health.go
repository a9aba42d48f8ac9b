package registry

import (
	"math"
	"math/rand/v2"

	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/pkg/safe"
)

// Health computes the network-health snapshot over the eligible set.
// Concentration is the Herfindahl index of stake shares.
func (r *Registry) Health() model.NetworkHealth {
	return HealthOf(r.Eligible())
}

// HealthOf computes the network-health snapshot of the given records.
func HealthOf(records []model.ValidatorRecord) model.NetworkHealth {
	var (
		h                   model.NetworkHealth
		expected, fulfilled uint64
	)
	for _, rec := range records {
		h.ActiveValidators++
		h.TotalStake = saturatingAdd(h.TotalStake, rec.Stake)
		h.MaxStake = max(h.MaxStake, rec.Stake)
		expected = saturatingAdd(expected, rec.DutiesExpected)
		fulfilled = saturatingAdd(fulfilled, min(rec.DutiesFulfilled, rec.DutiesExpected))
	}
	if h.TotalStake > 0 {
		for _, rec := range records {
			share := float64(rec.Stake) / float64(h.TotalStake)
			h.Concentration += float64(share * share)
		}
	}
	if expected > 0 {
		h.MissedBlockRate = 1 - float64(fulfilled)/float64(expected)
	}
	return h
}

// AssignPeerReviews pairs every eligible validator with one reviewee by a
// shuffle seeded from seed. Every node derives the same assignment.
func (r *Registry) AssignPeerReviews(seed model.Hash) []model.ReviewAssignment {
	eligible := r.Eligible()
	if len(eligible) < 2 {
		return nil
	}
	rng := rand.New(rand.NewChaCha8([32]byte(seed)))
	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	out := make([]model.ReviewAssignment, len(eligible))
	for i := range eligible {
		out[i] = model.ReviewAssignment{
			Reviewer: eligible[i].ID,
			Reviewee: eligible[(i+1)%len(eligible)].ID,
		}
	}
	return out
}

// Summary aggregates all records.
func (r *Registry) Summary() model.NetworkSummary {
	records := r.Snapshot()
	var s model.NetworkSummary
	s.Validators = len(records)
	for _, rec := range records {
		switch rec.Status {
		case model.StatusActive:
			s.Active++
		case model.StatusProbation:
			s.Probation++
		case model.StatusSuspended:
			s.Suspended++
		}
		s.TotalStake = saturatingAdd(s.TotalStake, rec.Stake)
		s.TotalCredits = saturatingAdd(s.TotalCredits, rec.Credits)
		s.TotalPenalties = saturatingAdd(s.TotalPenalties, rec.PenaltyLevel)
		s.TotalOffences += len(rec.Offences)
		s.AvgReputation += rec.Reputation
		s.AvgReliability += rec.Reliability()
		s.AvgDiversity += rec.Diversity
	}
	if n := float64(len(records)); n > 0 {
		s.AvgReputation /= n
		s.AvgReliability /= n
		s.AvgDiversity /= n
	}
	return s
}

// saturatingAdd clamps at MaxUint64 instead of wrapping.
func saturatingAdd(a, b uint64) uint64 {
	sum, err := safe.Add(a, b)
	if err != nil {
		return math.MaxUint64
	}
	return sum
}
