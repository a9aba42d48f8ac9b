package pocs

import (
	"fmt"
	"math"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

const (
	weightTolerance   = 1e-6
	probationFactor   = 0.5
	maxReputation     = 100.0
	maxDiversity      = 100.0
	defaultCreditsCap = 1000
)

// Weights are the configurable sub-score weights. They must sum to 1.
type Weights struct {
	Stake        float64 `json:"stake"`
	Reliability  float64 `json:"reliability"`
	Reputation   float64 `json:"reputation"`
	Diversity    float64 `json:"diversity"`
	Contribution float64 `json:"contribution"`
}

// DefaultWeights is the stock weighting.
func DefaultWeights() Weights {
	return Weights{Stake: 0.30, Reliability: 0.20, Reputation: 0.20, Diversity: 0.10, Contribution: 0.20}
}

// Validate rejects negative weights and weights that do not sum to 1.
func (w Weights) Validate() error {
	parts := []float64{w.Stake, w.Reliability, w.Reputation, w.Diversity, w.Contribution}
	var sum float64
	for _, p := range parts {
		if p < 0 || math.IsNaN(p) {
			return fmt.Errorf("negative or NaN weight in %+v", w)
		}
		sum += p
	}
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("weights sum to %v, want 1", sum)
	}
	return nil
}

// Breakdown holds the normalized sub-scores and the final score.
type Breakdown struct {
	Stake        float64 `json:"stake"`
	Reliability  float64 `json:"reliability"`
	Reputation   float64 `json:"reputation"`
	Diversity    float64 `json:"diversity"`
	Contribution float64 `json:"contribution"`
	Score        float64 `json:"score"`
}

// Scorer maps a validator record and the network health onto [0,1].
type Scorer struct {
	weights    Weights
	creditsCap uint64
}

// NewScorer validates the weights. A zero creditsCap uses the default.
func NewScorer(weights Weights, creditsCap uint64) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if creditsCap == 0 {
		creditsCap = defaultCreditsCap
	}
	return &Scorer{weights: weights, creditsCap: creditsCap}, nil
}

// Score returns the composite score. It is a pure function of its inputs.
func (s *Scorer) Score(rec model.ValidatorRecord, health model.NetworkHealth) float64 {
	return s.Explain(rec, health).Score
}

// Explain returns every sub-score alongside the composite score.
func (s *Scorer) Explain(rec model.ValidatorRecord, health model.NetworkHealth) Breakdown {
	if rec.Status == model.StatusSuspended || rec.Stake == 0 {
		return Breakdown{}
	}
	b := Breakdown{
		Stake:        stakeScore(rec.Stake, health.MaxStake),
		Reliability:  unit(rec.Reliability()),
		Reputation:   unit(rec.Reputation / maxReputation),
		Diversity:    unit(rec.Diversity / maxDiversity * (1 + unit(health.Concentration))),
		Contribution: float64(min(rec.Credits, s.creditsCap)) / float64(s.creditsCap),
	}
	// Explicit conversions keep the compiler from fusing products into
	// FMA instructions. Scores must match bit for bit across nodes.
	w := s.weights
	b.Score = float64(w.Stake*b.Stake) +
		float64(w.Reliability*b.Reliability) +
		float64(w.Reputation*b.Reputation) +
		float64(w.Diversity*b.Diversity) +
		float64(w.Contribution*b.Contribution)
	if rec.Status == model.StatusProbation {
		b.Score *= probationFactor
	}
	b.Score = unit(b.Score)
	return b
}

// stakeScore is log-scaled against the largest stake so whales gain
// diminishing weight.
func stakeScore(stake, maxStake uint64) float64 {
	maxStake = max(maxStake, stake)
	if maxStake == 0 {
		return 0
	}
	return unit(math.Log1p(float64(stake)) / math.Log1p(float64(maxStake)))
}

func unit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, 1)
}
