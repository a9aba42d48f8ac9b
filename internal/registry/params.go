package registry

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

const (
	maxReputation  = 100.0
	minRating      = 1.0
	maxRating      = 100.0
	maxDiversity   = 100.0
	maxEscalation  = 5
	defaultWindow  = 1000
	initReputation = maxReputation

	// collaborationPerReview is the diversity a reviewer gains per rating.
	collaborationPerReview = 1.0
)

// Params tunes the penalty state machine and contribution accounting.
type Params struct {
	ProbationThreshold   uint64
	SuspensionThreshold  uint64
	SingleEventThreshold uint64
	LowWater             uint64
	DecayRate            uint64
	ReputationAlpha      float64
	EscalationWindow     uint64
	CreditToStakeRatio   float64
	MinStake             uint64
	// ClaimCooldown is the number of blocks between two credit claims of
	// the same activity by one validator.
	ClaimCooldown uint64
	// RatingCooldown is the number of blocks between two ratings of the
	// same reviewee by one reviewer.
	RatingCooldown uint64
	Severity       map[model.OffenceKind]uint64
}

// DefaultParams mirrors the node's default configuration.
func DefaultParams() Params {
	return Params{
		ProbationThreshold:   30,
		SuspensionThreshold:  70,
		SingleEventThreshold: 25,
		LowWater:             10,
		DecayRate:            5,
		ReputationAlpha:      0.3,
		EscalationWindow:     defaultWindow,
		CreditToStakeRatio:   0.1,
		MinStake:             10,
		ClaimCooldown:        100,
		RatingCooldown:       20,
		Severity:             DefaultSeverity(),
	}
}

// DefaultSeverity weights each offence kind.
func DefaultSeverity() map[model.OffenceKind]uint64 {
	return map[model.OffenceKind]uint64{
		model.OffenceDoubleSign:   40,
		model.OffenceInvalidBlock: 25,
		model.OffenceDowntime:     10,
	}
}

// Validate checks threshold ordering and ranges.
func (p Params) Validate() error {
	if p.LowWater >= p.ProbationThreshold {
		return fmt.Errorf("low-water %d must be below probation threshold %d", p.LowWater, p.ProbationThreshold)
	}
	if p.ProbationThreshold >= p.SuspensionThreshold {
		return fmt.Errorf("probation threshold %d must be below suspension threshold %d", p.ProbationThreshold, p.SuspensionThreshold)
	}
	if p.SingleEventThreshold == 0 {
		return errors.New("single-event threshold must be positive")
	}
	if p.ReputationAlpha <= 0 || p.ReputationAlpha > 1 {
		return fmt.Errorf("reputation alpha %v must be in (0,1]", p.ReputationAlpha)
	}
	if p.CreditToStakeRatio <= 0 {
		return errors.New("credit to stake ratio must be positive")
	}
	if p.ClaimCooldown == 0 {
		return errors.New("claim cooldown must be positive")
	}
	return nil
}
