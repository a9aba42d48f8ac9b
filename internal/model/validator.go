package model

import "fmt"

// ValidatorStatus is the penalty state of a validator.
type ValidatorStatus uint8

const (
	StatusActive ValidatorStatus = iota + 1
	StatusProbation
	StatusSuspended
)

func (s ValidatorStatus) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusProbation:
		return "PROBATION"
	case StatusSuspended:
		return "SUSPENDED"
	default:
		return fmt.Sprintf("ValidatorStatus(%d)", uint8(s))
	}
}

// OffenceKind names provable misbehaviour.
type OffenceKind string

const (
	OffenceDoubleSign   OffenceKind = "double_sign"
	OffenceInvalidBlock OffenceKind = "invalid_block"
	OffenceDowntime     OffenceKind = "downtime"
	OffenceOverride     OffenceKind = "governance_override"
)

// Offence is one recorded penalty event.
type Offence struct {
	Kind      OffenceKind `json:"kind"`
	Height    uint64      `json:"height"`
	Increment uint64      `json:"increment"`
	Reason    string      `json:"reason,omitempty"`
}

// ValidatorRecord is the registry state of one staking account. Bonded is
// the part of Stake converted from contribution credits; it weighs in
// selection but has no coins in escrow and cannot be unstaked.
type ValidatorRecord struct {
	ID              Address           `json:"id"`
	Stake           uint64            `json:"stake"`
	Bonded          uint64            `json:"bonded"`
	DutiesExpected  uint64            `json:"duties_expected"`
	DutiesFulfilled uint64            `json:"duties_fulfilled"`
	Reputation      float64           `json:"reputation"`
	Diversity       float64           `json:"diversity"`
	Credits         uint64            `json:"credits"`
	PenaltyLevel    uint64            `json:"penalty_level"`
	Status          ValidatorStatus   `json:"status"`
	Offences        []Offence         `json:"offences,omitempty"`
	Cooldowns       map[string]uint64 `json:"cooldowns,omitempty"`
	LastDecayHeight uint64            `json:"last_decay_height"`
	RegisteredAt    uint64            `json:"registered_at"`
	BlocksProduced  uint64            `json:"blocks_produced"`
	TotalRewards    uint64            `json:"total_rewards"`
}

// Reliability is the fraction of expected duties fulfilled. A validator
// with no duties yet is fully reliable.
func (r *ValidatorRecord) Reliability() float64 {
	if r.DutiesExpected == 0 {
		return 1
	}
	if r.DutiesFulfilled >= r.DutiesExpected {
		return 1
	}
	return float64(r.DutiesFulfilled) / float64(r.DutiesExpected)
}

// Clone returns a deep copy.
func (r *ValidatorRecord) Clone() ValidatorRecord {
	c := *r
	c.Offences = append([]Offence(nil), r.Offences...)
	if r.Cooldowns != nil {
		c.Cooldowns = make(map[string]uint64, len(r.Cooldowns))
		for k, v := range r.Cooldowns {
			c.Cooldowns[k] = v
		}
	}
	return c
}

// HasOffence reports whether an offence of kind is recorded at height.
func (r *ValidatorRecord) HasOffence(kind OffenceKind, height uint64) bool {
	for _, o := range r.Offences {
		if o.Kind == kind && o.Height == height {
			return true
		}
	}
	return false
}

// NetworkHealth is the network-wide snapshot fed into scoring.
type NetworkHealth struct {
	ActiveValidators int     `json:"active_validators"`
	TotalStake       uint64  `json:"total_stake"`
	MaxStake         uint64  `json:"max_stake"`
	Concentration    float64 `json:"concentration"`
	MissedBlockRate  float64 `json:"missed_block_rate"`
}

// NetworkSummary aggregates the validator set.
type NetworkSummary struct {
	Validators     int     `json:"validators"`
	Active         int     `json:"active"`
	Probation      int     `json:"probation"`
	Suspended      int     `json:"suspended"`
	TotalStake     uint64  `json:"total_stake"`
	TotalCredits   uint64  `json:"total_credits"`
	TotalPenalties uint64  `json:"total_penalties"`
	TotalOffences  int     `json:"total_offences"`
	AvgReputation  float64 `json:"avg_reputation"`
	AvgReliability float64 `json:"avg_reliability"`
	AvgDiversity   float64 `json:"avg_diversity"`
}

// NetworkStatus is the node's view of the chain and validator set.
type NetworkStatus struct {
	Height      uint64         `json:"height"`
	Tip         Hash           `json:"tip"`
	StateRoot   Hash           `json:"state_root"`
	TotalSupply uint64         `json:"total_supply"`
	Halted      bool           `json:"halted"`
	MempoolSize int            `json:"mempool_size"`
	Health      NetworkHealth  `json:"health"`
	Summary     NetworkSummary `json:"summary"`
}

// ReviewAssignment pairs a reviewer with the validator it must rate.
type ReviewAssignment struct {
	Reviewer Address `json:"reviewer"`
	Reviewee Address `json:"reviewee"`
}
