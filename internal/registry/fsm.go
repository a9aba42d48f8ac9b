package registry

import "github.com/goodnatureofminers/pocschain/internal/model"

// event is an input to the penalty state machine.
type event uint8

const (
	// eventPenalty follows an increment of the penalty level.
	eventPenalty event = iota + 1
	// eventDecay follows a decrement of the penalty level.
	eventDecay
	// eventStakeLost follows an unstake below the minimum stake.
	eventStakeLost
)

// input is what the guards see: the level after the event, for penalties
// the size of the increment, and the validator's stake.
type input struct {
	level     uint64
	increment uint64
	stake     uint64
}

type transition struct {
	from  model.ValidatorStatus
	on    event
	to    model.ValidatorStatus
	guard func(Params, input) bool
}

// transitions is evaluated top to bottom; the first match wins. At most one
// edge is taken per event.
var transitions = []transition{
	{
		from: model.StatusActive, on: eventPenalty, to: model.StatusSuspended,
		guard: func(p Params, in input) bool { return in.level >= p.SuspensionThreshold },
	},
	{
		from: model.StatusActive, on: eventPenalty, to: model.StatusProbation,
		guard: func(p Params, in input) bool {
			return in.increment >= p.SingleEventThreshold || in.level >= p.ProbationThreshold
		},
	},
	{
		from: model.StatusProbation, on: eventPenalty, to: model.StatusSuspended,
		guard: func(p Params, in input) bool {
			return in.increment >= p.SingleEventThreshold || in.level >= p.SuspensionThreshold
		},
	},
	{
		from: model.StatusProbation, on: eventDecay, to: model.StatusActive,
		guard: func(p Params, in input) bool { return in.level < p.LowWater && in.stake >= p.MinStake },
	},
	{
		from: model.StatusSuspended, on: eventDecay, to: model.StatusProbation,
		guard: func(p Params, in input) bool { return in.level < p.ProbationThreshold },
	},
	{
		from: model.StatusActive, on: eventStakeLost, to: model.StatusProbation,
		guard: func(Params, input) bool { return true },
	},
}

// step returns the status after ev, or the current status when no edge applies.
func step(p Params, cur model.ValidatorStatus, ev event, in input) model.ValidatorStatus {
	for _, t := range transitions {
		if t.from == cur && t.on == ev && t.guard(p, in) {
			return t.to
		}
	}
	return cur
}
