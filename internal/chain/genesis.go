package chain

import (
	"fmt"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

// DefaultGenesisTimestamp is 2024-01-01T00:00:00Z in milliseconds.
const DefaultGenesisTimestamp int64 = 1704067200000

// Allocation funds an account and optionally stakes for it at genesis.
type Allocation struct {
	Address model.Address `json:"address"`
	Balance uint64        `json:"balance"`
	Stake   uint64        `json:"stake"`
}

// Genesis describes block 0.
type Genesis struct {
	Timestamp   int64        `json:"timestamp"`
	Allocations []Allocation `json:"allocations"`
}

// applyGenesis issues the allocations into the committed ledger, registers
// the genesis validators and returns block 0.
func (c *Chain) applyGenesis(g Genesis) (model.Block, error) {
	if g.Timestamp == 0 {
		g.Timestamp = DefaultGenesisTimestamp
	}
	work := c.ledger.Clone()
	for _, a := range g.Allocations {
		if a.Address.IsZero() || a.Address == model.StakeEscrow {
			return model.Block{}, fmt.Errorf("genesis allocation to reserved address %s", a.Address)
		}
		if err := work.Issue(a.Address, a.Balance, model.ZeroHash, 0); err != nil {
			return model.Block{}, fmt.Errorf("genesis balance of %s: %w", a.Address, err)
		}
		if err := work.Issue(model.StakeEscrow, a.Stake, model.ZeroHash, 0); err != nil {
			return model.Block{}, fmt.Errorf("genesis stake of %s: %w", a.Address, err)
		}
	}

	b := model.Block{
		Index:     0,
		Timestamp: g.Timestamp,
		PrevHash:  model.ZeroHash,
		Producer:  model.Mint,
		StateRoot: work.StateRoot(),
	}
	b.Seal()

	c.ledger.CommitFrom(work)
	for _, a := range g.Allocations {
		if a.Stake == 0 {
			continue
		}
		if _, err := c.registry.Stake(a.Address, a.Stake, 0); err != nil {
			return model.Block{}, fmt.Errorf("register genesis validator %s: %w", a.Address, err)
		}
	}
	return b, nil
}
