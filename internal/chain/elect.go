package chain

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/pocschain/internal/clock"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// Elect returns the producer elected for a block with the given timestamp on
// top of the current tip.
func (c *Chain) Elect(timestamp int64) (model.Address, error) {
	producer, _, err := c.electAt(c.Tip(), timestamp)
	return producer, err
}

// electAt draws the producer of the slot containing timestamp. Every empty
// slot since tip is one attempt, and each attempt has its own seed, so an
// absent producer is replaced in the next slot.
func (c *Chain) electAt(tip model.Block, timestamp int64) (model.Address, uint64, error) {
	attempt, err := c.attemptOf(tip, timestamp)
	if err != nil {
		return model.Address{}, 0, err
	}
	producer, err := c.elector.Select(model.SlotSeed(tip.Hash, attempt), c.registry.Eligible(), c.registry.Health())
	if err != nil {
		return model.Address{}, 0, err
	}
	return producer, attempt, nil
}

// attemptOf counts the empty slots between tip and the slot of timestamp.
func (c *Chain) attemptOf(tip model.Block, timestamp int64) (uint64, error) {
	tipSlot := clock.SlotOf(time.UnixMilli(tip.Timestamp), c.params.BlockTime)
	slot := clock.SlotOf(time.UnixMilli(timestamp), c.params.BlockTime)
	if slot <= tipSlot {
		return 0, fmt.Errorf("timestamp %d in slot %d, tip slot %d: %w", timestamp, slot, tipSlot, model.ErrStaleTimestamp)
	}
	return slot - tipSlot - 1, nil
}

// missedDuties returns the producers elected for the empty slots before a
// block at the given attempt. Slots before the first block are not duties.
func (c *Chain) missedDuties(tip model.Block, attempt uint64) []model.Address {
	if tip.Index == 0 || attempt == 0 {
		return nil
	}
	eligible, health := c.registry.Eligible(), c.registry.Health()
	n := min(attempt, c.params.MaxMissedDuties)
	missed := make([]model.Address, 0, n)
	for a := range n {
		producer, err := c.elector.Select(model.SlotSeed(tip.Hash, a), eligible, health)
		if err != nil {
			break
		}
		missed = append(missed, producer)
	}
	return missed
}
