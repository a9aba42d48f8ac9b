package pocs

import (
	"math/rand/v2"
	"slices"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

// weightScale converts scores into fixed-point integers so every node builds
// an identical table.
const weightScale = 1_000_000_000

// Candidate is one row of the selection table.
type Candidate struct {
	ID     model.Address `json:"id"`
	Weight uint64        `json:"weight"`
}

// Selector draws the block producer for a slot.
type Selector struct {
	scorer *Scorer
}

// NewSelector builds a selector on top of scorer.
func NewSelector(scorer *Scorer) *Selector {
	return &Selector{scorer: scorer}
}

// Table returns the non-zero weights sorted by address.
func (s *Selector) Table(records []model.ValidatorRecord, health model.NetworkHealth) []Candidate {
	out := make([]Candidate, 0, len(records))
	for _, rec := range records {
		w := uint64(float64(s.scorer.Score(rec, health) * weightScale))
		if w == 0 {
			continue
		}
		out = append(out, Candidate{ID: rec.ID, Weight: w})
	}
	slices.SortFunc(out, func(a, b Candidate) int { return a.ID.Compare(b.ID) })
	return out
}

// Select draws a producer with probability proportional to weight from the
// slot seed. Same inputs always give the same producer.
func (s *Selector) Select(seed model.Hash, records []model.ValidatorRecord, health model.NetworkHealth) (model.Address, error) {
	return Draw(seed, s.Table(records, health))
}

// Draw picks from a prepared table.
func Draw(seed model.Hash, table []Candidate) (model.Address, error) {
	var total uint64
	cum := make([]uint64, len(table))
	for i, c := range table {
		total += c.Weight
		cum[i] = total
	}
	if total == 0 {
		return model.Address{}, model.ErrNoEligibleValidator
	}
	rng := rand.New(rand.NewChaCha8([32]byte(seed)))
	r := rng.Uint64N(total)
	i, _ := slices.BinarySearchFunc(cum, r, func(c, target uint64) int {
		if c <= target {
			return -1
		}
		return 1
	})
	return table[i].ID, nil
}
