package chain

import (
	"context"
	"time"

	"github.com/goodnatureofminers/pocschain/internal/mempool"
	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/internal/registry"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Registry is the validator bookkeeping the chain reads for elections and
	// updates from each block.
	Registry interface {
		Eligible() []model.ValidatorRecord
		Health() model.NetworkHealth
		Get(id model.Address) (model.ValidatorRecord, bool)
		StakeOf(id model.Address) uint64
		Snapshot() []model.ValidatorRecord
		Restore(records []model.ValidatorRecord)
		Stake(id model.Address, amount, height uint64) (model.ValidatorRecord, error)
		Unstake(id model.Address, amount uint64) (model.ValidatorRecord, error)
		RecordDuty(id model.Address, height uint64) (model.ValidatorRecord, error)
		RecordMissedDuty(id model.Address, height uint64) (model.ValidatorRecord, error)
		RecordReward(id model.Address, amount uint64) error
		EarnCredits(id model.Address, activity registry.Activity, credits, height uint64) (uint64, error)
		RedeemCredits(id model.Address, credits uint64) (uint64, error)
		RatePeer(reviewer, reviewee model.Address, rating float64, height uint64) (model.ValidatorRecord, error)
		ReportOffence(id model.Address, kind model.OffenceKind, height uint64, reason string) (model.ValidatorRecord, error)
	}
	// Elector draws a producer from a slot seed.
	Elector interface {
		Select(seed model.Hash, records []model.ValidatorRecord, health model.NetworkHealth) (model.Address, error)
	}
	// Store persists appended blocks and the state they touched.
	Store interface {
		Blocks(ctx context.Context) ([]model.Block, error)
		Validators(ctx context.Context) ([]model.ValidatorRecord, error)
		Commit(ctx context.Context, c Commit) error
		// Truncate deletes the stored blocks from index on.
		Truncate(ctx context.Context, from uint64) error
	}
	// TxSource yields assembly candidates and takes back the ones skipped.
	TxSource interface {
		Candidates(limit int) []mempool.Entry
		Defer(hash model.Hash) bool
	}
	Metrics interface {
		ObserveAppend(err error, txs int, started time.Time)
		ObserveAssemble(err error, included, skipped int, started time.Time)
		SetHeight(index uint64)
		SetHalted()
	}
)

// Commit is everything one appended block changed.
type Commit struct {
	Block      model.Block
	Accounts   []model.Account
	Contracts  map[model.Address]map[string][]byte
	Validators []model.ValidatorRecord
}
