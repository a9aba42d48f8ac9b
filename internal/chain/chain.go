// Package chain assembles, validates and appends blocks. It owns the block
// list and is the only caller that commits batches into the ledger.
package chain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/crypto"
	"github.com/goodnatureofminers/pocschain/internal/ledger"
	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/internal/txvalidation"
)

// Params are the consensus constants the chain enforces.
type Params struct {
	MaxTransactions  int
	BlockReward      uint64
	SignatureWorkers int
	// BlockTime is the slot length. A block's slot follows from its
	// timestamp and selects the election seed.
	BlockTime time.Duration
	// MaxMissedDuties bounds the empty slots charged as downtime when a
	// block lands after them.
	MaxMissedDuties uint64
}

// DefaultParams returns the stock consensus constants.
func DefaultParams() Params {
	return Params{
		MaxTransactions:  100,
		BlockReward:      100,
		SignatureWorkers: 4,
		BlockTime:        5 * time.Second,
		MaxMissedDuties:  8,
	}
}

// Chain is the append-only block list plus the committed ledger.
type Chain struct {
	// mu serializes writers. Appends for the same slot race on it and the
	// loser sees ErrIndexOccupied.
	mu sync.Mutex

	viewMu sync.RWMutex
	blocks []model.Block

	halted  atomic.Bool
	haltErr atomic.Pointer[error]

	params    Params
	ledger    *ledger.Ledger
	registry  Registry
	elector   Elector
	validator *txvalidation.Validator
	verifier  crypto.Verifier
	store     Store
	metrics   Metrics
	logger    *zap.Logger
}

// New wires a chain. store may be nil for an in-memory chain. Call Open
// before use.
func New(
	params Params,
	led *ledger.Ledger,
	registry Registry,
	elector Elector,
	validator *txvalidation.Validator,
	verifier crypto.Verifier,
	store Store,
	metrics Metrics,
	logger *zap.Logger,
) (*Chain, error) {
	if led == nil || registry == nil || elector == nil || validator == nil || verifier == nil {
		return nil, errors.New("chain: ledger, registry, elector, validator and verifier are required")
	}
	if params.MaxTransactions <= 0 {
		return nil, fmt.Errorf("chain: max transactions %d must be positive", params.MaxTransactions)
	}
	if params.SignatureWorkers <= 0 {
		params.SignatureWorkers = 1
	}
	if params.BlockTime <= 0 {
		params.BlockTime = DefaultParams().BlockTime
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{
		params:    params,
		ledger:    led,
		registry:  registry,
		elector:   elector,
		validator: validator,
		verifier:  verifier,
		store:     store,
		metrics:   metrics,
		logger:    logger.Named("chain"),
	}, nil
}

// Ledger returns the committed ledger.
func (c *Chain) Ledger() *ledger.Ledger {
	return c.ledger
}

// Params returns the consensus constants.
func (c *Chain) Params() Params {
	return c.params
}

// Tip returns the last appended block.
func (c *Chain) Tip() model.Block {
	c.viewMu.RLock()
	defer c.viewMu.RUnlock()
	if len(c.blocks) == 0 {
		return model.Block{}
	}
	return c.blocks[len(c.blocks)-1]
}

// Height is the index of the tip.
func (c *Chain) Height() uint64 {
	return c.Tip().Index
}

// Len is the number of appended blocks including genesis.
func (c *Chain) Len() int {
	c.viewMu.RLock()
	defer c.viewMu.RUnlock()
	return len(c.blocks)
}

// BlockAt returns the block with the given index.
func (c *Chain) BlockAt(index uint64) (model.Block, bool) {
	c.viewMu.RLock()
	defer c.viewMu.RUnlock()
	if index >= uint64(len(c.blocks)) {
		return model.Block{}, false
	}
	return c.blocks[index], true
}

// Blocks returns up to limit blocks starting at from.
func (c *Chain) Blocks(from uint64, limit int) []model.Block {
	c.viewMu.RLock()
	defer c.viewMu.RUnlock()
	if from >= uint64(len(c.blocks)) {
		return nil
	}
	end := uint64(len(c.blocks))
	if limit > 0 && from+uint64(limit) < end {
		end = from + uint64(limit)
	}
	return append([]model.Block(nil), c.blocks[from:end]...)
}

// Halted reports whether an integrity failure stopped writes, and why.
func (c *Chain) Halted() (bool, error) {
	if !c.halted.Load() {
		return false, nil
	}
	if p := c.haltErr.Load(); p != nil {
		return true, *p
	}
	return true, model.ErrChainHalted
}

func (c *Chain) halt(err error) error {
	fatal := model.Fatal("integrity", err)
	if c.halted.CompareAndSwap(false, true) {
		c.haltErr.Store(&fatal)
		c.metrics.SetHalted()
		c.logger.Error("chain halted, refusing further writes", zap.Error(err))
	}
	return fatal
}

func (c *Chain) push(b model.Block) {
	c.viewMu.Lock()
	c.blocks = append(c.blocks, b)
	c.viewMu.Unlock()
	c.metrics.SetHeight(b.Index)
}

type nopMetrics struct{}

func (nopMetrics) ObserveAppend(error, int, time.Time)         {}
func (nopMetrics) ObserveAssemble(error, int, int, time.Time) {}
func (nopMetrics) SetHeight(uint64)                           {}
func (nopMetrics) SetHalted()                                 {}

// Open reloads the persisted chain, or creates genesis when nothing is
// stored.
func (c *Chain) Open(ctx context.Context, g Genesis) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Len() > 0 {
		return errors.New("chain already open")
	}

	var stored []model.Block
	if c.store != nil {
		var err error
		if stored, err = c.store.Blocks(ctx); err != nil {
			return fmt.Errorf("load blocks: %w", err)
		}
	}

	genesis, err := c.applyGenesis(g)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		if err := c.persist(ctx, &genesis, c.ledger, nil); err != nil {
			return fmt.Errorf("persist genesis: %w", err)
		}
		c.push(genesis)
		c.logger.Info("genesis created", zap.Stringer("hash", genesis.Hash), zap.Stringer("state_root", genesis.StateRoot))
		return nil
	}
	return c.replay(ctx, genesis, stored)
}
