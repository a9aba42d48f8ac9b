package node

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/internal/repository/clickhouse"
	"github.com/goodnatureofminers/pocschain/pkg/batcher"
)

const backfillPage = 500

// BlockExporter ships confirmed blocks to the explorer database in batches.
type BlockExporter struct {
	repo    Repository
	batcher *batcher.Batcher[model.Block]
	logger  *zap.Logger
}

// NewBlockExporter returns an exporter. Start must be called before Export.
func NewBlockExporter(repo Repository, cfg batcher.Config, logger *zap.Logger) *BlockExporter {
	logger = logger.Named("export")
	e := &BlockExporter{repo: repo, logger: logger}
	e.batcher = batcher.New(cfg, e.flush, logger)
	return e
}

func (e *BlockExporter) Start(ctx context.Context) {
	e.batcher.Start(ctx)
}

// Stop flushes queued blocks and ends the exporter.
func (e *BlockExporter) Stop() {
	e.batcher.Stop()
}

// Export queues b for the next batch.
func (e *BlockExporter) Export(ctx context.Context, b model.Block) error {
	return e.batcher.Add(ctx, b)
}

// Backfill queues every block of source above the highest exported index.
// It returns the number of blocks queued.
func (e *BlockExporter) Backfill(ctx context.Context, source BlockSource) (int, error) {
	last, ok, err := e.repo.MaxBlockIndex(ctx)
	if err != nil {
		return 0, fmt.Errorf("backfill: %w", err)
	}
	from := uint64(0)
	if ok {
		from = last + 1
	}
	queued := 0
	for {
		page := source.Blocks(from, backfillPage)
		if len(page) == 0 {
			break
		}
		for _, b := range page {
			if err := e.Export(ctx, b); err != nil {
				return queued, fmt.Errorf("backfill block %d: %w", b.Index, err)
			}
			queued++
		}
		from = page[len(page)-1].Index + 1
	}
	if queued > 0 {
		e.logger.Info("backfill queued", zap.Uint64("from", from-uint64(queued)), zap.Int("blocks", queued))
	}
	return queued, nil
}

// flush writes blocks before their transactions so a reader never sees a
// transaction whose block is missing.
func (e *BlockExporter) flush(ctx context.Context, blocks []model.Block) error {
	if err := e.repo.InsertBlocks(ctx, blocks); err != nil {
		return err
	}
	var txs []clickhouse.Transaction
	for _, b := range blocks {
		txs = append(txs, clickhouse.TransactionsOf(b)...)
	}
	if len(txs) == 0 {
		return nil
	}
	return e.repo.InsertTransactions(ctx, txs)
}
