package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

const insertBlocksQuery = `
INSERT INTO pocs_blocks (
	block_index,
	hash,
	prev_hash,
	producer,
	state_root,
	timestamp,
	nonce,
	tx_count
) VALUES`

// InsertBlocks stores block header rows.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, b := range blocks {
		if err = batch.Append(
			b.Index,
			b.Hash.String(),
			b.PrevHash.String(),
			b.Producer.String(),
			b.StateRoot.String(),
			time.UnixMilli(b.Timestamp).UTC(),
			b.Nonce,
			uint32(len(b.Transactions)),
		); err != nil {
			return fmt.Errorf("append block %d: %w", b.Index, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
