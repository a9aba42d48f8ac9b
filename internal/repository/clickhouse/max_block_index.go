package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxBlockIndexQuery = `
SELECT max(block_index) AS max_index, count() AS blocks
FROM pocs_blocks`

// MaxBlockIndex returns the highest exported block index. ok is false when
// nothing has been exported yet.
func (r *Repository) MaxBlockIndex(ctx context.Context) (index uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_index", err, start)
	}()

	rows, err := r.conn.Query(ctx, maxBlockIndexQuery)
	if err != nil {
		return 0, false, fmt.Errorf("query max block index: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, false, fmt.Errorf("iterate max block index: %w", err)
		}
		return 0, false, fmt.Errorf("max block index not found")
	}

	var count uint64
	if err = rows.Scan(&index, &count); err != nil {
		return 0, false, fmt.Errorf("scan max block index: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max block index: %w", err)
	}

	return index, count > 0, nil
}
