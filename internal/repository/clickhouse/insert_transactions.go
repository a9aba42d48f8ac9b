package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

// Transaction is a confirmed transaction with its place in the chain.
type Transaction struct {
	BlockIndex uint64
	Position   uint32
	model.Transaction
}

// TransactionsOf lists the transactions of b in block order.
func TransactionsOf(b model.Block) []Transaction {
	out := make([]Transaction, len(b.Transactions))
	for i, tx := range b.Transactions {
		out[i] = Transaction{BlockIndex: b.Index, Position: uint32(i), Transaction: tx}
	}
	return out
}

const insertTransactionsQuery = `
INSERT INTO pocs_transactions (
	hash,
	block_index,
	position,
	kind,
	sender,
	recipient,
	amount,
	gas_limit,
	gas_price,
	nonce,
	payload_size,
	timestamp
) VALUES`

// InsertTransactions stores transaction rows.
func (r *Repository) InsertTransactions(ctx context.Context, txs []Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.Hash.String(),
			tx.BlockIndex,
			tx.Position,
			tx.Kind.String(),
			tx.From.String(),
			tx.To.String(),
			tx.Amount,
			tx.GasLimit,
			tx.GasPrice,
			tx.Nonce,
			uint32(len(tx.Payload)),
			time.UnixMilli(tx.Timestamp).UTC(),
		); err != nil {
			return fmt.Errorf("append transaction %s: %w", tx.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
