package chain

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/crypto"
	"github.com/goodnatureofminers/pocschain/internal/ledger"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// Skipped is a candidate left out of an assembled block.
type Skipped struct {
	Hash    model.Hash
	Err     error
	Expired bool
}

// Assembly reports what Assemble did with the candidates.
type Assembly struct {
	Block   *model.Block
	Skipped []Skipped
}

// Assemble builds and signs the next block from source's candidates on a
// clone of the committed ledger. A failing transaction is skipped as a batch
// failure and handed back to source; the batch continues.
func (c *Chain) Assemble(ctx context.Context, signer crypto.Signer, source TxSource, timestamp int64) (out Assembly, err error) {
	started := time.Now()
	defer func() {
		included := 0
		if out.Block != nil {
			included = len(out.Block.Transactions)
		}
		c.metrics.ObserveAssemble(err, included, len(out.Skipped), started)
	}()

	if halted, _ := c.Halted(); halted {
		return Assembly{}, model.Fatal("assemble", model.ErrChainHalted)
	}
	tip := c.Tip()
	producer := signer.Address()
	actx := ledger.ApplyContext{Producer: producer, BlockIndex: tip.Index + 1}

	base := c.ledger.Clone()
	work := base.Clone()
	txs := make([]model.Transaction, 0, c.params.MaxTransactions)
	for _, entry := range source.Candidates(0) {
		if len(txs) == c.params.MaxTransactions {
			break
		}
		if err := ctx.Err(); err != nil {
			return Assembly{}, err
		}
		tx := entry.Tx
		applyErr := c.validator.Validate(&tx, work).Reason
		if applyErr == nil && tx.Kind == model.KindEvidence {
			applyErr = c.checkEvidence(ctx, tip, base, actx.BlockIndex, &tx)
		}
		if applyErr == nil {
			_, applyErr = work.Apply(&tx, actx)
		}
		if applyErr != nil {
			failure := model.BatchFail("assemble", applyErr)
			expired := source.Defer(tx.Hash)
			out.Skipped = append(out.Skipped, Skipped{Hash: tx.Hash, Err: failure, Expired: expired})
			c.logger.Warn("transaction skipped",
				zap.Stringer("tx", tx.Hash),
				zap.Bool("expired", expired),
				zap.Error(failure))
			continue
		}
		txs = append(txs, tx)
	}
	if err := c.reward(work, producer, actx.BlockIndex); err != nil {
		return out, err
	}

	b := &model.Block{
		Index:        actx.BlockIndex,
		Timestamp:    timestamp,
		Transactions: txs,
		PrevHash:     tip.Hash,
		Producer:     producer,
		StateRoot:    work.StateRoot(),
		Nonce:        rand.Uint64(),
	}
	if err := crypto.SignBlock(signer, b); err != nil {
		return out, fmt.Errorf("sign block %d: %w", b.Index, err)
	}
	out.Block = b
	return out, nil
}
