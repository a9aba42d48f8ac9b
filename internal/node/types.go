package node

import (
	"context"

	"github.com/goodnatureofminers/pocschain/internal/chain"
	"github.com/goodnatureofminers/pocschain/internal/crypto"
	"github.com/goodnatureofminers/pocschain/internal/mempool"
	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/internal/repository/clickhouse"
	"github.com/goodnatureofminers/pocschain/internal/txvalidation"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Chain is the block list the node produces onto and appends to.
	Chain interface {
		Tip() model.Block
		BlockAt(index uint64) (model.Block, bool)
		Elect(timestamp int64) (model.Address, error)
		Assemble(ctx context.Context, signer crypto.Signer, source chain.TxSource, timestamp int64) (chain.Assembly, error)
		Append(ctx context.Context, b *model.Block) error
		Halted() (bool, error)
	}
	// Ledger is the committed state the node reads.
	Ledger interface {
		Account(addr model.Address) (model.Account, bool)
		History(addr model.Address, limit int) []model.LedgerEntry
		StateRoot() model.Hash
		TotalSupply() uint64
	}
	// Registry is the validator bookkeeping the node reports. It changes
	// only through appended blocks.
	Registry interface {
		Get(id model.Address) (model.ValidatorRecord, bool)
		Snapshot() []model.ValidatorRecord
		Summary() model.NetworkSummary
		Health() model.NetworkHealth
		AssignPeerReviews(seed model.Hash) []model.ReviewAssignment
	}
	// Pool holds admitted transactions until a block confirms them.
	Pool interface {
		Add(tx model.Transaction) error
		Has(hash model.Hash) bool
		Len() int
		Remove(hashes ...model.Hash)
		PendingNonce(sender model.Address, confirmed uint64) uint64
		PruneStale(nonceOf func(model.Address) uint64) int
		Candidates(limit int) []mempool.Entry
		Defer(hash model.Hash) bool
	}
	TxValidator interface {
		Validate(tx *model.Transaction, view txvalidation.LedgerView) txvalidation.Verdict
	}
	// Broadcaster relays to peers and returns how many accepted.
	Broadcaster interface {
		BroadcastBlock(ctx context.Context, b model.Block) int
		BroadcastTransaction(ctx context.Context, tx model.Transaction) int
	}
	// Exporter ships confirmed blocks to the explorer database.
	Exporter interface {
		Export(ctx context.Context, b model.Block) error
	}
	// Repository is the explorer database the exporter writes to.
	Repository interface {
		InsertBlocks(ctx context.Context, blocks []model.Block) error
		InsertTransactions(ctx context.Context, txs []clickhouse.Transaction) error
		MaxBlockIndex(ctx context.Context) (uint64, bool, error)
	}
	// BlockSource pages through the appended chain.
	BlockSource interface {
		Blocks(from uint64, limit int) []model.Block
	}
	Metrics interface {
		ObserveSlot(outcome string)
		ObserveTransaction(source string, err error)
		ObserveBlockReceived(err error)
		SetMempoolSize(n int)
	}
)
