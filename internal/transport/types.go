package transport

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Gossiper consumes blocks and transactions relayed by peers.
	Gossiper interface {
		OnBlockReceived(ctx context.Context, b *model.Block) error
		OnTransactionReceived(ctx context.Context, tx model.Transaction) error
	}
	// Explorer answers REST queries and accepts client transactions.
	Explorer interface {
		Status() model.NetworkStatus
		Block(index uint64) (model.Block, bool)
		Account(addr model.Address) (model.Account, bool)
		History(addr model.Address, limit int) []model.LedgerEntry
		Validators() []model.ValidatorRecord
		SubmitTransaction(ctx context.Context, tx model.Transaction) error
	}
	// Operator submits registry operations signed by the node's validator
	// key.
	Operator interface {
		ClaimCredits(ctx context.Context, id model.Address, activity string, credits uint64) (model.Transaction, error)
		RedeemCredits(ctx context.Context, id model.Address, credits uint64) (model.Transaction, error)
		RatePeer(ctx context.Context, reviewer, reviewee model.Address, rating uint64) (model.Transaction, error)
		Reviews() []model.ReviewAssignment
	}
	// GossipServer is the server API for the gossip service.
	GossipServer interface {
		SubmitBlock(ctx context.Context, in *SubmitBlockRequest) (*SubmitResponse, error)
		SubmitTransaction(ctx context.Context, in *SubmitTransactionRequest) (*SubmitResponse, error)
	}
	// GossipClient is the client API for the gossip service.
	GossipClient interface {
		SubmitBlock(ctx context.Context, in *SubmitBlockRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
		SubmitTransaction(ctx context.Context, in *SubmitTransactionRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	}
	Metrics interface {
		Observe(method string, err error, started time.Time)
	}
)
