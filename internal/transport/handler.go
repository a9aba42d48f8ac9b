package transport

import (
	"context"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

// GossipHandler implements GossipServer on top of a Gossiper. Intake is
// rate limited so a chatty peer cannot starve the slot loop.
type GossipHandler struct {
	node    Gossiper
	limiter ratelimit.Limiter
	logger  *zap.Logger
}

// NewGossipHandler returns a handler admitting at most rps requests per
// second. rps <= 0 disables the limit.
func NewGossipHandler(node Gossiper, rps int, logger *zap.Logger) *GossipHandler {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &GossipHandler{node: node, limiter: limiter, logger: logger.Named("gossip")}
}

// SubmitBlock hands a relayed block to the node.
func (h *GossipHandler) SubmitBlock(ctx context.Context, in *SubmitBlockRequest) (*SubmitResponse, error) {
	h.limiter.Take()
	err := h.node.OnBlockReceived(ctx, &in.Block)
	if err != nil {
		h.logger.Debug("block refused", zap.Uint64("index", in.Block.Index), zap.Error(err))
	}
	return response(err)
}

// SubmitTransaction hands a relayed transaction to the node.
func (h *GossipHandler) SubmitTransaction(ctx context.Context, in *SubmitTransactionRequest) (*SubmitResponse, error) {
	h.limiter.Take()
	err := h.node.OnTransactionReceived(ctx, in.Transaction)
	if err != nil {
		h.logger.Debug("transaction refused", zap.Stringer("tx", in.Transaction.Hash), zap.Error(err))
	}
	return response(err)
}

// response reports recoverable refusals in the body and everything else
// as a gRPC status.
func response(err error) (*SubmitResponse, error) {
	if err == nil {
		return &SubmitResponse{Accepted: true}, nil
	}
	switch class := model.ClassOf(err); class {
	case model.ClassRejection, model.ClassBatchFailure, model.ClassConsensusViolation:
		return &SubmitResponse{Class: class.String(), Reason: err.Error()}, nil
	case model.ClassIntegrityFatal:
		return nil, status.Error(codes.Unavailable, err.Error())
	default:
		return nil, status.Error(codes.Internal, err.Error())
	}
}
