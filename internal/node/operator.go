package node

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pocschain/internal/clock"
	"github.com/goodnatureofminers/pocschain/internal/crypto"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// ClaimCredits submits a CREDIT_CLAIM for an off-chain contribution by this
// node's validator. The registry applies it once a block includes it.
func (n *Node) ClaimCredits(ctx context.Context, id model.Address, activity string, credits uint64) (model.Transaction, error) {
	if err := n.checkSelf(id); err != nil {
		return model.Transaction{}, err
	}
	return n.operation(ctx, model.KindCreditClaim, id, model.CreditClaim{Activity: activity, Credits: credits})
}

// RedeemCredits submits a CREDIT_REDEEM converting credits into bonded stake.
func (n *Node) RedeemCredits(ctx context.Context, id model.Address, credits uint64) (model.Transaction, error) {
	if err := n.checkSelf(id); err != nil {
		return model.Transaction{}, err
	}
	return n.operation(ctx, model.KindCreditRedeem, id, model.CreditRedemption{Credits: credits})
}

// RatePeer submits this node's rating of reviewee.
func (n *Node) RatePeer(ctx context.Context, reviewer, reviewee model.Address, rating uint64) (model.Transaction, error) {
	if err := n.checkSelf(reviewer); err != nil {
		return model.Transaction{}, err
	}
	return n.operation(ctx, model.KindPeerRating, reviewee, model.PeerRating{Rating: rating})
}

// Reviews returns the peer review round seeded by the current tip.
func (n *Node) Reviews() []model.ReviewAssignment {
	return n.Registry.AssignPeerReviews(n.Chain.Tip().Hash)
}

// checkSelf allows operations only for the validator whose key the node
// holds.
func (n *Node) checkSelf(id model.Address) error {
	if n.Signer == nil {
		return model.ErrNoSigner
	}
	if self := n.Signer.Address(); id != self {
		return fmt.Errorf("%s, node signs for %s: %w", id, self, model.ErrNotSelf)
	}
	return nil
}

// operation signs a registry transaction with the node's key at the next
// pending nonce and submits it like a client transaction.
func (n *Node) operation(ctx context.Context, kind model.TxKind, to model.Address, payload any) (model.Transaction, error) {
	data, err := model.EncodePayload(payload)
	if err != nil {
		return model.Transaction{}, err
	}

	n.sendMu.Lock()
	defer n.sendMu.Unlock()
	from := n.Signer.Address()
	acct, _ := n.Ledger.Account(from)
	tx := model.Transaction{
		From:      from,
		To:        to,
		Kind:      kind,
		Payload:   data,
		GasLimit:  1,
		GasPrice:  1,
		Nonce:     n.Pool.PendingNonce(from, acct.Nonce) + 1,
		Timestamp: clock.Millis(n.Clock),
	}
	if err := crypto.SignTransaction(n.Signer, &tx); err != nil {
		return model.Transaction{}, fmt.Errorf("sign %s: %w", kind, err)
	}
	if err := n.SubmitTransaction(ctx, tx); err != nil {
		return model.Transaction{}, err
	}
	n.logger.Info("registry operation submitted",
		zap.Stringer("kind", kind),
		zap.Stringer("to", to),
		zap.Stringer("tx", tx.Hash),
		zap.Uint64("nonce", tx.Nonce))
	return tx, nil
}
