// Package txvalidation decides whether a transaction may enter the mempool
// or a block.
package txvalidation

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/pocschain/internal/crypto"
	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/pkg/workerpool"
)

type (
	// LedgerView is the account lookup the validator needs.
	LedgerView interface {
		Account(addr model.Address) (model.Account, bool)
	}
	// RegistryView reports validator records and their withdrawable stake.
	RegistryView interface {
		StakeOf(addr model.Address) uint64
		Get(id model.Address) (model.ValidatorRecord, bool)
	}
)

// Verdict is the result of Validate. Reason is nil when Accepted.
type Verdict struct {
	Accepted bool
	Reason   error
}

// Err returns the rejection as a classified error, or nil.
func (v Verdict) Err() error {
	if v.Accepted {
		return nil
	}
	return model.Reject("validate transaction", v.Reason)
}

func accept() Verdict { return Verdict{Accepted: true} }

func reject(format string, args ...any) Verdict {
	return Verdict{Reason: fmt.Errorf(format, args...)}
}

// Validator runs the ordered transaction checks.
type Validator struct {
	verifier crypto.Verifier
	registry RegistryView
	minStake uint64
}

// New returns a Validator. registry may be nil, in which case UNSTAKE is
// bounded only by the escrow balance at apply time and registry operations
// are refused.
func New(verifier crypto.Verifier, registry RegistryView, minStake uint64) *Validator {
	return &Validator{verifier: verifier, registry: registry, minStake: minStake}
}

// Validate checks signature, nonce, balance and kind rules in that order,
// stopping at the first failure.
func (v *Validator) Validate(tx *model.Transaction, view LedgerView) Verdict {
	if verdict := v.checkSignature(tx); !verdict.Accepted {
		return verdict
	}
	return v.CheckState(tx, view)
}

// CheckState runs the checks that depend on ledger state. Callers must have
// verified the signature already, e.g. through VerifySignatures.
func (v *Validator) CheckState(tx *model.Transaction, view LedgerView) Verdict {
	acct, ok := view.Account(tx.From)
	if !ok {
		return reject("sender %s: %w", tx.From, model.ErrUnknownAccount)
	}
	if tx.Nonce != acct.Nonce+1 {
		return reject("nonce %d, expected %d: %w", tx.Nonce, acct.Nonce+1, model.ErrNonceMismatch)
	}

	if tx.GasLimit == 0 || tx.GasPrice == 0 {
		return reject("gas limit %d, price %d: %w", tx.GasLimit, tx.GasPrice, model.ErrInvalidGas)
	}
	total, err := tx.TotalCost()
	if err != nil {
		return reject("cost overflows: %w", model.ErrInvalidGas)
	}
	if acct.Balance < total {
		return reject("balance %d, need %d: %w", acct.Balance, total, model.ErrInsufficientBalance)
	}

	return v.checkKind(tx, view)
}

func (v *Validator) checkSignature(tx *model.Transaction) Verdict {
	computed := tx.ComputeHash()
	if computed != tx.Hash {
		return reject("declared %s, computed %s: %w", tx.Hash, computed, model.ErrHashMismatch)
	}
	if !v.verifier.Verify(tx.From, computed, tx.Signature) {
		return reject("sender %s: %w", tx.From, model.ErrInvalidSignature)
	}
	return accept()
}

func (v *Validator) checkKind(tx *model.Transaction, view LedgerView) Verdict {
	switch tx.Kind {
	case model.KindTransfer:
		if tx.Amount == 0 {
			return reject("zero transfer: %w", model.ErrMalformedTransaction)
		}
		if tx.To == tx.From || tx.To.IsZero() || tx.To == model.StakeEscrow {
			return reject("recipient %s: %w", tx.To, model.ErrMalformedTransaction)
		}
	case model.KindStake:
		if tx.To != model.StakeEscrow {
			return reject("stake must target escrow: %w", model.ErrMalformedTransaction)
		}
		if tx.Amount < v.minStake {
			return reject("stake %d, minimum %d: %w", tx.Amount, v.minStake, model.ErrBelowMinimumStake)
		}
	case model.KindUnstake:
		if tx.To != model.StakeEscrow || tx.Amount == 0 {
			return reject("unstake must move a positive amount from escrow: %w", model.ErrMalformedTransaction)
		}
		if v.registry != nil {
			if staked := v.registry.StakeOf(tx.From); staked < tx.Amount {
				return reject("unstake %d, staked %d: %w", tx.Amount, staked, model.ErrInsufficientStake)
			}
		}
	case model.KindContractDeploy:
		if len(tx.Payload) == 0 {
			return reject("deploy without code: %w", model.ErrMalformedTransaction)
		}
	case model.KindContractCall:
		target, ok := view.Account(tx.To)
		if !ok || !target.IsContract {
			return reject("call target %s: %w", tx.To, model.ErrUnknownAccount)
		}
	case model.KindCreditClaim, model.KindCreditRedeem, model.KindPeerRating, model.KindEvidence:
		return v.checkOperation(tx)
	default:
		return reject("kind %s: %w", tx.Kind, model.ErrMalformedTransaction)
	}
	return accept()
}

// VerifySignatures checks hashes and signatures of txs on workers goroutines.
// It is the stateless part of Validate and is used for whole blocks.
func (v *Validator) VerifySignatures(ctx context.Context, txs []model.Transaction, workers int) error {
	return workerpool.Each(ctx, workers, len(txs), func(_ context.Context, i int) error {
		if verdict := v.checkSignature(&txs[i]); !verdict.Accepted {
			return fmt.Errorf("transaction %d: %w", i, verdict.Reason)
		}
		return nil
	})
}
