package ledger

import (
	"fmt"

	"github.com/goodnatureofminers/pocschain/internal/contract"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// Apply debits the sender, credits the recipient and the producer's fee,
// bumps the sender nonce and, for contract kinds, commits the executor's
// writes. Any failure leaves the ledger exactly as it was.
func (l *Ledger) Apply(tx *model.Transaction, actx ApplyContext) (*model.StateDelta, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := l.st.snapshot()
	delta, err := l.apply(tx, actx)
	if err != nil {
		l.st.restore(snap)
		return nil, err
	}
	delta.Entries = append([]model.LedgerEntry(nil), l.st.entries[snap.entries:]...)
	delta.Accounts = l.st.touchedSince(snap)
	return delta, nil
}

func (l *Ledger) apply(tx *model.Transaction, actx ApplyContext) (*model.StateDelta, error) {
	if !tx.Kind.Valid() {
		return nil, fmt.Errorf("kind %d: %w", tx.Kind, model.ErrMalformedTransaction)
	}
	sender, ok := l.st.accounts[tx.From]
	if !ok {
		return nil, fmt.Errorf("sender %s: %w", tx.From, model.ErrUnknownAccount)
	}
	if tx.Nonce != sender.Nonce+1 {
		return nil, fmt.Errorf("nonce %d, expected %d: %w", tx.Nonce, sender.Nonce+1, model.ErrNonceMismatch)
	}
	total, err := tx.TotalCost()
	if err != nil {
		return nil, fmt.Errorf("cost: %w", model.ErrInsufficientBalance)
	}
	if sender.Balance < total {
		return nil, fmt.Errorf("balance %d, need %d: %w", sender.Balance, total, model.ErrInsufficientBalance)
	}

	gas, _ := tx.GasCost()
	if gas > 0 && actx.Producer.IsZero() {
		return nil, fmt.Errorf("fee without producer: %w", model.ErrMalformedTransaction)
	}
	if err := l.transfer(tx.From, actx.Producer, gas, model.EntryFee, tx.Hash, actx.BlockIndex); err != nil {
		return nil, err
	}
	acct, err := l.st.touch(tx.From, false)
	if err != nil {
		return nil, err
	}
	acct.Nonce++

	delta := &model.StateDelta{TxHash: tx.Hash}
	switch tx.Kind {
	case model.KindTransfer:
		err = l.transfer(tx.From, tx.To, tx.Amount, model.EntryTransfer, tx.Hash, actx.BlockIndex)
	case model.KindStake:
		if tx.To != model.StakeEscrow {
			return nil, fmt.Errorf("stake must target escrow: %w", model.ErrMalformedTransaction)
		}
		err = l.transfer(tx.From, model.StakeEscrow, tx.Amount, model.EntryStake, tx.Hash, actx.BlockIndex)
	case model.KindUnstake:
		if tx.To != model.StakeEscrow {
			return nil, fmt.Errorf("unstake must target escrow: %w", model.ErrMalformedTransaction)
		}
		err = l.transfer(model.StakeEscrow, tx.From, tx.Amount, model.EntryUnstake, tx.Hash, actx.BlockIndex)
	case model.KindContractDeploy:
		delta.Contract, err = l.deploy(tx, actx)
	case model.KindContractCall:
		delta.Contract, err = l.call(tx, tx.To, actx)
	case model.KindCreditClaim, model.KindCreditRedeem, model.KindPeerRating, model.KindEvidence:
		if tx.Amount != 0 {
			err = fmt.Errorf("%s moves no value: %w", tx.Kind, model.ErrMalformedTransaction)
		}
	}
	if err != nil {
		return nil, err
	}
	return delta, nil
}

func (l *Ledger) deploy(tx *model.Transaction, actx ApplyContext) (*model.ContractChange, error) {
	addr := tx.ContractAddress()
	if _, exists := l.st.accounts[addr]; exists {
		return nil, fmt.Errorf("contract %s already exists: %w", addr, model.ErrMalformedTransaction)
	}
	acct, err := l.st.touch(addr, true)
	if err != nil {
		return nil, err
	}
	acct.IsContract = true
	return l.call(tx, addr, actx)
}

func (l *Ledger) call(tx *model.Transaction, addr model.Address, actx ApplyContext) (*model.ContractChange, error) {
	target, ok := l.st.accounts[addr]
	if !ok || !target.IsContract {
		return nil, fmt.Errorf("contract %s: %w", addr, model.ErrUnknownAccount)
	}
	if err := l.transfer(tx.From, addr, tx.Amount, model.EntryContract, tx.Hash, actx.BlockIndex); err != nil {
		return nil, err
	}
	if l.executor == nil {
		return nil, fmt.Errorf("no executor configured: %w", model.ErrContractExecutionFailed)
	}

	res, err := l.executor.Execute(addr, tx.Payload, stateView{st: l.st})
	if err != nil {
		return nil, fmt.Errorf("execute %s: %v: %w", addr, err, model.ErrContractExecutionFailed)
	}
	if !res.Success {
		return nil, fmt.Errorf("execute %s: %s: %w", addr, res.Reason, model.ErrContractExecutionFailed)
	}
	for key, value := range res.Writes {
		l.st.writeStorage(addr, key, value)
	}
	return &model.ContractChange{Address: addr, Writes: res.Writes, Events: res.Events}, nil
}

func (s *state) touchedSince(snap Snapshot) []model.Account {
	seen := make(map[model.Address]struct{})
	var out []model.Account
	for _, c := range s.journal[snap.rev:] {
		if c.isStorage {
			continue
		}
		if _, dup := seen[c.addr]; dup {
			continue
		}
		seen[c.addr] = struct{}{}
		if acct, ok := s.accounts[c.addr]; ok {
			out = append(out, *acct)
		}
	}
	return out
}

// stateView exposes the in-progress state to the executor. The caller
// already holds the ledger lock.
type stateView struct {
	st *state
}

var _ contract.StateView = stateView{}

func (v stateView) ContractValue(addr model.Address, key string) ([]byte, bool) {
	value, ok := v.st.contracts[addr][key]
	return value, ok
}

func (v stateView) Balance(addr model.Address) uint64 {
	if acct, ok := v.st.accounts[addr]; ok {
		return acct.Balance
	}
	return 0
}
