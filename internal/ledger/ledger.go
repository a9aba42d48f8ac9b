// Package ledger is the double-entry account store. It is the single owner
// of account and contract state; every mutation goes through Apply or Issue.
package ledger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goodnatureofminers/pocschain/internal/contract"
	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/pkg/safe"
)

// ApplyContext carries block-level facts needed to apply a transaction.
type ApplyContext struct {
	Producer   model.Address
	BlockIndex uint64
}

// Ledger holds accounts, contract storage and the entry journal.
// Readers may run concurrently; writers serialize on mu.
type Ledger struct {
	mu       sync.RWMutex
	st       *state
	executor contract.Executor
}

type state struct {
	accounts  map[model.Address]*model.Account
	contracts map[model.Address]map[string][]byte
	supply    uint64
	entries   []model.LedgerEntry
	journal   []change
}

// New returns an empty Ledger that runs contracts through executor.
func New(executor contract.Executor) *Ledger {
	return &Ledger{
		st: &state{
			accounts:  make(map[model.Address]*model.Account),
			contracts: make(map[model.Address]map[string][]byte),
		},
		executor: executor,
	}
}

// Clone returns an independent copy sharing the executor. Block assembly and
// validation run against clones so readers of l never see a partial batch.
func (l *Ledger) Clone() *Ledger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &Ledger{st: l.st.clone(), executor: l.executor}
}

// CommitFrom atomically replaces l's state with other's. other must not be
// used afterwards.
func (l *Ledger) CommitFrom(other *Ledger) {
	other.mu.Lock()
	st := other.st
	other.st = nil
	other.mu.Unlock()

	st.journal = nil
	l.mu.Lock()
	l.st = st
	l.mu.Unlock()
}

func (s *state) clone() *state {
	c := &state{
		accounts:  make(map[model.Address]*model.Account, len(s.accounts)),
		contracts: make(map[model.Address]map[string][]byte, len(s.contracts)),
		supply:    s.supply,
		entries:   s.entries[:len(s.entries):len(s.entries)],
	}
	for addr, acct := range s.accounts {
		cp := *acct
		c.accounts[addr] = &cp
	}
	for addr, storage := range s.contracts {
		m := make(map[string][]byte, len(storage))
		for k, v := range storage {
			m[k] = v
		}
		c.contracts[addr] = m
	}
	return c
}

// Account returns a copy of the account at addr.
func (l *Ledger) Account(addr model.Address) (model.Account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acct, ok := l.st.accounts[addr]
	if !ok {
		return model.Account{}, false
	}
	return *acct, true
}

// Balance returns the balance at addr, zero for unknown accounts.
func (l *Ledger) Balance(addr model.Address) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if acct, ok := l.st.accounts[addr]; ok {
		return acct.Balance
	}
	return 0
}

// ContractValue reads one key of a contract's storage.
func (l *Ledger) ContractValue(addr model.Address, key string) ([]byte, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.st.contracts[addr][key]
	return v, ok
}

// ContractStorage returns a copy of a contract's storage.
func (l *Ledger) ContractStorage(addr model.Address) map[string][]byte {
	l.mu.RLock()
	defer l.mu.RUnlock()
	storage := l.st.contracts[addr]
	if storage == nil {
		return nil
	}
	out := make(map[string][]byte, len(storage))
	for k, v := range storage {
		out[k] = v
	}
	return out
}

// Accounts lists every account ordered by address.
func (l *Ledger) Accounts() []model.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.st.sortedAccounts()
}

func (s *state) sortedAccounts() []model.Account {
	out := make([]model.Account, 0, len(s.accounts))
	for _, acct := range s.accounts {
		out = append(out, *acct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address.Less(out[j].Address) })
	return out
}

// TotalSupply is the amount issued so far.
func (l *Ledger) TotalSupply() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.st.supply
}

// VerifySupply checks that balances add up to the issued supply.
func (l *Ledger) VerifySupply() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var sum uint64
	for _, acct := range l.st.accounts {
		var err error
		if sum, err = safe.Add(sum, acct.Balance); err != nil {
			return fmt.Errorf("balances overflow: %w", err)
		}
	}
	if sum != l.st.supply {
		return fmt.Errorf("balances sum to %d, supply is %d", sum, l.st.supply)
	}
	return nil
}

// History returns up to limit most recent entries touching addr, newest first.
func (l *Ledger) History(addr model.Address, limit int) []model.LedgerEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []model.LedgerEntry
	for i := len(l.st.entries) - 1; i >= 0; i-- {
		e := l.st.entries[i]
		if e.Debit != addr && e.Credit != addr {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Issue credits newly created value to addr. It is reserved for block
// rewards and authorized contribution-credit conversions.
func (l *Ledger) Issue(to model.Address, amount uint64, ref model.Hash, blockIndex uint64) error {
	if to.IsZero() {
		return fmt.Errorf("issue to mint address: %w", model.ErrMalformedTransaction)
	}
	if amount == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	supply := l.st.supply + amount
	if supply < l.st.supply {
		return fmt.Errorf("issue %d: supply overflow", amount)
	}
	snap := l.st.snapshot()
	if err := l.credit(to, amount); err != nil {
		l.st.restore(snap)
		return err
	}
	l.st.supply = supply
	l.st.entries = append(l.st.entries, model.LedgerEntry{
		Debit:      model.Mint,
		Credit:     to,
		Amount:     amount,
		TxHash:     ref,
		Kind:       model.EntryIssue,
		BlockIndex: blockIndex,
	})
	return nil
}
