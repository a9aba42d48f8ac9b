package ledger

import (
	"fmt"

	"github.com/goodnatureofminers/pocschain/internal/model"
	"github.com/goodnatureofminers/pocschain/pkg/safe"
)

// change is one undo record. Exactly one of account or storage is meaningful.
type change struct {
	addr model.Address

	isStorage bool
	account   *model.Account // previous value, nil when the account did not exist

	key     string
	prev    []byte
	existed bool
}

// Snapshot marks a point the ledger can be restored to.
type Snapshot struct {
	rev     int
	entries int
	supply  uint64
}

// Snapshot records the current position of the journal.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.st.snapshot()
}

// Restore undoes every change made after s was taken.
func (l *Ledger) Restore(s Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.st.restore(s)
}

func (s *state) snapshot() Snapshot {
	return Snapshot{rev: len(s.journal), entries: len(s.entries), supply: s.supply}
}

func (s *state) restore(snap Snapshot) {
	for i := len(s.journal) - 1; i >= snap.rev; i-- {
		c := s.journal[i]
		if c.isStorage {
			storage := s.contracts[c.addr]
			if c.existed {
				if storage == nil {
					storage = make(map[string][]byte)
					s.contracts[c.addr] = storage
				}
				storage[c.key] = c.prev
			} else if storage != nil {
				delete(storage, c.key)
				if len(storage) == 0 {
					delete(s.contracts, c.addr)
				}
			}
			continue
		}
		if c.account == nil {
			delete(s.accounts, c.addr)
		} else {
			s.accounts[c.addr] = c.account
		}
	}
	s.journal = s.journal[:snap.rev]
	// Cap the slice so later appends cannot overwrite entries a clone still shares.
	s.entries = s.entries[:snap.entries:snap.entries]
	s.supply = snap.supply
}

// touch returns the mutable account at addr, journaling its prior value.
// Missing accounts are created when create is set.
func (s *state) touch(addr model.Address, create bool) (*model.Account, error) {
	acct, ok := s.accounts[addr]
	if !ok {
		if !create {
			return nil, fmt.Errorf("account %s: %w", addr, model.ErrUnknownAccount)
		}
		s.journal = append(s.journal, change{addr: addr})
		acct = &model.Account{Address: addr}
		s.accounts[addr] = acct
		return acct, nil
	}
	prev := *acct
	s.journal = append(s.journal, change{addr: addr, account: &prev})
	return acct, nil
}

func (s *state) writeStorage(addr model.Address, key string, value []byte) {
	storage := s.contracts[addr]
	prev, existed := storage[key]
	s.journal = append(s.journal, change{addr: addr, isStorage: true, key: key, prev: prev, existed: existed})
	if value == nil {
		if storage != nil {
			delete(storage, key)
			if len(storage) == 0 {
				delete(s.contracts, addr)
			}
		}
		return
	}
	if storage == nil {
		storage = make(map[string][]byte)
		s.contracts[addr] = storage
	}
	storage[key] = value
}

func (l *Ledger) credit(addr model.Address, amount uint64) error {
	acct, err := l.st.touch(addr, true)
	if err != nil {
		return err
	}
	balance, err := safe.Add(acct.Balance, amount)
	if err != nil {
		return fmt.Errorf("credit %s: %w", addr, err)
	}
	acct.Balance = balance
	return nil
}

// transfer moves amount between two accounts and records the entry.
// Debits require an existing account; credits create one.
func (l *Ledger) transfer(from, to model.Address, amount uint64, kind model.EntryKind, ref model.Hash, blockIndex uint64) error {
	if amount == 0 {
		return nil
	}
	src, err := l.st.touch(from, false)
	if err != nil {
		return err
	}
	if src.Balance < amount {
		return fmt.Errorf("debit %d from %s holding %d: %w", amount, from, src.Balance, model.ErrInsufficientBalance)
	}
	src.Balance -= amount
	if err := l.credit(to, amount); err != nil {
		return err
	}
	l.st.entries = append(l.st.entries, model.LedgerEntry{
		Debit:      from,
		Credit:     to,
		Amount:     amount,
		TxHash:     ref,
		Kind:       kind,
		BlockIndex: blockIndex,
	})
	return nil
}
