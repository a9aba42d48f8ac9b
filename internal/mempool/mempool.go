// Package mempool holds validated, unconfirmed transactions until a block
// consumes them.
package mempool

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

const (
	DefaultCapacity   = 10_000
	DefaultMaxRetries = 3
)

// Entry is a pooled transaction with its admission metadata.
type Entry struct {
	Tx      model.Transaction
	Arrival time.Time
	Retries int
	seq     uint64
}

type senderNonce struct {
	from  model.Address
	nonce uint64
}

// Pool is safe for concurrent use.
type Pool struct {
	mu         sync.Mutex
	byHash     map[model.Hash]*Entry
	bySender   map[senderNonce]model.Hash
	capacity   int
	maxRetries int
	seq        uint64
	now        func() time.Time
}

// New returns an empty Pool. Non-positive arguments select the defaults.
func New(capacity, maxRetries int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Pool{
		byHash:     make(map[model.Hash]*Entry),
		bySender:   make(map[senderNonce]model.Hash),
		capacity:   capacity,
		maxRetries: maxRetries,
		now:        time.Now,
	}
}

// Add admits an already validated transaction.
func (p *Pool) Add(tx model.Transaction) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.byHash[tx.Hash]; ok {
		return fmt.Errorf("transaction %s: %w", tx.Hash, model.ErrDuplicateTransaction)
	}
	key := senderNonce{from: tx.From, nonce: tx.Nonce}
	if existing, ok := p.bySender[key]; ok {
		return fmt.Errorf("nonce %d from %s already pending as %s: %w", tx.Nonce, tx.From, existing, model.ErrDuplicateTransaction)
	}
	if len(p.byHash) >= p.capacity {
		return fmt.Errorf("capacity %d: %w", p.capacity, model.ErrMempoolFull)
	}

	p.seq++
	p.byHash[tx.Hash] = &Entry{Tx: tx, Arrival: p.now(), seq: p.seq}
	p.bySender[key] = tx.Hash
	return nil
}

// PendingNonce returns the highest nonce of the unbroken run of pooled
// transactions from sender that follows confirmed. It is confirmed when
// nothing from sender is pooled.
func (p *Pool) PendingNonce(sender model.Address, confirmed uint64) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := confirmed
	for {
		if _, ok := p.bySender[senderNonce{from: sender, nonce: n + 1}]; !ok {
			return n
		}
		n++
	}
}

// Has reports whether hash is pooled.
func (p *Pool) Has(hash model.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.byHash[hash]
	return ok
}

// Len is the number of pooled transactions.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.byHash)
}

// Candidates returns up to limit entries by gas price descending, then
// arrival ascending. Admission order and hash break remaining ties.
func (p *Pool) Candidates(limit int) []Entry {
	p.mu.Lock()
	out := make([]Entry, 0, len(p.byHash))
	for _, e := range p.byHash {
		out = append(out, *e)
	}
	p.mu.Unlock()

	slices.SortFunc(out, compareEntries)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func compareEntries(a, b Entry) int {
	switch {
	case a.Tx.GasPrice != b.Tx.GasPrice:
		if a.Tx.GasPrice > b.Tx.GasPrice {
			return -1
		}
		return 1
	case !a.Arrival.Equal(b.Arrival):
		return a.Arrival.Compare(b.Arrival)
	case a.seq != b.seq:
		if a.seq < b.seq {
			return -1
		}
		return 1
	default:
		return slices.Compare(a.Tx.Hash[:], b.Tx.Hash[:])
	}
}

// Remove drops confirmed transactions.
func (p *Pool) Remove(hashes ...model.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, h := range hashes {
		p.removeLocked(h)
	}
}

func (p *Pool) removeLocked(h model.Hash) {
	e, ok := p.byHash[h]
	if !ok {
		return
	}
	delete(p.byHash, h)
	delete(p.bySender, senderNonce{from: e.Tx.From, nonce: e.Tx.Nonce})
}

// Defer records that hash failed re-validation during assembly. It returns
// true when the transaction exceeded the retry budget and was expired.
func (p *Pool) Defer(hash model.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.byHash[hash]
	if !ok {
		return false
	}
	e.Retries++
	if e.Retries > p.maxRetries {
		p.removeLocked(hash)
		return true
	}
	return false
}

// PruneStale drops transactions whose nonce is at or below the sender's
// confirmed nonce. They can never be applied.
func (p *Pool) PruneStale(nonceOf func(model.Address) uint64) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	var dropped int
	for h, e := range p.byHash {
		if e.Tx.Nonce <= nonceOf(e.Tx.From) {
			p.removeLocked(h)
			dropped++
		}
	}
	return dropped
}
