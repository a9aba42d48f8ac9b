// Package leveldb persists blocks and the state they touched in a local
// LevelDB database.
package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/goodnatureofminers/pocschain/internal/chain"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// Key namespaces.
const (
	prefixBlock     = "block:"
	prefixAccount   = "account:"
	prefixValidator = "validator:"
	prefixContract  = "contract:"
)

// Metrics observes store operations.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Store implements chain.Store on LevelDB.
type Store struct {
	db      *leveldb.DB
	metrics Metrics
}

// Open opens or creates the database under path.
func Open(path string, metrics Metrics) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &Store{db: db, metrics: metrics}, nil
}

// OpenMemory opens a database that lives only in memory.
func OpenMemory(metrics Metrics) (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open memory leveldb: %w", err)
	}
	return &Store{db: db, metrics: metrics}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) observe(operation string, err error, started time.Time) {
	if s.metrics != nil {
		s.metrics.Observe(operation, err, started)
	}
}

func blockKey(index uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefixBlock, index))
}

func accountKey(addr model.Address) []byte {
	return []byte(prefixAccount + addr.String())
}

func validatorKey(addr model.Address) []byte {
	return []byte(prefixValidator + addr.String())
}

func contractKey(addr model.Address) []byte {
	return []byte(prefixContract + addr.String())
}

// Commit writes a block and everything it touched in one atomic batch.
func (s *Store) Commit(_ context.Context, c chain.Commit) (err error) {
	defer func(started time.Time) {
		s.observe("commit", err, started)
	}(time.Now())

	batch := new(leveldb.Batch)
	if err := put(batch, blockKey(c.Block.Index), c.Block); err != nil {
		return err
	}
	for _, acct := range c.Accounts {
		if err := put(batch, accountKey(acct.Address), acct); err != nil {
			return err
		}
	}
	for addr, st := range c.Contracts {
		if err := put(batch, contractKey(addr), st); err != nil {
			return err
		}
	}
	for _, rec := range c.Validators {
		if err := put(batch, validatorKey(rec.ID), rec); err != nil {
			return err
		}
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("write block %d: %w", c.Block.Index, err)
	}
	return nil
}

// Truncate deletes the stored blocks from index on.
func (s *Store) Truncate(ctx context.Context, from uint64) (err error) {
	defer func(started time.Time) {
		s.observe("truncate", err, started)
	}(time.Now())

	iter := s.db.NewIterator(&util.Range{Start: blockKey(from), Limit: util.BytesPrefix([]byte(prefixBlock)).Limit}, nil)
	defer iter.Release()
	batch := new(leveldb.Batch)
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("scan blocks from %d: %w", from, err)
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("delete %d blocks from %d: %w", batch.Len(), from, err)
	}
	return nil
}

func put(batch *leveldb.Batch, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	batch.Put(key, data)
	return nil
}

// Blocks returns every stored block in index order.
func (s *Store) Blocks(ctx context.Context) (blocks []model.Block, err error) {
	defer func(started time.Time) {
		s.observe("blocks", err, started)
	}(time.Now())
	return scan[model.Block](ctx, s.db, prefixBlock)
}

// Validators returns every stored validator record.
func (s *Store) Validators(ctx context.Context) (records []model.ValidatorRecord, err error) {
	defer func(started time.Time) {
		s.observe("validators", err, started)
	}(time.Now())
	return scan[model.ValidatorRecord](ctx, s.db, prefixValidator)
}

// Block returns one stored block.
func (s *Store) Block(index uint64) (model.Block, bool, error) {
	return get[model.Block](s.db, blockKey(index))
}

// Account returns one stored account.
func (s *Store) Account(addr model.Address) (model.Account, bool, error) {
	return get[model.Account](s.db, accountKey(addr))
}

// ContractStorage returns the stored key/value state of a contract.
func (s *Store) ContractStorage(addr model.Address) (map[string][]byte, bool, error) {
	return get[map[string][]byte](s.db, contractKey(addr))
}

func get[T any](db *leveldb.DB, key []byte) (T, bool, error) {
	var v T
	data, err := db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, true, nil
}

func scan[T any](ctx context.Context, db *leveldb.DB, prefix string) ([]T, error) {
	iter := db.NewIterator(util.BytesPrefix([]byte(prefix)), nil)
	defer iter.Release()

	var out []T
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(iter.Value(), &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", iter.Key(), err)
		}
		out = append(out, v)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}
	return out, nil
}
