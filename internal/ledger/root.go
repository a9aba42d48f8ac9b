package ledger

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// StateRoot digests every account and its contract storage. Accounts are
// visited in address order so the result depends only on logical state.
func (l *Ledger) StateRoot() model.Hash {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.st.root()
}

func (s *state) root() model.Hash {
	accounts := s.sortedAccounts()
	var buf bytes.Buffer
	buf.Grow(len(accounts) * chainhash.HashSize)
	for i := range accounts {
		leaf := accountLeaf(&accounts[i], storageHash(s.contracts[accounts[i].Address]))
		buf.Write(leaf[:])
	}
	return chainhash.DoubleHashH(buf.Bytes())
}

// ComputeStateRoot digests an explicit account set, for callers that hold
// state outside a Ledger.
func ComputeStateRoot(accounts []model.Account, storage map[model.Address]map[string][]byte) model.Hash {
	st := &state{
		accounts:  make(map[model.Address]*model.Account, len(accounts)),
		contracts: storage,
	}
	for i := range accounts {
		acct := accounts[i]
		st.accounts[acct.Address] = &acct
	}
	return st.root()
}

func accountLeaf(acct *model.Account, contractHash model.Hash) model.Hash {
	var b [chainhash.HashSize + 8 + 8 + 1 + chainhash.HashSize]byte
	n := copy(b[:], acct.Address[:])
	binary.LittleEndian.PutUint64(b[n:], acct.Balance)
	n += 8
	binary.LittleEndian.PutUint64(b[n:], acct.Nonce)
	n += 8
	if acct.IsContract {
		b[n] = 1
	}
	n++
	copy(b[n:], contractHash[:])
	return chainhash.HashH(b[:])
}

func storageHash(storage map[string][]byte) model.Hash {
	if len(storage) == 0 {
		return model.ZeroHash
	}
	keys := make([]string, 0, len(storage))
	for k := range storage {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		// Writes to a bytes.Buffer do not fail.
		_ = wire.WriteVarBytes(&buf, 0, []byte(k))
		_ = wire.WriteVarBytes(&buf, 0, storage[k])
	}
	return chainhash.HashH(buf.Bytes())
}
