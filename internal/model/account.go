package model

// Account is a ledger account. Accounts are created on first credit and are
// never deleted.
type Account struct {
	Address    Address `json:"address"`
	Balance    uint64  `json:"balance"`
	Nonce      uint64  `json:"nonce"`
	IsContract bool    `json:"is_contract"`
}

// EntryKind labels why value moved between two accounts.
type EntryKind string

const (
	EntryTransfer EntryKind = "transfer"
	EntryFee      EntryKind = "fee"
	EntryStake    EntryKind = "stake"
	EntryUnstake  EntryKind = "unstake"
	EntryContract EntryKind = "contract"
	EntryIssue    EntryKind = "issue"
)

// LedgerEntry is one matched debit/credit pair.
type LedgerEntry struct {
	Debit      Address   `json:"debit"`
	Credit     Address   `json:"credit"`
	Amount     uint64    `json:"amount"`
	TxHash     Hash      `json:"tx_hash"`
	Kind       EntryKind `json:"kind"`
	BlockIndex uint64    `json:"block_index"`
}

// ContractEvent is emitted by contract execution and archived with the delta.
type ContractEvent struct {
	Contract Address `json:"contract"`
	Name     string  `json:"name"`
	Data     []byte  `json:"data,omitempty"`
}

// StateDelta describes the effects of one applied transaction.
type StateDelta struct {
	TxHash   Hash            `json:"tx_hash"`
	Entries  []LedgerEntry   `json:"entries"`
	Accounts []Account       `json:"accounts"`
	Contract *ContractChange `json:"contract,omitempty"`
}

// ContractChange is the committed part of a contract execution. A nil value
// in Writes deletes the key.
type ContractChange struct {
	Address Address           `json:"address"`
	Writes  map[string][]byte `json:"writes"`
	Events  []ContractEvent   `json:"events,omitempty"`
}
