package node

import (
	"github.com/goodnatureofminers/pocschain/internal/model"
)

// Status reports the chain tip together with the validator set aggregates.
func (n *Node) Status() model.NetworkStatus {
	tip := n.Chain.Tip()
	halted, _ := n.Chain.Halted()
	return model.NetworkStatus{
		Height:      tip.Index,
		Tip:         tip.Hash,
		StateRoot:   n.Ledger.StateRoot(),
		TotalSupply: n.Ledger.TotalSupply(),
		Halted:      halted,
		MempoolSize: n.Pool.Len(),
		Health:      n.Registry.Health(),
		Summary:     n.Registry.Summary(),
	}
}

func (n *Node) Block(index uint64) (model.Block, bool) {
	return n.Chain.BlockAt(index)
}

func (n *Node) Account(addr model.Address) (model.Account, bool) {
	return n.Ledger.Account(addr)
}

// History returns up to limit ledger entries of addr, newest first.
func (n *Node) History(addr model.Address, limit int) []model.LedgerEntry {
	return n.Ledger.History(addr, limit)
}

func (n *Node) Validators() []model.ValidatorRecord {
	return n.Registry.Snapshot()
}
