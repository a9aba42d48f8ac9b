// Package contract holds the contract execution collaborator. The executor
// never touches the ledger directly: it reads through a StateView and returns
// the writes it wants committed.
package contract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StateView is the read-only ledger surface visible to contracts.
	StateView interface {
		ContractValue(contract model.Address, key string) ([]byte, bool)
		Balance(addr model.Address) uint64
	}
	// Executor runs a contract payload.
	Executor interface {
		Execute(contract model.Address, payload []byte, view StateView) (Result, error)
	}
)

// Result is the outcome of one execution. Writes with a nil value delete the key.
type Result struct {
	Success bool
	Writes  map[string][]byte
	Events  []model.ContractEvent
	Reason  string
}

// Failed builds an unsuccessful Result.
func Failed(reason string) Result {
	return Result{Reason: reason}
}

// Op codes understood by KVExecutor.
const (
	OpSet     = "set"
	OpDelete  = "delete"
	OpEmit    = "emit"
	OpRequire = "require"
	OpRevert  = "revert"
)

// Op is one step of a KVExecutor program.
type Op struct {
	Op    string `json:"op"`
	Key   string `json:"key,omitempty"`
	Value []byte `json:"value,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Program is the payload format of KVExecutor.
type Program struct {
	Ops []Op `json:"ops"`
}

// Encode serializes p as a payload.
func (p Program) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// KVExecutor interprets payloads as a list of key/value operations against
// the contract's own storage. Execution is all-or-nothing: any failing
// require or an explicit revert discards every write of the program.
type KVExecutor struct {
	MaxOps int
}

// NewKVExecutor returns a KVExecutor bounded to maxOps operations per call.
func NewKVExecutor(maxOps int) *KVExecutor {
	return &KVExecutor{MaxOps: maxOps}
}

func (e *KVExecutor) Execute(contract model.Address, payload []byte, view StateView) (Result, error) {
	var prog Program
	if err := json.Unmarshal(payload, &prog); err != nil {
		return Failed(fmt.Sprintf("decode program: %v", err)), nil
	}
	if e.MaxOps > 0 && len(prog.Ops) > e.MaxOps {
		return Failed(fmt.Sprintf("program has %d ops, limit %d", len(prog.Ops), e.MaxOps)), nil
	}

	writes := make(map[string][]byte)
	var events []model.ContractEvent
	read := func(key string) ([]byte, bool) {
		if v, ok := writes[key]; ok {
			return v, v != nil
		}
		return view.ContractValue(contract, key)
	}

	for i, op := range prog.Ops {
		switch op.Op {
		case OpSet:
			if op.Key == "" {
				return Failed(fmt.Sprintf("op %d: empty key", i)), nil
			}
			writes[op.Key] = append([]byte{}, op.Value...)
		case OpDelete:
			writes[op.Key] = nil
		case OpEmit:
			events = append(events, model.ContractEvent{Contract: contract, Name: op.Name, Data: op.Value})
		case OpRequire:
			current, ok := read(op.Key)
			if !ok || !bytes.Equal(current, op.Value) {
				return Failed(fmt.Sprintf("op %d: requirement on %q not met", i, op.Key)), nil
			}
		case OpRevert:
			return Failed(fmt.Sprintf("op %d: reverted", i)), nil
		default:
			return Failed(fmt.Sprintf("op %d: unknown op %q", i, op.Op)), nil
		}
	}

	return Result{Success: true, Writes: writes, Events: events}, nil
}
