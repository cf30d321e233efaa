package queries

import (
	"github.com/nbardi/namada/core/types/address"
	"github.com/nbardi/namada/core/types/storage"
)

// RequestQuery is one read-only query to the ledger.
type RequestQuery struct {
	// Path selects the handler, for example "/vp/token/balance/...".
	Path string
	// Data is an optional raw payload for handlers that consume one.
	Data []byte
	// Height selects the state to read from; zero means the latest
	// committed block.
	Height storage.BlockHeight
	// Prove asks for a proof of the returned data.
	Prove bool
}

// ResponseQuery is the envelope a handler fills in. Data stays typed until
// the router encodes it for the wire.
type ResponseQuery struct {
	Data     any
	Info     string
	ProofOps *ProofOps
}

// EncodedResponseQuery is the wire form of a response envelope.
type EncodedResponseQuery struct {
	Data     []byte    `json:"data"`
	Info     string    `json:"info,omitempty"`
	ProofOps *ProofOps `json:"proof_ops,omitempty"`
}

// ProofOp is a single step of a storage proof. The router treats proofs as
// opaque: the storage collaborator builds them and clients verify them.
type ProofOp struct {
	Type string `json:"type"`
	Key  []byte `json:"key"`
	Data []byte `json:"data"`
}

// ProofOps is an ordered proof chain, innermost step first.
type ProofOps struct {
	Ops []ProofOp `json:"ops"`
}

// PrefixValue is one key-value pair returned by a prefix scan.
type PrefixValue struct {
	Key   storage.Key `json:"key"`
	Value []byte      `json:"value"`
}

// RequestCtx carries the collaborators a handler may consult.
type RequestCtx struct {
	State StateReader
}

// StateReader is the read-only storage surface query handlers run against.
// The ledger's storage engine implements it; mock.Storage is the in-memory
// stand-in for tests.
type StateReader interface {
	// Height returns the latest committed block height.
	Height() storage.BlockHeight
	// Epoch returns the current consensus epoch.
	Epoch() storage.Epoch
	// NativeToken returns the address of the ledger's native token.
	NativeToken() address.Address
	// Read returns the value stored at key in the latest state, or nil
	// when the key is not present.
	Read(key storage.Key) ([]byte, error)
	// ReadAtHeight is Read against the state committed at the given
	// height.
	ReadAtHeight(key storage.Key, height storage.BlockHeight) ([]byte, error)
	// Has reports whether the key is present in the latest state.
	Has(key storage.Key) (bool, error)
	// IterPrefix returns all key-value pairs under the prefix, ordered
	// by key.
	IterPrefix(prefix storage.Key) ([]PrefixValue, error)
	// Proof builds a proof of the value at the given height, or of its
	// absence when value is nil.
	Proof(key storage.Key, value []byte, height storage.BlockHeight) (*ProofOps, error)
}
