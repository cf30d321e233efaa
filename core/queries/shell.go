package queries

import (
	"fmt"

	"github.com/nbardi/namada/core/types/address"
	"github.com/nbardi/namada/core/types/storage"
)

// Shell serves the node-level state queries.
var Shell = MustNewRouter("shell",
	Handle[storage.Epoch]("/epoch", epoch),
	Handle[address.Address]("/native_token", nativeToken),
	Handle[[]byte]("/value/{key...}", storageValue),
	Handle[[]PrefixValue]("/prefix/{key...}", storagePrefix),
	Handle[bool]("/has_key/{key...}", storageHasKey),
)

func epoch(rctx RequestCtx, _ *RequestQuery) (ResponseQuery, error) {
	return ResponseQuery{Data: rctx.State.Epoch()}, nil
}

func nativeToken(rctx RequestCtx, _ *RequestQuery) (ResponseQuery, error) {
	return ResponseQuery{Data: rctx.State.NativeToken()}, nil
}

func storageValue(rctx RequestCtx, req *RequestQuery, key storage.Key) (ResponseQuery, error) {
	value, err := readStorage(rctx.State, req.Height, key)
	if err != nil {
		return ResponseQuery{}, err
	}

	resp := ResponseQuery{Data: value}
	if value == nil {
		resp.Data = []byte{}
		resp.Info = fmt.Sprintf("no value found for key %s", key)
	}

	if req.Prove {
		proof, err := rctx.State.Proof(key, value, queryHeight(rctx.State, req))
		if err != nil {
			return ResponseQuery{}, err
		}

		resp.ProofOps = proof
	}

	return resp, nil
}

func storagePrefix(rctx RequestCtx, req *RequestQuery, prefix storage.Key) (ResponseQuery, error) {
	values, err := rctx.State.IterPrefix(prefix)
	if err != nil {
		return ResponseQuery{}, err
	}

	resp := ResponseQuery{Data: values}
	if len(values) == 0 {
		resp.Data = []PrefixValue{}
		resp.Info = fmt.Sprintf("no values found under prefix %s", prefix)
	}

	if req.Prove {
		ops := &ProofOps{}
		height := queryHeight(rctx.State, req)
		for _, pv := range values {
			proof, err := rctx.State.Proof(pv.Key, pv.Value, height)
			if err != nil {
				return ResponseQuery{}, err
			}

			ops.Ops = append(ops.Ops, proof.Ops...)
		}

		resp.ProofOps = ops
	}

	return resp, nil
}

func storageHasKey(rctx RequestCtx, _ *RequestQuery, key storage.Key) (ResponseQuery, error) {
	has, err := rctx.State.Has(key)
	if err != nil {
		return ResponseQuery{}, err
	}

	return ResponseQuery{Data: has}, nil
}

// readStorage reads key at the requested height, zero meaning latest.
func readStorage(state StateReader, height storage.BlockHeight, key storage.Key) ([]byte, error) {
	if height == 0 {
		return state.Read(key)
	}

	return state.ReadAtHeight(key, height)
}

// queryHeight pins the height proofs are built against.
func queryHeight(state StateReader, req *RequestQuery) storage.BlockHeight {
	if req.Height != 0 {
		return req.Height
	}

	return state.Height()
}
