package queries

import (
	"github.com/nbardi/namada/core/types/address"
	"github.com/nbardi/namada/core/types/storage"
	"github.com/nbardi/namada/core/types/token"
)

// Token serves the fungible token queries.
var Token = MustNewRouter("token",
	Handle[token.Amount]("/balance/{token}/{owner}", balance),
)

// VP groups the validity predicate sub-routers.
var VP = MustNewRouter("vp",
	Mount("/token", Token),
)

func balance(rctx RequestCtx, _ *RequestQuery, tok, owner address.Address) (ResponseQuery, error) {
	amt, err := readAmount(rctx.State, token.BalanceKey(tok, owner))
	if err != nil {
		return ResponseQuery{}, err
	}

	return ResponseQuery{Data: amt}, nil
}

// readAmount decodes the amount stored at key, absent meaning zero.
func readAmount(state StateReader, key storage.Key) (token.Amount, error) {
	raw, err := state.Read(key)
	if err != nil {
		return 0, err
	}

	var amt token.Amount
	if raw == nil {
		return amt, nil
	}

	if err := amt.DecodeFromBytes(raw); err != nil {
		return 0, err
	}

	return amt, nil
}
