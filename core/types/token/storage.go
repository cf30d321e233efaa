package token

import (
	"github.com/nbardi/namada/core/types/address"
	"github.com/nbardi/namada/core/types/storage"
)

const balanceSegment = "balance"

// BalancePrefix returns the storage prefix under which all balances of the
// given token live.
func BalancePrefix(token address.Address) storage.Key {
	return storage.KeyFromAddress(token).MustPush(balanceSegment)
}

// BalanceKey returns the storage key holding the owner's balance of the
// given token.
func BalanceKey(token, owner address.Address) storage.Key {
	return BalancePrefix(token).PushAddress(owner)
}
