package ethbridge

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/nbardi/namada/core/types/address"
	"github.com/nbardi/namada/core/types/storage"
	"github.com/nbardi/namada/core/types/token"
)

// BridgeAddress is the internal account that owns all Ethereum bridge
// storage.
var BridgeAddress = address.NewInternal("eth_bridge")

const (
	wrappedERC20Segment = "wrapped_erc20"
	supplySegment       = "supply"
	capSegment          = "cap"
	whitelistedSegment  = "whitelisted"
)

// FlowControl describes the minting limits of one wrapped ERC20 asset.
type FlowControl struct {
	Whitelisted bool         `json:"whitelisted"`
	Cap         token.Amount `json:"cap"`
	Supply      token.Amount `json:"supply"`
}

// Exceeded reports whether minting the given amount would go over the cap.
func (fc FlowControl) Exceeded(mint token.Amount) bool {
	if !fc.Whitelisted {
		return true
	}

	return mint > fc.Cap-fc.Supply || fc.Supply > fc.Cap
}

// WrappedERC20Prefix returns the storage prefix of one wrapped asset. The
// asset segment is the lower-case 0x-hex form of the ERC20 contract
// address.
func WrappedERC20Prefix(asset common.Address) storage.Key {
	return storage.KeyFromAddress(BridgeAddress).
		MustPush(wrappedERC20Segment).
		MustPush(assetSegment(asset))
}

// SupplyKey returns the key holding the minted supply of a wrapped asset.
func SupplyKey(asset common.Address) storage.Key {
	return WrappedERC20Prefix(asset).MustPush(supplySegment)
}

// CapKey returns the key holding the minting cap of a wrapped asset.
func CapKey(asset common.Address) storage.Key {
	return WrappedERC20Prefix(asset).MustPush(capSegment)
}

// WhitelistedKey returns the key holding the whitelist flag of a wrapped
// asset.
func WhitelistedKey(asset common.Address) storage.Key {
	return WrappedERC20Prefix(asset).MustPush(whitelistedSegment)
}

func assetSegment(asset common.Address) string {
	return strings.ToLower(asset.Hex())
}

// EncodeFlag returns the single-byte storage encoding of a boolean flag.
func EncodeFlag(v bool) []byte {
	if v {
		return []byte{1}
	}

	return []byte{0}
}

// DecodeFlag reads the single-byte storage encoding of a boolean flag.
// Anything but a one-byte 0x01 value is false.
func DecodeFlag(data []byte) bool {
	return len(data) == 1 && data[0] == 1
}
