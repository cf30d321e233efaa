package ethbridge

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/nbardi/namada/core/types/address"
	"github.com/nbardi/namada/core/types/token"
)

var testAsset = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")

func TestWrappedERC20Keys(t *testing.T) {
	prefix := WrappedERC20Prefix(testAsset)
	require.Equal(t,
		"#"+BridgeAddress.String()+"/wrapped_erc20/0x6b175474e89094c44da98b954eedeac495271d0f",
		prefix.String())

	tests := []struct {
		name string
		key  string
	}{
		{name: "supply", key: SupplyKey(testAsset).String()},
		{name: "cap", key: CapKey(testAsset).String()},
		{name: "whitelisted", key: WhitelistedKey(testAsset).String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, prefix.String()+"/"+tt.name, tt.key)
		})
	}
}

func TestBridgeAddressIsInternal(t *testing.T) {
	require.Equal(t, address.Internal, BridgeAddress.Kind())
	require.Equal(t, BridgeAddress, address.NewInternal("eth_bridge"))
}

func TestFlowControlJSON(t *testing.T) {
	src := FlowControl{Whitelisted: true, Cap: 1000, Supply: 250}

	out, err := json.Marshal(src)
	require.NoError(t, err)

	var decoded FlowControl
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, src, decoded)
}

func TestFlowControlExceeded(t *testing.T) {
	tests := []struct {
		name string
		fc   FlowControl
		mint token.Amount
		want bool
	}{
		{name: "within cap", fc: FlowControl{Whitelisted: true, Cap: 100, Supply: 40}, mint: 60, want: false},
		{name: "over cap", fc: FlowControl{Whitelisted: true, Cap: 100, Supply: 40}, mint: 61, want: true},
		{name: "not whitelisted", fc: FlowControl{Whitelisted: false, Cap: 100}, mint: 1, want: true},
		{name: "supply already over cap", fc: FlowControl{Whitelisted: true, Cap: 100, Supply: 150}, mint: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.fc.Exceeded(tt.mint))
		})
	}
}

func TestFlagEncoding(t *testing.T) {
	require.True(t, DecodeFlag(EncodeFlag(true)))
	require.False(t, DecodeFlag(EncodeFlag(false)))
	require.False(t, DecodeFlag(nil))
	require.False(t, DecodeFlag([]byte{1, 0}))
}
