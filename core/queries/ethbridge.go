package queries

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/nbardi/namada/core/types/ethbridge"
)

// EthBridge serves the Ethereum bridge queries.
var EthBridge = MustNewRouter("eth_bridge",
	Handle[ethbridge.FlowControl]("/erc20/flow_control/{asset}", erc20FlowControl),
)

func erc20FlowControl(rctx RequestCtx, _ *RequestQuery, asset common.Address) (ResponseQuery, error) {
	var fc ethbridge.FlowControl

	raw, err := rctx.State.Read(ethbridge.WhitelistedKey(asset))
	if err != nil {
		return ResponseQuery{}, err
	}
	fc.Whitelisted = ethbridge.DecodeFlag(raw)

	if fc.Cap, err = readAmount(rctx.State, ethbridge.CapKey(asset)); err != nil {
		return ResponseQuery{}, err
	}

	if fc.Supply, err = readAmount(rctx.State, ethbridge.SupplyKey(asset)); err != nil {
		return ResponseQuery{}, err
	}

	return ResponseQuery{Data: fc}, nil
}
