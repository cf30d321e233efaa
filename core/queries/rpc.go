package queries

// RPC is the root query router of a node. Every request path resolves
// from here; the first segment picks the component sub-router.
var RPC = MustNewRouter("rpc",
	Mount("/shell", Shell),
	Mount("/vp", VP),
	Mount("/eth_bridge", EthBridge),
)
