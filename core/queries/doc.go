// Package queries routes ledger query requests to handler functions by
// matching request paths against declared patterns, and builds those paths
// back from routes for the client side. Routing tables are plain Go values
// assembled at runtime, so node and protocol code can compose them freely.
//
// Patterns:
//
// A pattern is a '/'-separated sequence of segments. Each segment is
// either a literal, matched by string equality, or an argument binding:
//
//   - "{name}": a required argument; the segment must parse into the
//     handler's parameter type.
//   - "{name?}": an optional argument; when the segment does not parse,
//     nothing is consumed and the handler receives nil.
//   - "{name...}": a catch-all that binds the whole remaining path,
//     slashes included. It must be the last segment of its pattern.
//
// Routes are tried in declaration order and the first route that consumes
// the entire path wins. Declaring "/tx/{id}" before "/tx/latest" therefore
// shadows the literal route whenever "latest" parses as an id; order the
// more specific route first.
//
// Handlers:
//
// A handler is a function taking the request context, the raw request and
// one parameter per argument segment, in pattern order:
//
//	func balance(rctx queries.RequestCtx, req *queries.RequestQuery,
//	    tok, owner address.Address) (queries.ResponseQuery, error) {
//	    // Implementation
//	}
//
// Required and catch-all arguments bind as plain values, optional
// arguments as pointers. Parameter types parse from path text through
// [encoding.TextUnmarshaler] or a plain string kind. Signatures are
// validated with reflection when the router is built, so a router that
// constructs successfully cannot dispatch into a mismatched handler.
//
// Routers:
//
// [NewRouter] compiles declarations into an immutable router; [Handle]
// declares a handler route and [Mount] nests another router under a
// literal prefix:
//
//	var Shell = queries.MustNewRouter("shell",
//	    queries.Handle[storage.Epoch]("/epoch", epoch),
//	    queries.Handle[[]byte]("/value/{key...}", storageValue),
//	)
//
//	var RPC = queries.MustNewRouter("rpc",
//	    queries.Mount("/shell", Shell),
//	)
//
// Once a mount's prefix matches, the sub-router's verdict is final: its
// routes are tried against the remaining path and a miss fails the whole
// request with [ErrWrongPath] rather than falling through to later
// routes of the parent.
//
// Path Building and Clients:
//
// Every handler route can reconstruct the path that resolves back to it,
// which keeps client code free of hand-spelled path strings:
//
//	rt, err := queries.RPC.Route("balance")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := rt.Path(tok, owner) // "/vp/token/balance/tnam1.../tnam1..."
//
// [Request] and [RequestWithOptions] combine path building, the query
// round-trip through a [Client] and response decoding into one typed
// call:
//
//	amt, resp, err := queries.Request[token.Amount](ctx, client, rt, tok, owner)
//
// The type parameter must repeat the type the route was declared with;
// a mismatch fails with [ErrResponseDecoding] before the request is sent.
//
// Error Handling:
//
// Paths that no route consumes fail with [ErrWrongPath]. Handler errors
// propagate to the caller unwrapped. Response payloads that cannot be
// encoded or decoded fail with [ErrResponseEncoding] and
// [ErrResponseDecoding]. Malformed routing tables surface as
// [ErrInvalidPattern], [ErrInvalidHandler] or [ErrInvalidRouter] at
// construction time.
package queries
