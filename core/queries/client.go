package queries

import (
	"context"
	"fmt"
	"reflect"

	"github.com/nbardi/namada/core/types/storage"
)

// Client submits query requests to a node. The mock package provides an
// in-process implementation backed directly by a router; RPC transports
// plug in behind the same interface.
type Client interface {
	Query(ctx context.Context, req *RequestQuery) (*EncodedResponseQuery, error)
}

// QueryOptions carries the optional request fields of a query. The zero
// value queries the latest height without a proof.
type QueryOptions struct {
	// Data is an opaque request payload for handlers that read one.
	Data []byte
	// Height pins the query to a historic block height; zero means the
	// latest committed state.
	Height storage.BlockHeight
	// Prove requests Merkle proofs for the response data.
	Prove bool
}

// Request queries a route with default options and decodes the response
// data into the route's declared type. The type parameter must repeat the
// type the route was declared with.
func Request[T any](ctx context.Context, c Client, rt *Route, args ...any) (T, *EncodedResponseQuery, error) {
	return RequestWithOptions[T](ctx, c, rt, QueryOptions{}, args...)
}

// RequestWithOptions is [Request] with explicit request options.
func RequestWithOptions[T any](ctx context.Context, c Client, rt *Route, opts QueryOptions, args ...any) (T, *EncodedResponseQuery, error) {
	var value T

	path, err := rt.Path(args...)
	if err != nil {
		return value, nil, err
	}

	if want := reflect.TypeOf((*T)(nil)).Elem(); want != rt.returnType {
		return value, nil, fmt.Errorf(
			"%w: route %s responds with %s, not %s",
			ErrResponseDecoding, rt.name, rt.returnType, want,
		)
	}

	resp, err := c.Query(ctx, &RequestQuery{
		Path:   path,
		Data:   opts.Data,
		Height: opts.Height,
		Prove:  opts.Prove,
	})
	if err != nil {
		return value, nil, err
	}

	value, err = decodeResponseData[T](resp.Data)
	if err != nil {
		return value, resp, fmt.Errorf("%w: route %s: %v", ErrResponseDecoding, rt.name, err)
	}

	return value, resp, nil
}
