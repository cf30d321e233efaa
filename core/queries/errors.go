package queries

import "errors"

// Error types.
var (
	// ErrWrongPath is returned when no route of the router tree matches a
	// request path. The original request path is attached to it.
	ErrWrongPath = errors.New("no matching pattern for the given path")

	// ErrResponseEncoding is returned when a handler's response data
	// cannot be encoded for the wire.
	ErrResponseEncoding = errors.New("encoding response data")

	// ErrResponseDecoding is returned by the client helpers when wire
	// data cannot be decoded into the route's declared response type.
	ErrResponseDecoding = errors.New("decoding response data")

	// ErrUnknownRoute is returned when a route lookup by name finds
	// nothing in the router tree.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrNotAHandlerRoute is returned when a path is requested from a
	// mount entry instead of a leaf handler route.
	ErrNotAHandlerRoute = errors.New("route does not point at a handler")

	// ErrIncorrectArgumentCount is returned when the number of arguments
	// does not match the pattern, at construction or when building paths.
	ErrIncorrectArgumentCount = errors.New("incorrect number of arguments")

	// ErrInvalidArgumentValue is returned when a path argument cannot be
	// rendered into a path segment.
	ErrInvalidArgumentValue = errors.New("invalid argument value")

	// Construction errors, returned by NewRouter.
	ErrInvalidPattern = errors.New("invalid route pattern")
	ErrInvalidHandler = errors.New("invalid route handler")
	ErrInvalidRouter  = errors.New("invalid router")
)
