package queries

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nbardi/namada/core/logger"
	"github.com/nbardi/namada/core/metrics"
	"github.com/nbardi/namada/core/telemetry"
)

// Router resolves request paths to handlers. Routes are tried in
// declaration order and the first full match wins, so more specific
// patterns belong before the patterns they would otherwise shadow.
//
// A router is immutable after construction and safe for concurrent use.
type Router struct {
	name    string
	prefix  string
	routes  []*Route
	mounted bool
}

// NewRouter compiles a router out of route declarations. It validates
// every pattern and handler signature up front so that a router that
// constructs successfully cannot fail on malformed routing state later.
func NewRouter(name string, defs ...RouteDef) (*Router, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty router name", ErrInvalidRouter)
	}

	r := &Router{name: name}
	for _, def := range defs {
		rt, err := compileRoute(r, def)
		if err != nil {
			return nil, err
		}

		if rt.sub != nil {
			if rt.sub.mounted {
				return nil, fmt.Errorf("%w: router %s is already mounted", ErrInvalidRouter, rt.sub.name)
			}
			rt.sub.mounted = true
		}

		r.routes = append(r.routes, rt)
	}

	r.propagatePrefixes()

	return r, nil
}

// MustNewRouter is like [NewRouter] but panics on error. Use it for
// routing tables declared as package variables.
func MustNewRouter(name string, defs ...RouteDef) *Router {
	r, err := NewRouter(name, defs...)
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Router) setPrefix(prefix string) {
	r.prefix = prefix
	r.propagatePrefixes()
}

func (r *Router) propagatePrefixes() {
	for _, rt := range r.routes {
		if rt.sub != nil {
			// Mount patterns are all-literal, so the pattern is the
			// mounted prefix verbatim.
			rt.sub.setPrefix(r.prefix + rt.Pattern())
		}
	}
}

// Name returns the router's name.
func (r *Router) Name() string {
	return r.name
}

// Routes returns the compiled routes in declaration order.
func (r *Router) Routes() []*Route {
	routes := make([]*Route, len(r.routes))
	copy(routes, r.routes)

	return routes
}

// Route looks a handler route up by name, descending into mounted
// sub-routers. Use it with [Route.Path] to build request paths without
// spelling them out by hand.
func (r *Router) Route(name string) (*Route, error) {
	if rt := r.findRoute(name); rt != nil {
		return rt, nil
	}

	return nil, fmt.Errorf("%w: no route %s under router %s", ErrUnknownRoute, name, r.name)
}

func (r *Router) findRoute(name string) *Route {
	for _, rt := range r.routes {
		if rt.sub != nil {
			if found := rt.sub.findRoute(name); found != nil {
				return found
			}

			continue
		}

		if rt.name == name {
			return rt
		}
	}

	return nil
}

// Handle resolves the request path and runs the matching handler. A path
// no route fully consumes fails with [ErrWrongPath]; handler errors come
// back verbatim.
func (r *Router) Handle(ctx context.Context, rctx RequestCtx, req *RequestQuery) (*EncodedResponseQuery, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrWrongPath)
	}

	ctx, span := telemetry.Tracer().Start(ctx, "queries.Handle", trace.WithAttributes(
		telemetry.QueryPath(req.Path),
		telemetry.RouterName(r.name),
		telemetry.QueryHeight(uint64(req.Height)),
		telemetry.QueryProve(req.Prove),
	))
	defer span.End()

	start := time.Now()

	resp, rt, err := r.resolve(rctx, req, 0)

	handler := ""
	if rt != nil {
		handler = rt.name
		span.SetAttributes(telemetry.HandlerName(rt.name))
	}

	status := statusOf(err)
	metrics.GetQueryMetrics().ObserveHandled(r.name, handler, status, time.Since(start))

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.Logger().WithError(err).WithFields(logrus.Fields{
			"router": r.name,
			"path":   req.Path,
			"status": status,
		}).Debug("query failed")

		return nil, err
	}

	span.SetStatus(codes.Ok, "")

	return resp, nil
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.Is(err, ErrWrongPath):
		return metrics.StatusWrongPath
	case errors.Is(err, ErrResponseEncoding):
		return metrics.StatusEncodingError
	default:
		return metrics.StatusHandlerError
	}
}

// resolve walks the routes with a cursor into req.Path. start sits on the
// '/' that precedes the segments this router still has to match, which for
// the top-level call is offset 0.
func (r *Router) resolve(rctx RequestCtx, req *RequestQuery, start int) (*EncodedResponseQuery, *Route, error) {
	path := req.Path
	if len(path) == 0 || path[0] != '/' {
		return nil, nil, fmt.Errorf("%w: %q", ErrWrongPath, path)
	}
	// A bare separator, with no segment text behind the cursor, matches
	// nothing on any router.
	if start+1 >= len(path) {
		return nil, nil, fmt.Errorf("%w: %q", ErrWrongPath, path)
	}

	log := logger.Logger()

nextRoute:
	for _, rt := range r.routes {
		cur := start + 1
		end := nextSlash(path, cur)
		// tail tracks the end of the last consumed segment; whatever
		// trails it must be empty or a lone '/' for the route to match.
		tail := start + 1

		var args []reflect.Value
		if n := len(rt.argSegments); n > 0 {
			args = make([]reflect.Value, 0, n)
		}

		for _, seg := range rt.segments {
			switch seg.kind {
			case segmentLiteral:
				if path[cur:end] != seg.text {
					log.Tracef("query router %s: segment %q does not match %q", r.name, path[cur:end], seg.text)

					continue nextRoute
				}

				tail = end
				cur, end = advance(path, end)
			case segmentArg:
				v, ok := seg.parse(path[cur:end])
				if !ok {
					log.Tracef("query router %s: segment %q does not parse as %s", r.name, path[cur:end], seg.argType)

					continue nextRoute
				}

				args = append(args, v)
				tail = end
				cur, end = advance(path, end)
			case segmentOptionalArg:
				if v, ok := seg.parse(path[cur:end]); ok {
					args = append(args, v)
					tail = end
					cur, end = advance(path, end)
				} else {
					// The optional argument declines; the segment stays
					// unconsumed and binds as nil.
					args = append(args, reflect.Zero(seg.argType))
				}
			case segmentCatchAllArg:
				v, ok := seg.parse(path[cur:])
				if !ok {
					log.Tracef("query router %s: tail %q does not parse as %s", r.name, path[cur:], seg.argType)

					continue nextRoute
				}

				args = append(args, v)
				tail = len(path)
			}
		}

		if rt.sub != nil {
			// Sub-routers take over at the separator that precedes the
			// unmatched remainder. Their verdict is final, matched
			// prefixes are not retried against later routes.
			return rt.sub.resolve(rctx, req, tail)
		}

		if rest := path[tail:]; rest != "" && rest != "/" {
			log.Tracef("query router %s: route %s leaves %q unconsumed", r.name, rt.name, rest)

			continue nextRoute
		}

		resp, err := rt.invoke(rctx, req, args)

		return resp, rt, err
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrWrongPath, path)
}

// nextSlash returns the offset of the next '/' at or after start, or
// len(path) when the last segment runs to the end.
func nextSlash(path string, start int) int {
	if i := strings.IndexByte(path[start:], '/'); i >= 0 {
		return start + i
	}

	return len(path)
}

// advance moves the segment window past the separator at end.
func advance(path string, end int) (int, int) {
	cur := end
	if cur < len(path) {
		cur++
	}

	return cur, nextSlash(path, cur)
}
