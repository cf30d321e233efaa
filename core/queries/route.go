package queries

import (
	"encoding"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// RouteDef is one routing declaration passed to NewRouter: a pattern bound
// to a handler (see [Handle]) or a mounted sub-router (see [Mount]).
type RouteDef struct {
	pattern    string
	handler    any
	returnType reflect.Type
	sub        *Router
}

// Handle declares a route. The pattern's argument segments bind, in order,
// to the handler's trailing parameters. The type parameter records the
// type of the response data the handler produces; clients decode replies
// with it (see [Request]).
//
// The handler must be a function of the form
//
//	func(rctx RequestCtx, req *RequestQuery, args...) (ResponseQuery, error)
//
// with one parameter per argument segment: plain values for {name} and
// {name...}, pointers for {name?}.
func Handle[T any](pattern string, handler any) RouteDef {
	return RouteDef{
		pattern:    pattern,
		handler:    handler,
		returnType: reflect.TypeOf((*T)(nil)).Elem(),
	}
}

// Mount declares a sub-router under a literal pattern. Matching hands the
// unconsumed remainder of the path over to the sub-router; path building
// joins the prefixes back together.
func Mount(pattern string, sub *Router) RouteDef {
	return RouteDef{pattern: pattern, sub: sub}
}

// Route is one compiled entry of a [Router]. Routes are immutable after
// construction and safe for concurrent use.
type Route struct {
	name        string
	owner       *Router
	segments    []segment
	argSegments []int // indices into segments, one per handler argument
	handler     reflect.Value
	returnType  reflect.Type
	sub         *Router
}

var (
	requestCtxType    = reflect.TypeOf(RequestCtx{})
	requestPtrType    = reflect.TypeOf((*RequestQuery)(nil))
	responseQueryType = reflect.TypeOf(ResponseQuery{})
	errorType         = reflect.TypeOf((*error)(nil)).Elem()
)

// Handlers take RequestCtx and *RequestQuery before the pattern arguments.
const fixedInParams = 2

func compileRoute(owner *Router, def RouteDef) (*Route, error) {
	segments, err := parsePattern(def.pattern)
	if err != nil {
		return nil, err
	}

	rt := &Route{owner: owner, segments: segments, returnType: def.returnType}

	if def.sub != nil {
		for _, seg := range segments {
			if seg.isArg() {
				return nil, fmt.Errorf("%w: %q: sub-router prefixes must be literal", ErrInvalidPattern, def.pattern)
			}
		}

		rt.name = def.sub.name
		rt.sub = def.sub

		return rt, nil
	}

	if err := rt.bindHandler(def.pattern, def.handler); err != nil {
		return nil, err
	}

	return rt, nil
}

func (rt *Route) bindHandler(pattern string, handler any) error {
	if handler == nil {
		return fmt.Errorf("%w: %q: nil handler", ErrInvalidHandler, pattern)
	}

	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func {
		return fmt.Errorf("%w: %q: %T is not a function", ErrInvalidHandler, pattern, handler)
	}

	rt.name = handlerName(v)
	rt.handler = v

	for i, seg := range rt.segments {
		if seg.isArg() {
			rt.argSegments = append(rt.argSegments, i)
		}
	}

	t := v.Type()
	if t.NumIn() != fixedInParams+len(rt.argSegments) {
		return fmt.Errorf(
			"%w: found %d but expected %d: handler %s",
			ErrIncorrectArgumentCount,
			t.NumIn(),
			fixedInParams+len(rt.argSegments),
			rt.name,
		)
	}

	if t.IsVariadic() || t.In(0) != requestCtxType || t.In(1) != requestPtrType {
		return fmt.Errorf("%w: %s must take (RequestCtx, *RequestQuery, args...)", ErrInvalidHandler, rt.name)
	}

	if t.NumOut() != 2 || t.Out(0) != responseQueryType || t.Out(1) != errorType {
		return fmt.Errorf("%w: %s must return (ResponseQuery, error)", ErrInvalidHandler, rt.name)
	}

	for j, segIdx := range rt.argSegments {
		seg := &rt.segments[segIdx]
		paramType := t.In(fixedInParams + j)

		var err error
		switch seg.kind {
		case segmentOptionalArg:
			if paramType.Kind() != reflect.Pointer {
				return fmt.Errorf(
					"%w: %s: optional argument %q needs a pointer parameter, got %s",
					ErrInvalidHandler, rt.name, seg.text, paramType,
				)
			}
			seg.parse, err = newOptionalArgParser(paramType)
		default:
			if paramType.Kind() == reflect.Pointer {
				return fmt.Errorf(
					"%w: %s: argument %q must not use a pointer parameter, pointers mark optional arguments",
					ErrInvalidHandler, rt.name, seg.text,
				)
			}
			seg.parse, err = newArgParser(paramType)
		}
		if err != nil {
			return fmt.Errorf("%w: %s: argument %q: %v", ErrInvalidHandler, rt.name, seg.text, err)
		}

		seg.argType = paramType
	}

	return nil
}

// handlerName extracts the bare function name routes are known by, for
// example "balance" out of "github.com/nbardi/namada/core/queries.balance".
func handlerName(v reflect.Value) string {
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return "handler"
	}

	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	return strings.TrimSuffix(name, "-fm")
}

// Name returns the handler-derived route name, or the sub-router's name
// for mounts.
func (rt *Route) Name() string {
	return rt.name
}

// Pattern reconstructs the registration pattern of the route.
func (rt *Route) Pattern() string {
	var b strings.Builder
	for _, seg := range rt.segments {
		b.WriteByte('/')
		switch seg.kind {
		case segmentLiteral:
			b.WriteString(seg.text)
		case segmentArg:
			b.WriteString("{" + seg.text + "}")
		case segmentOptionalArg:
			b.WriteString("{" + seg.text + "?}")
		case segmentCatchAllArg:
			b.WriteString("{" + seg.text + "...}")
		}
	}

	return b.String()
}

// Path builds the request path that resolves back to this route, taking
// one value per argument segment in pattern order. Arguments must have the
// handler's parameter types. Optional arguments take a typed pointer or
// nil and stay out of the path when nil.
func (rt *Route) Path(args ...any) (string, error) {
	if rt.sub != nil {
		return "", fmt.Errorf("%w: %s is a mount, pick one of its routes", ErrNotAHandlerRoute, rt.name)
	}

	if len(args) != len(rt.argSegments) {
		return "", fmt.Errorf(
			"%w: found %d but expected %d: path of %s",
			ErrIncorrectArgumentCount,
			len(args),
			len(rt.argSegments),
			rt.name,
		)
	}

	parts := make([]string, 0, len(rt.segments)+1)
	parts = append(parts, rt.owner.prefix)

	argIdx := 0
	for _, seg := range rt.segments {
		if !seg.isArg() {
			parts = append(parts, seg.text)
			continue
		}

		arg := args[argIdx]
		argIdx++

		text, include, err := renderArg(seg, arg)
		if err != nil {
			return "", err
		}
		if include {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "/"), nil
}

func renderArg(seg segment, arg any) (string, bool, error) {
	if seg.kind == segmentOptionalArg {
		if arg == nil {
			return "", false, nil
		}

		v := reflect.ValueOf(arg)
		if v.Type() != seg.argType {
			return "", false, fmt.Errorf(
				"%w: argument %q wants %s, got %T",
				ErrInvalidArgumentValue, seg.text, seg.argType, arg,
			)
		}
		if v.IsNil() {
			return "", false, nil
		}

		text, err := renderValue(seg, v.Elem())

		return text, err == nil, err
	}

	if arg == nil {
		return "", false, fmt.Errorf("%w: argument %q must not be nil", ErrInvalidArgumentValue, seg.text)
	}

	v := reflect.ValueOf(arg)
	if v.Type() != seg.argType {
		return "", false, fmt.Errorf(
			"%w: argument %q wants %s, got %T",
			ErrInvalidArgumentValue, seg.text, seg.argType, arg,
		)
	}

	text, err := renderValue(seg, v)

	return text, err == nil, err
}

func renderValue(seg segment, v reflect.Value) (string, error) {
	text, err := stringify(v)
	if err != nil {
		return "", err
	}

	if text == "" {
		return "", fmt.Errorf("%w: argument %q renders into an empty segment", ErrInvalidArgumentValue, seg.text)
	}
	if seg.kind != segmentCatchAllArg && strings.Contains(text, "/") {
		return "", fmt.Errorf("%w: argument %q renders %q with a path separator", ErrInvalidArgumentValue, seg.text, text)
	}

	return text, nil
}

func stringify(v reflect.Value) (string, error) {
	switch iface := v.Interface().(type) {
	case encoding.TextMarshaler:
		text, err := iface.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidArgumentValue, err)
		}

		return string(text), nil
	case fmt.Stringer:
		return iface.String(), nil
	}

	if v.Kind() == reflect.String {
		return v.String(), nil
	}

	return "", fmt.Errorf("%w: type %s cannot be rendered as a path segment", ErrInvalidArgumentValue, v.Type())
}

func (rt *Route) invoke(rctx RequestCtx, req *RequestQuery, args []reflect.Value) (*EncodedResponseQuery, error) {
	in := make([]reflect.Value, 0, fixedInParams+len(args))
	in = append(in, reflect.ValueOf(rctx), reflect.ValueOf(req))
	in = append(in, args...)

	out := rt.handler.Call(in)
	if errVal := out[1]; !errVal.IsNil() {
		return nil, errVal.Interface().(error)
	}

	resp := out[0].Interface().(ResponseQuery)

	data, err := encodeResponseData(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResponseEncoding, rt.name, err)
	}

	return &EncodedResponseQuery{Data: data, Info: resp.Info, ProofOps: resp.ProofOps}, nil
}
