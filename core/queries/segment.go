package queries

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
)

type segmentKind uint8

const (
	segmentLiteral segmentKind = iota
	segmentArg
	segmentOptionalArg
	segmentCatchAllArg
)

// segment is one element of a compiled pattern: literal text that must
// appear verbatim in the path, or an argument binding one path segment.
// The catch-all argument binds the whole remainder of the path instead.
type segment struct {
	kind segmentKind
	text string // literal text, or the argument name

	// set by bindHandler for argument segments
	argType reflect.Type
	parse   func(string) (reflect.Value, bool)
}

func (s segment) isArg() bool {
	return s.kind != segmentLiteral
}

// parsePattern splits a registration pattern such as
// "/b/3/{a1}/{a2?}/{rest...}" into segments. Arguments use the brace
// notation: {name} binds one segment, {name?} binds one segment or
// nothing, {name...} binds the remainder and must come last.
func parsePattern(pattern string) ([]segment, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("%w: %q must start with a slash", ErrInvalidPattern, pattern)
	}

	parts := strings.Split(pattern[1:], "/")
	segments := make([]segment, 0, len(parts))
	names := make(map[string]struct{}, len(parts))

	for i, part := range parts {
		seg, err := parsePatternSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}

		if seg.kind == segmentCatchAllArg && i != len(parts)-1 {
			return nil, fmt.Errorf("%w: %q: catch-all argument %q must be the last segment", ErrInvalidPattern, pattern, seg.text)
		}

		if seg.isArg() {
			if _, dup := names[seg.text]; dup {
				return nil, fmt.Errorf("%w: %q: duplicate argument name %q", ErrInvalidPattern, pattern, seg.text)
			}
			names[seg.text] = struct{}{}
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

func parsePatternSegment(part string) (segment, error) {
	if part == "" {
		return segment{}, fmt.Errorf("empty segment")
	}

	if !strings.HasPrefix(part, "{") {
		if strings.ContainsAny(part, "{}") {
			return segment{}, fmt.Errorf("stray brace in segment %q", part)
		}

		return segment{kind: segmentLiteral, text: part}, nil
	}

	if !strings.HasSuffix(part, "}") {
		return segment{}, fmt.Errorf("unterminated argument segment %q", part)
	}

	name := part[1 : len(part)-1]
	kind := segmentArg

	switch {
	case strings.HasSuffix(name, "..."):
		kind = segmentCatchAllArg
		name = strings.TrimSuffix(name, "...")
	case strings.HasSuffix(name, "?"):
		kind = segmentOptionalArg
		name = strings.TrimSuffix(name, "?")
	}

	if !isValidArgName(name) {
		return segment{}, fmt.Errorf("invalid argument name in segment %q", part)
	}

	return segment{kind: kind, text: name}, nil
}

func isValidArgName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}

	return true
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// newArgParser builds the function that parses one path segment into a
// value of type t. Types implementing encoding.TextUnmarshaler parse
// through it; plain strings pass through as they are.
func newArgParser(t reflect.Type) (func(string) (reflect.Value, bool), error) {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return func(text string) (reflect.Value, bool) {
			v := reflect.New(t)
			if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
				return reflect.Value{}, false
			}

			return v.Elem(), true
		}, nil
	}

	if t.Kind() == reflect.String {
		return func(text string) (reflect.Value, bool) {
			v := reflect.New(t).Elem()
			v.SetString(text)

			return v, true
		}, nil
	}

	return nil, fmt.Errorf("type %s is not a string and does not implement encoding.TextUnmarshaler", t)
}

// newOptionalArgParser is newArgParser for a pointer-typed optional
// argument. A successful parse binds the pointer; the matcher binds a
// typed nil when the parse declines.
func newOptionalArgParser(t reflect.Type) (func(string) (reflect.Value, bool), error) {
	parseElem, err := newArgParser(t.Elem())
	if err != nil {
		return nil, err
	}

	return func(text string) (reflect.Value, bool) {
		v, ok := parseElem(text)
		if !ok {
			return reflect.Value{}, false
		}

		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(v)

		return ptr, true
	}, nil
}
