package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nbardi/namada/core/types/address"
)

// Separator joins the segments of a storage key in its textual form.
const Separator = "/"

// Segments naming an account are tagged with this prefix and carry a
// textual address after it.
const addressPrefix = "#"

// ErrInvalidKey is returned when text cannot be decoded into a [Key].
var ErrInvalidKey = errors.New("invalid storage key")

// Key addresses a value in the ledger's storage. A key is an ordered list
// of non-empty segments; segments starting with "#" embed an account
// address. The zero value is the empty key, the parent of every other key.
type Key struct {
	segments []string
}

// ParseKey decodes the textual form, for example
// "#tnam1.../balance/#tnam1...". Empty segments are rejected, so the text
// must not start or end with the separator.
func ParseKey(text string) (Key, error) {
	if text == "" {
		return Key{}, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	segments := strings.Split(text, Separator)
	for _, segment := range segments {
		if err := validateSegment(segment); err != nil {
			return Key{}, err
		}
	}

	return Key{segments: segments}, nil
}

// MustParseKey is like [ParseKey] but panics on malformed text. It is
// intended for fixed keys in static initializers.
func MustParseKey(text string) Key {
	k, err := ParseKey(text)
	if err != nil {
		panic(err)
	}

	return k
}

// KeyFromAddress returns the one-segment key naming an account's storage
// subspace.
func KeyFromAddress(a address.Address) Key {
	return Key{segments: []string{addressPrefix + a.String()}}
}

func validateSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("%w: empty segment", ErrInvalidKey)
	}

	if strings.HasPrefix(segment, addressPrefix) {
		if _, err := address.Parse(segment[len(addressPrefix):]); err != nil {
			return fmt.Errorf("%w: segment %q: %v", ErrInvalidKey, segment, err)
		}
	}

	return nil
}

// Push appends one segment to the key, validating it the same way
// [ParseKey] does. The receiver is not modified.
func (k Key) Push(segment string) (Key, error) {
	if strings.Contains(segment, Separator) {
		return Key{}, fmt.Errorf("%w: segment %q contains the separator", ErrInvalidKey, segment)
	}

	if err := validateSegment(segment); err != nil {
		return Key{}, err
	}

	return k.push(segment), nil
}

// MustPush is like [Push] but panics on an invalid segment. It is intended
// for fixed literal segments of well-known keys.
func (k Key) MustPush(segment string) Key {
	pushed, err := k.Push(segment)
	if err != nil {
		panic(err)
	}

	return pushed
}

// PushAddress appends an address segment. The receiver is not modified.
func (k Key) PushAddress(a address.Address) Key {
	return k.push(addressPrefix + a.String())
}

func (k Key) push(segment string) Key {
	segments := make([]string, 0, len(k.segments)+1)
	segments = append(segments, k.segments...)
	segments = append(segments, segment)

	return Key{segments: segments}
}

// Len reports the number of segments.
func (k Key) Len() int {
	return len(k.segments)
}

// IsEmpty reports whether the key has no segments.
func (k Key) IsEmpty() bool {
	return len(k.segments) == 0
}

// Segments returns a copy of the key's segments.
func (k Key) Segments() []string {
	segments := make([]string, len(k.segments))
	copy(segments, k.segments)

	return segments
}

// HasPrefix reports whether prefix is an ancestor of k (or equal to it),
// comparing whole segments. The empty key is a prefix of every key.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix.segments) > len(k.segments) {
		return false
	}

	for i, segment := range prefix.segments {
		if k.segments[i] != segment {
			return false
		}
	}

	return true
}

// Equal reports whether two keys address the same storage slot.
func (k Key) Equal(other Key) bool {
	if len(k.segments) != len(other.segments) {
		return false
	}

	for i, segment := range k.segments {
		if other.segments[i] != segment {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer. The output round-trips through
// [ParseKey] for non-empty keys.
func (k Key) String() string {
	return strings.Join(k.segments, Separator)
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if k.IsEmpty() {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}
