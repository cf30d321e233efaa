package address

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/sha3"
)

// HRP is the human-readable part of every textual address.
const HRP = "tnam"

const (
	// HashLength is the size of the payload that identifies an address.
	HashLength = 20
	// RawLength is the size of the raw form: one kind byte plus the hash.
	RawLength = 1 + HashLength
)

// ErrInvalidAddress is returned when textual or raw address material cannot
// be decoded into an [Address].
var ErrInvalidAddress = errors.New("invalid address")

// Kind discriminates the three address classes of the ledger.
type Kind uint8

const (
	// Established addresses are generated on-chain when an account is
	// initialized and are not derived from a key.
	Established Kind = iota
	// Implicit addresses are derived from a public key hash.
	Implicit
	// Internal addresses belong to native ledger subsystems, for example
	// the Ethereum bridge account.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Established:
		return "established"
	case Implicit:
		return "implicit"
	case Internal:
		return "internal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Address identifies an account. The raw form is a kind byte followed by a
// 20-byte hash; the textual form is bech32m with the [HRP] prefix. Address
// is comparable and safe to use as a map key.
type Address struct {
	raw [RawLength]byte
}

// NewEstablished returns the established address with the given hash.
func NewEstablished(hash [HashLength]byte) Address {
	return fromKindHash(Established, hash)
}

// NewImplicit returns the implicit address with the given hash.
func NewImplicit(hash [HashLength]byte) Address {
	return fromKindHash(Implicit, hash)
}

// NewInternal derives the internal address of a named ledger subsystem.
// The name is hashed with SHA3-256 and truncated, so well-known internal
// addresses are stable across processes.
func NewInternal(name string) Address {
	sum := sha3.Sum256([]byte(name))

	var hash [HashLength]byte
	copy(hash[:], sum[:HashLength])

	return fromKindHash(Internal, hash)
}

func fromKindHash(k Kind, hash [HashLength]byte) Address {
	var a Address
	a.raw[0] = byte(k)
	copy(a.raw[1:], hash[:])

	return a
}

// FromRaw decodes the raw form produced by [Address.Raw].
func FromRaw(raw []byte) (Address, error) {
	if len(raw) != RawLength {
		return Address{}, fmt.Errorf("%w: raw form must be %d bytes, got %d", ErrInvalidAddress, RawLength, len(raw))
	}

	if raw[0] > byte(Internal) {
		return Address{}, fmt.Errorf("%w: unknown address kind %d", ErrInvalidAddress, raw[0])
	}

	var a Address
	copy(a.raw[:], raw)

	return a, nil
}

// Parse decodes a bech32m textual address.
func Parse(text string) (Address, error) {
	hrp, data, version, err := bech32.DecodeGeneric(text)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	if hrp != HRP {
		return Address{}, fmt.Errorf("%w: unexpected prefix %q", ErrInvalidAddress, hrp)
	}

	if version != bech32.VersionM {
		return Address{}, fmt.Errorf("%w: not a bech32m string", ErrInvalidAddress)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	return FromRaw(raw)
}

// MustParse is like [Parse] but panics on malformed input. It is intended
// for well-known addresses in static initializers.
func MustParse(text string) Address {
	a, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return a
}

// Kind reports the address class.
func (a Address) Kind() Kind {
	return Kind(a.raw[0])
}

// Hash returns the 20-byte payload of the address.
func (a Address) Hash() [HashLength]byte {
	var hash [HashLength]byte
	copy(hash[:], a.raw[1:])

	return hash
}

// Raw returns a copy of the raw form.
func (a Address) Raw() []byte {
	raw := make([]byte, RawLength)
	copy(raw, a.raw[:])

	return raw
}

// IsZero reports whether a is the zero value, which is not a meaningful
// account address.
func (a Address) IsZero() bool {
	return a.raw == [RawLength]byte{}
}

// Equal reports whether two addresses identify the same account.
func (a Address) Equal(b Address) bool {
	return a.raw == b.raw
}

// String implements fmt.Stringer. The output round-trips through [Parse].
func (a Address) String() string {
	text, err := a.MarshalText()
	if err != nil {
		// Unreachable with a fixed-size raw form: bech32m encoding of
		// 21 bytes stays far below the 90 character limit.
		panic(err)
	}

	return string(text)
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	data, err := bech32.ConvertBits(a.raw[:], 8, 5, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	text, err := bech32.EncodeM(HRP, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
