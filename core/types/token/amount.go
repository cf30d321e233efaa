package token

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// AmountByteLength is the size of the wire form of an [Amount].
const AmountByteLength = 8

// Amount is a token balance in raw units. The textual form is the plain
// base-10 unit count; JSON quotes it so that consumers without 64-bit
// integers keep full precision.
type Amount uint64

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be a
// plain base-10 unsigned integer.
func (a *Amount) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", text, err)
	}

	*a = Amount(v)

	return nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Both the quoted
// and the bare number form are accepted.
func (a *Amount) UnmarshalJSON(text []byte) error {
	text = unquoteIfQuoted(text)
	if string(text) == "null" {
		return nil
	}

	return a.UnmarshalText(text)
}

func unquoteIfQuoted(text []byte) []byte {
	if len(text) > 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}

	return text
}

// EncodeToBytes returns the fixed-size little-endian wire form.
func (a Amount) EncodeToBytes() ([]byte, error) {
	data := make([]byte, AmountByteLength)
	binary.LittleEndian.PutUint64(data, uint64(a))

	return data, nil
}

// DecodeFromBytes restores an amount from its wire form.
func (a *Amount) DecodeFromBytes(data []byte) error {
	if len(data) != AmountByteLength {
		return fmt.Errorf("invalid amount encoding: want %d bytes, got %d", AmountByteLength, len(data))
	}

	*a = Amount(binary.LittleEndian.Uint64(data))

	return nil
}
