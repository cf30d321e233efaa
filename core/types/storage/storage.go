package storage

import (
	"fmt"
	"strconv"
)

// BlockHeight numbers committed blocks, starting at 1. Zero means "latest"
// in query requests.
type BlockHeight uint64

func (h BlockHeight) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (h BlockHeight) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be a
// plain base-10 unsigned integer.
func (h *BlockHeight) UnmarshalText(text []byte) error {
	v, err := parseUint64("block height", text)
	if err != nil {
		return err
	}

	*h = BlockHeight(v)

	return nil
}

// Epoch counts consensus epochs, each spanning a fixed range of blocks.
type Epoch uint64

func (e Epoch) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (e Epoch) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be a
// plain base-10 unsigned integer.
func (e *Epoch) UnmarshalText(text []byte) error {
	v, err := parseUint64("epoch", text)
	if err != nil {
		return err
	}

	*e = Epoch(v)

	return nil
}

func parseUint64(what string, text []byte) (uint64, error) {
	v, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, text, err)
	}

	return v, nil
}
