package mock

import (
	"fmt"
	"sort"
	"sync"

	"github.com/nbardi/namada/core/queries"
	"github.com/nbardi/namada/core/types/address"
	"github.com/nbardi/namada/core/types/storage"
)

const (
	proofTypeExistence = "mock/existence"
	proofTypeAbsence   = "mock/absence"
)

// Storage is an in-memory ledger state for tests. Writes go into the
// working state; Commit seals it as the next block height so that
// historic reads can be replayed against earlier snapshots.
type Storage struct {
	mu      sync.RWMutex
	height  storage.BlockHeight
	epoch   storage.Epoch
	native  address.Address
	latest  map[string][]byte
	history map[storage.BlockHeight]map[string][]byte
}

var _ queries.StateReader = (*Storage)(nil)

// NewStorage returns an empty state at genesis height zero.
func NewStorage() *Storage {
	return &Storage{
		latest:  make(map[string][]byte),
		history: make(map[storage.BlockHeight]map[string][]byte),
	}
}

// Set writes value at key into the working state.
func (s *Storage) Set(key storage.Key, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest[key.String()] = append([]byte(nil), value...)
}

// Delete removes key from the working state.
func (s *Storage) Delete(key storage.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.latest, key.String())
}

// Commit seals the working state as the next block height.
func (s *Storage) Commit() storage.BlockHeight {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string][]byte, len(s.latest))
	for k, v := range s.latest {
		snapshot[k] = v
	}

	s.height++
	s.history[s.height] = snapshot

	return s.height
}

// SetEpoch sets the epoch reported by the state.
func (s *Storage) SetEpoch(epoch storage.Epoch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch = epoch
}

// SetNativeToken sets the native token address reported by the state.
func (s *Storage) SetNativeToken(native address.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.native = native
}

func (s *Storage) Height() storage.BlockHeight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.height
}

func (s *Storage) Epoch() storage.Epoch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.epoch
}

func (s *Storage) NativeToken() address.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.native
}

func (s *Storage) Read(key storage.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return read(s.latest, key), nil
}

func (s *Storage) ReadAtHeight(key storage.Key, height storage.BlockHeight) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if height == 0 {
		return read(s.latest, key), nil
	}

	snapshot, ok := s.history[height]
	if !ok {
		return nil, fmt.Errorf("no state committed at height %s", height)
	}

	return read(snapshot, key), nil
}

func (s *Storage) Has(key storage.Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.latest[key.String()]

	return ok, nil
}

func (s *Storage) IterPrefix(prefix storage.Key) ([]queries.PrefixValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var values []queries.PrefixValue
	for k, v := range s.latest {
		key := storage.MustParseKey(k)
		if !key.HasPrefix(prefix) {
			continue
		}

		values = append(values, queries.PrefixValue{
			Key:   key,
			Value: append([]byte(nil), v...),
		})
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i].Key.String() < values[j].Key.String()
	})

	return values, nil
}

func (s *Storage) Proof(key storage.Key, value []byte, height storage.BlockHeight) (*queries.ProofOps, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if height > s.height {
		return nil, fmt.Errorf("no state committed at height %s", height)
	}

	opType := proofTypeExistence
	if value == nil {
		opType = proofTypeAbsence
	}

	return &queries.ProofOps{Ops: []queries.ProofOp{{
		Type: opType,
		Key:  []byte(key.String()),
		Data: append([]byte(nil), value...),
	}}}, nil
}

func read(state map[string][]byte, key storage.Key) []byte {
	v, ok := state[key.String()]
	if !ok {
		return nil
	}

	return append([]byte(nil), v...)
}
