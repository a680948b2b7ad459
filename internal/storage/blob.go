package storage

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/ytget/quickbar/internal/model"
)

// StateKey is the single key the sidebar state is stored under
const StateKey = "sidebarState"

// ErrCorruptState is returned when a stored blob cannot be decoded
var ErrCorruptState = errors.New("stored sidebar state is corrupt")

// BlobPersister stores the whole state as one JSON document in a KV.
// It implements sidebar.Persister.
type BlobPersister struct {
	kv  KV
	key string
}

// NewBlobPersister creates a persister over kv using StateKey
func NewBlobPersister(kv KV) *BlobPersister {
	return &BlobPersister{kv: kv, key: StateKey}
}

// Load reads and decodes the stored state. It returns (nil, nil) when
// nothing is stored.
func (p *BlobPersister) Load() (*model.State, error) {
	data, ok, err := p.kv.Get(p.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.key, err)
	}
	if !ok || len(data) == 0 {
		return nil, nil
	}
	return DecodeState(data)
}

// Save encodes and writes the state
func (p *BlobPersister) Save(state *model.State) error {
	data, err := EncodeState(state)
	if err != nil {
		return err
	}
	if err := p.kv.Set(p.key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.key, err)
	}
	return nil
}

// EncodeState serializes the state to JSON. Invalid UTF-8 in strings is
// replaced by U+FFFD, so callers must reject such text before it reaches
// the state.
func EncodeState(state *model.State) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sidebar state: %w", err)
	}
	return data, nil
}

// DecodeState parses a stored blob over the built-in defaults: fields the
// blob does not mention keep their default values.
func DecodeState(data []byte) (*model.State, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	state := model.DefaultState()
	// Nested collections are replaced, not merged element-wise
	if _, ok := fields["groups"]; ok {
		state.Groups = nil
	}
	if _, ok := fields["activeGroupId"]; ok {
		state.ActiveGroupID = nil
	}

	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return state, nil
}
