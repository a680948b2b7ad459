package storage

import (
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
)

// Backend names a KV implementation
type Backend string

const (
	BackendPreferences Backend = "preferences"
	BackendFile        Backend = "file"
	BackendSQLite      Backend = "sqlite"
	BackendMemory      Backend = "memory"
)

// ErrUnknownBackend is returned for unsupported backend names
var ErrUnknownBackend = errors.New("unknown storage backend")

// IsValid returns true for supported backends
func (b Backend) IsValid() bool {
	switch b {
	case BackendPreferences, BackendFile, BackendSQLite, BackendMemory:
		return true
	}
	return false
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open creates the KV for backend. path is a directory for the file
// backend and a database file for sqlite; app is only used by the
// preferences backend. The returned closer must be closed on exit.
func Open(backend Backend, path string, app fyne.App) (KV, io.Closer, error) {
	switch backend {
	case BackendPreferences:
		if app == nil {
			return nil, nil, fmt.Errorf("preferences backend requires a Fyne app")
		}
		return NewPreferencesKV(app), nopCloser{}, nil
	case BackendFile:
		kv, err := NewFileKV(path)
		if err != nil {
			return nil, nil, err
		}
		return kv, nopCloser{}, nil
	case BackendSQLite:
		kv, err := OpenSQLiteKV(path)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv, nil
	case BackendMemory:
		return NewMemoryKV(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
