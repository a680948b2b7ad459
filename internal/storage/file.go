package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// File store constants
const (
	FileExtension       = ".json"
	DefaultDirPerm      = 0o755
	DefaultFilePerm     = 0o644
	WatchSettleInterval = 100 * time.Millisecond
)

// FileKV keeps one file per key inside a directory
type FileKV struct {
	dir string

	mu sync.Mutex
	// lastWrite holds the content of our own last write per key, so the
	// watcher can tell it apart from edits made by other processes
	lastWrite map[string][]byte
}

// NewFileKV creates the directory if needed
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, DefaultDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FileKV{dir: dir, lastWrite: make(map[string][]byte)}, nil
}

// Path returns the file used for key
func (f *FileKV) Path(key string) string {
	return filepath.Join(f.dir, key+FileExtension)
}

// Get reads the file for key
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set writes value atomically through a temp file and rename
func (f *FileKV) Set(key string, value []byte) error {
	path := f.Path(key)
	tmp, err := os.CreateTemp(f.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, DefaultFilePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	f.mu.Lock()
	f.lastWrite[key] = bytes.Clone(value)
	f.mu.Unlock()

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Watch calls onChange whenever the file for key is written by another
// process. Events whose file content equals our own last write are
// skipped. It blocks until ctx is cancelled.
func (f *FileKV) Watch(ctx context.Context, key string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: atomic renames replace the file inode
	if err := watcher.Add(f.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", f.dir, err)
	}

	target := f.Path(key)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Let the writer finish before reading
			time.Sleep(WatchSettleInterval)
			if f.isOwnWrite(key) {
				continue
			}
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("storage watcher error: %v", err)
		}
	}
}

// isOwnWrite reports whether the file for key holds exactly what this
// process last wrote
func (f *FileKV) isOwnWrite(key string) bool {
	f.mu.Lock()
	written, ok := f.lastWrite[key]
	f.mu.Unlock()
	if !ok {
		return false
	}

	current, err := os.ReadFile(f.Path(key))
	if err != nil {
		return false
	}
	return bytes.Equal(current, written)
}
