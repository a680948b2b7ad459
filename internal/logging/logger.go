// Package logging configures the process-wide standard logger: stderr
// always, plus an append-only log file when one is configured.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	debug   bool
)

// Setup points the standard logger at stderr and, if path is not empty, an
// append-only file. Loggers created afterwards with New share that output.
func Setup(path string, debugEnabled bool) error {
	mu.Lock()
	defer mu.Unlock()

	debug = debugEnabled
	flags := log.LstdFlags
	if debugEnabled {
		flags |= log.Lmicroseconds | log.Lshortfile
	}
	log.SetFlags(flags)

	if path == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f

	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	return nil
}

// New returns a logger writing wherever the standard logger does. The prefix
// is placed right before the message.
func New(prefix string) *log.Logger {
	return log.New(log.Writer(), prefix, log.Flags()|log.Lmsgprefix)
}

// Debugf logs only when debug output was enabled in Setup
func Debugf(format string, args ...any) {
	mu.Lock()
	enabled := debug
	mu.Unlock()
	if enabled {
		log.Output(2, fmt.Sprintf("[debug] "+format, args...))
	}
}

// Close flushes and closes the log file, if any
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	log.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}
	f := logFile
	logFile = nil
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
