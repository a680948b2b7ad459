// Package bootstrap wires configuration, logging, storage and the sidebar
// store for the desktop app and the command line tool.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/quickbar/internal/config"
	"github.com/ytget/quickbar/internal/logging"
	"github.com/ytget/quickbar/internal/sidebar"
	"github.com/ytget/quickbar/internal/storage"
)

// Runtime is an opened store together with the resources behind it
type Runtime struct {
	Config *config.Config
	KV     storage.KV
	Store  *sidebar.Store

	closer io.Closer
}

// Options tune Open
type Options struct {
	// Dir is the config directory; empty means the per-user default
	Dir string
	// Backend overrides the configured storage backend when set
	Backend storage.Backend
	// App backs the preferences storage backend
	App fyne.App
	// StoreOptions are passed through to sidebar.NewStore
	StoreOptions []sidebar.Option
}

// Open loads the configuration, sets up logging and opens the store
func Open(opts Options) (*Runtime, error) {
	dir := opts.Dir
	if dir == "" {
		d, err := config.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if opts.Backend != "" {
		if !opts.Backend.IsValid() {
			return nil, fmt.Errorf("%w: %q", storage.ErrUnknownBackend, opts.Backend)
		}
		cfg.Storage.Backend = opts.Backend
	}

	if err := logging.Setup(cfg.LogPath(), cfg.Log.Debug); err != nil {
		return nil, err
	}

	kv, closer, err := storage.Open(cfg.Storage.Backend, cfg.StoragePath(), opts.App)
	if err != nil {
		_ = logging.Close()
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	logging.Debugf("opened %s storage at %q", cfg.Storage.Backend, cfg.StoragePath())

	storeOpts := append([]sidebar.Option{sidebar.WithLogger(logging.New("[sidebar] "))}, opts.StoreOptions...)
	store := sidebar.NewStore(storage.NewBlobPersister(kv), storeOpts...)

	return &Runtime{
		Config: cfg,
		KV:     kv,
		Store:  store,
		closer: closer,
	}, nil
}

// Watch reloads the store whenever the state file is changed by another
// process. It returns immediately unless the file backend is used with
// watching enabled; otherwise it blocks until ctx is cancelled.
func (r *Runtime) Watch(ctx context.Context) error {
	fileKV, ok := r.KV.(*storage.FileKV)
	if !ok || !r.Config.Storage.Watch {
		return nil
	}
	return fileKV.Watch(ctx, storage.StateKey, func() {
		log.Printf("state changed on disk, reloading")
		r.Store.Reload()
	})
}

// Close releases the storage backend and the log file
func (r *Runtime) Close() error {
	var errs []error
	if r.closer != nil {
		errs = append(errs, r.closer.Close())
	}
	errs = append(errs, logging.Close())
	return errors.Join(errs...)
}
