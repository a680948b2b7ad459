package sidebar

import (
	"log"
	"sync"

	"github.com/ytget/quickbar/internal/model"
)

// Persister loads and saves the whole sidebar state. Load returns (nil, nil)
// when nothing has been stored yet.
type Persister interface {
	Load() (*model.State, error)
	Save(state *model.State) error
}

// Store owns the current sidebar snapshot. Every dispatched action replaces
// the snapshot and, when it changed, saves it through the Persister.
type Store struct {
	mu        sync.Mutex
	state     *model.State
	persister Persister
	newID     IDGenerator
	logger    *log.Logger

	listenersMu sync.RWMutex
	listeners   []func(*model.State)

	// notifyMu guards the delivery loop; see notify
	notifyMu   sync.Mutex
	delivering bool
	pending    bool
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator overrides UUID generation, mostly for tests
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithLogger sets the logger used for persistence failures
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithInitialState skips loading and starts from the given state
func WithInitialState(state *model.State) Option {
	return func(s *Store) {
		s.state = state.Clone()
	}
}

// NewStore creates a store and loads the persisted state. Load failures are
// logged and the built-in defaults are used instead.
func NewStore(persister Persister, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		newID:     NewID,
		logger:    log.New(log.Writer(), "[sidebar] ", log.Flags()|log.Lmsgprefix),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.state == nil {
		s.state = s.load()
	}
	return s
}

// State returns the current snapshot. It must not be modified.
func (s *Store) State() *model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a callback invoked with the latest snapshot after a
// change. Callbacks are never run concurrently and never see an older
// snapshot after a newer one. Changes made while callbacks are running,
// including by the callbacks themselves, are delivered once they return.
func (s *Store) Subscribe(fn func(*model.State)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Dispatch applies action and reports whether the state changed. Save
// failures are logged; the in-memory state is kept either way.
func (s *Store) Dispatch(action Action) bool {
	s.mu.Lock()
	next, changed := Reduce(s.state, action, s.newID)
	if !changed {
		s.mu.Unlock()
		return false
	}
	s.state = next
	s.save(next, action.Kind())
	s.mu.Unlock()

	s.notify()
	return true
}

// Reload re-reads persisted state, replacing the current snapshot. Used when
// the backing store was changed from outside the process. Dispatches wait
// until the reloaded state is in place.
func (s *Store) Reload() {
	if s.persister == nil {
		return
	}

	s.mu.Lock()
	loaded, err := s.persister.Load()
	if err != nil {
		s.mu.Unlock()
		s.logger.Printf("reload failed, keeping current state: %v", err)
		return
	}
	if loaded == nil {
		s.mu.Unlock()
		return
	}
	s.state = loaded
	s.mu.Unlock()

	s.notify()
}

func (s *Store) load() *model.State {
	if s.persister == nil {
		return model.DefaultState()
	}
	loaded, err := s.persister.Load()
	if err != nil {
		s.logger.Printf("failed to load saved sidebar state, using defaults: %v", err)
		return model.DefaultState()
	}
	if loaded == nil {
		return model.DefaultState()
	}
	return loaded
}

func (s *Store) save(state *model.State, kind string) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(state); err != nil {
		s.logger.Printf("failed to save sidebar state after %s: %v", kind, err)
	}
}

// notify delivers the current snapshot to every listener. Only one
// goroutine delivers at a time; a notify that arrives during delivery marks
// the state pending and the delivering goroutine runs another round.
func (s *Store) notify() {
	s.notifyMu.Lock()
	s.pending = true
	if s.delivering {
		s.notifyMu.Unlock()
		return
	}
	s.delivering = true

	for s.pending {
		s.pending = false
		s.notifyMu.Unlock()

		state := s.State()
		s.listenersMu.RLock()
		listeners := make([]func(*model.State), len(s.listeners))
		copy(listeners, s.listeners)
		s.listenersMu.RUnlock()

		for _, fn := range listeners {
			fn(state)
		}

		s.notifyMu.Lock()
	}

	s.delivering = false
	s.notifyMu.Unlock()
}
