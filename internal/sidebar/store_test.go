package sidebar

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/ytget/quickbar/internal/model"
)

// fakePersister records saves and returns a canned load result
type fakePersister struct {
	loaded  *model.State
	loadErr error
	saveErr error
	saved   []*model.State
}

func (p *fakePersister) Load() (*model.State, error) {
	return p.loaded, p.loadErr
}

func (p *fakePersister) Save(state *model.State) error {
	p.saved = append(p.saved, state)
	return p.saveErr
}

func quietLogger(buf *bytes.Buffer) *log.Logger {
	return log.New(buf, "", 0)
}

func TestNewStore_DefaultsWhenNothingStored(t *testing.T) {
	store := NewStore(&fakePersister{})

	state := store.State()
	if len(state.Groups) != 2 || state.Groups[0].ID != model.DefaultGroupID {
		t.Errorf("Expected default seed groups, got %v", groupIDs(state))
	}
}

func TestNewStore_UsesLoadedState(t *testing.T) {
	loaded := model.DefaultState()
	loaded.Theme = model.ThemeLight
	store := NewStore(&fakePersister{loaded: loaded})

	if store.State().Theme != model.ThemeLight {
		t.Errorf("Expected loaded theme light, got %s", store.State().Theme)
	}
}

func TestNewStore_LoadErrorFallsBackToDefaults(t *testing.T) {
	var buf bytes.Buffer
	store := NewStore(&fakePersister{loadErr: errors.New("corrupt")}, WithLogger(quietLogger(&buf)))

	if store.State().Theme != model.ThemeDark {
		t.Error("Expected defaults after a failed load")
	}
	if !strings.Contains(buf.String(), "corrupt") {
		t.Errorf("Expected load error to be logged, got %q", buf.String())
	}
}

func TestStore_DispatchSavesOnChange(t *testing.T) {
	persister := &fakePersister{}
	store := NewStore(persister, WithIDGenerator(sequentialIDs()))

	if !store.Dispatch(AddGroup{Name: "Work"}) {
		t.Fatal("Expected ADD_GROUP to change state")
	}
	if len(persister.saved) != 1 {
		t.Fatalf("Expected 1 save, got %d", len(persister.saved))
	}
	if persister.saved[0] != store.State() {
		t.Error("Expected the saved snapshot to be the current state")
	}

	if store.Dispatch(RemoveGroup{GroupID: "missing"}) {
		t.Error("Expected no-op for a missing group")
	}
	if len(persister.saved) != 1 {
		t.Errorf("No-op dispatch must not save, got %d saves", len(persister.saved))
	}
}

func TestStore_SaveErrorKeepsState(t *testing.T) {
	var buf bytes.Buffer
	persister := &fakePersister{saveErr: errors.New("disk full")}
	store := NewStore(persister, WithLogger(quietLogger(&buf)))

	store.Dispatch(SetTheme{Theme: model.ThemeLight})

	if store.State().Theme != model.ThemeLight {
		t.Error("A failed save must not roll back the in-memory state")
	}
	if !strings.Contains(buf.String(), "disk full") || !strings.Contains(buf.String(), KindSetTheme) {
		t.Errorf("Expected save failure to be logged with the action kind, got %q", buf.String())
	}
}

func TestStore_Subscribe(t *testing.T) {
	store := NewStore(nil)

	var updates []*model.State
	store.Subscribe(func(state *model.State) {
		updates = append(updates, state)
	})

	store.Dispatch(ToggleSearch{})
	store.Dispatch(SetSearchQuery{Query: "code"})
	store.Dispatch(SetSearchQuery{Query: "code"})

	if len(updates) != 2 {
		t.Fatalf("Expected 2 updates, got %d", len(updates))
	}
	if updates[1].SearchQuery != "code" {
		t.Errorf("Expected last update to carry the query, got %q", updates[1].SearchQuery)
	}
}

func TestStore_Reload(t *testing.T) {
	persister := &fakePersister{}
	store := NewStore(persister)

	external := model.DefaultState()
	external.Position = model.PositionRight
	persister.loaded = external

	notified := false
	store.Subscribe(func(*model.State) { notified = true })
	store.Reload()

	if store.State().Position != model.PositionRight {
		t.Error("Expected reload to pick up the external state")
	}
	if !notified {
		t.Error("Expected subscribers to be notified on reload")
	}

	// A failing reload keeps the current state
	var buf bytes.Buffer
	store.logger = quietLogger(&buf)
	persister.loadErr = errors.New("broken")
	store.Reload()
	if store.State().Position != model.PositionRight {
		t.Error("Failed reload must keep the current state")
	}
}

func TestStore_WithInitialState(t *testing.T) {
	initial := model.DefaultState()
	initial.Groups = initial.Groups[:1]
	persister := &fakePersister{loaded: model.DefaultState()}

	store := NewStore(persister, WithInitialState(initial))
	if len(store.State().Groups) != 1 {
		t.Errorf("Expected initial state to be used, got %d groups", len(store.State().Groups))
	}
}

// blockingPersister holds Load until release is closed
type blockingPersister struct {
	fakePersister
	loading chan struct{}
	release chan struct{}
}

func (p *blockingPersister) Load() (*model.State, error) {
	if p.loading != nil {
		close(p.loading)
		<-p.release
	}
	return p.fakePersister.Load()
}

func TestStore_ReloadDoesNotLoseConcurrentDispatch(t *testing.T) {
	persister := &blockingPersister{}
	store := NewStore(persister)

	external := model.DefaultState()
	external.Position = model.PositionRight
	persister.loaded = external
	persister.loading = make(chan struct{})
	persister.release = make(chan struct{})

	reloaded := make(chan struct{})
	go func() {
		store.Reload()
		close(reloaded)
	}()
	<-persister.loading

	dispatched := make(chan bool)
	go func() {
		dispatched <- store.Dispatch(SetTheme{Theme: model.ThemeLight})
	}()

	select {
	case <-dispatched:
		t.Fatal("Dispatch must wait for the reload in progress")
	case <-time.After(50 * time.Millisecond):
	}

	close(persister.release)
	<-reloaded
	if !<-dispatched {
		t.Fatal("Expected the dispatch to change the reloaded state")
	}

	state := store.State()
	if state.Position != model.PositionRight || state.Theme != model.ThemeLight {
		t.Errorf("Expected reloaded position and dispatched theme, got %s/%s", state.Position, state.Theme)
	}
}

func TestStore_NestedDispatchDeliversLatestLast(t *testing.T) {
	unpinned := model.DefaultState()
	unpinned.IsFixed = false
	store := NewStore(nil, WithInitialState(unpinned))

	store.Subscribe(func(state *model.State) {
		if !state.IsFixed {
			store.Dispatch(SetFixed{Fixed: true})
		}
	})
	var seen []*model.State
	store.Subscribe(func(state *model.State) {
		seen = append(seen, state)
	})

	store.Dispatch(SetTheme{Theme: model.ThemeLight})

	if len(seen) == 0 {
		t.Fatal("Expected updates")
	}
	last := seen[len(seen)-1]
	if last != store.State() {
		t.Error("Last delivered snapshot must be the current one")
	}
	if !last.IsFixed || last.Theme != model.ThemeLight {
		t.Errorf("Expected both changes in the last update, got fixed=%v theme=%s", last.IsFixed, last.Theme)
	}
	for i := 1; i < len(seen); i++ {
		if seen[i-1].IsFixed && !seen[i].IsFixed {
			t.Error("Subscriber saw an older snapshot after a newer one")
		}
	}
}
