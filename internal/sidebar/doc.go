package sidebar

// Package sidebar implements the sidebar state store: a closed set of actions,
// a pure reducer that applies them to model.State snapshots, and a Store that
// owns the current snapshot and pushes it through a Persister after every change.
