package storage

// Package storage persists the sidebar state as a single JSON blob in a
// key-value store. Backends: Fyne preferences, a directory of JSON files
// (with change watching), SQLite, and an in-memory map for tests.
