package platform

// Package platform contains OS integration glue: opening items with the
// system handler, revealing paths in the file manager, deriving items from
// picked paths, and per-user directories.
