package ui

// Package ui contains the Fyne-based sidebar. It renders the store's
// snapshot as collapsible groups of launch buttons and turns user
// interactions into dispatched actions. All UI strings are localized via
// Localization.
