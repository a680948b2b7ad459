package model

// Package model defines the sidebar's domain data: launchable items, the
// groups that own them, user preferences, and the enums that describe them.
// Structures mirror the persisted JSON layout field for field.
