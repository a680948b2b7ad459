package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyWindowWidth   = "window_width"
	KeyWindowHeight  = "window_height"
	KeyLastPickedDir = "last_picked_directory"
	KeyLanguage      = "language"
)

// Default values
const (
	DefaultWindowWidth  = 300
	DefaultWindowHeight = 800

	MinWindowWidth  = 200
	MaxWindowWidth  = 800
	MinWindowHeight = 300
	MaxWindowHeight = 2400

	DefaultLanguage = "system"
)

// Settings manages shell preferences that live outside the sidebar state
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWindowSize returns the configured sidebar window size
func (s *Settings) GetWindowSize() fyne.Size {
	width := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return fyne.NewSize(float32(clamp(width, MinWindowWidth, MaxWindowWidth)), float32(clamp(height, MinWindowHeight, MaxWindowHeight)))
}

// SetWindowSize stores the window size, clamped to sane bounds
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clamp(width, MinWindowWidth, MaxWindowWidth))
	s.app.Preferences().SetInt(KeyWindowHeight, clamp(height, MinWindowHeight, MaxWindowHeight))
}

// GetLastPickedDirectory returns the directory the file picker last opened in
func (s *Settings) GetLastPickedDirectory() string {
	return s.app.Preferences().String(KeyLastPickedDir)
}

// SetLastPickedDirectory remembers the directory of the last picked file
func (s *Settings) SetLastPickedDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastPickedDir, dir)
}

// GetLanguage returns the interface language code, or "system"
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the interface language code
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
