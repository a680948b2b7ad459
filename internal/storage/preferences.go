package storage

import "fyne.io/fyne/v2"

// PreferencesKV stores values in the Fyne app preferences
type PreferencesKV struct {
	prefs fyne.Preferences
}

// NewPreferencesKV wraps the preferences of app
func NewPreferencesKV(app fyne.App) *PreferencesKV {
	return &PreferencesKV{prefs: app.Preferences()}
}

// Get returns the stored string as bytes. Fyne cannot distinguish an empty
// value from a missing key, so both report ok=false.
func (p *PreferencesKV) Get(key string) ([]byte, bool, error) {
	value := p.prefs.String(key)
	if value == "" {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Set stores value as a string preference
func (p *PreferencesKV) Set(key string, value []byte) error {
	p.prefs.SetString(key, string(value))
	return nil
}
