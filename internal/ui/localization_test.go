package ui

import "testing"

func TestLocalization(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeySearch); got != "Search" {
		t.Errorf("Expected Search, got %s", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeySearch); got != "Поиск" {
		t.Errorf("Expected Russian text, got %s", got)
	}

	// Missing translation falls back to English
	if got := l.GetText(KeyAppTitle); got != "Quickbar" {
		t.Errorf("Expected English fallback, got %s", got)
	}

	// Unknown key returns the key itself
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationCatalogsComplete(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		if key == KeyAppTitle {
			continue
		}
		for _, lang := range []string{"ru", "pt"} {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
