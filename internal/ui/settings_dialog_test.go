package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/quickbar/internal/config"
	"github.com/ytget/quickbar/internal/model"
)

func TestOptionsFormUnchanged(t *testing.T) {
	app := test.NewApp()
	form := NewOptionsForm(model.DefaultState(), config.NewSettings(app))

	opts, lang := form.Collect()
	if !opts.IsEmpty() {
		t.Errorf("Expected no changed options, got %+v", opts)
	}
	if lang != config.DefaultLanguage {
		t.Errorf("Expected language %q, got %q", config.DefaultLanguage, lang)
	}
}

func TestOptionsFormCollectsChanges(t *testing.T) {
	app := test.NewApp()
	state := model.DefaultState()
	form := NewOptionsForm(state, config.NewSettings(app))

	form.themeSelect.SetSelected(string(model.ThemeLight))
	form.sortSelect.SetSelected(string(model.SortName))
	form.defaultGroupSelect.SetSelected("Documents")
	form.transparencySlider.SetValue(50)
	form.confirmCheck.SetChecked(false)
	form.fontSizeEntry.SetText("40")
	form.autoHideDelayEntry.SetText("not a number")
	form.languageSelect.SetSelected("pt")

	opts, lang := form.Collect()

	if opts.Theme == nil || *opts.Theme != model.ThemeLight {
		t.Errorf("Expected theme light, got %v", opts.Theme)
	}
	if opts.SortBy == nil || *opts.SortBy != model.SortName {
		t.Errorf("Expected sort by name, got %v", opts.SortBy)
	}
	if opts.DefaultGroup == nil || *opts.DefaultGroup != model.DocumentsGroupID {
		t.Errorf("Expected default group documents, got %v", opts.DefaultGroup)
	}
	if opts.Transparency == nil || *opts.Transparency != 50 {
		t.Errorf("Expected transparency 50, got %v", opts.Transparency)
	}
	if opts.ConfirmDeletion == nil || *opts.ConfirmDeletion {
		t.Errorf("Expected confirm deletion off, got %v", opts.ConfirmDeletion)
	}
	if opts.Font == nil || opts.Font.Size != MaxFontSize || opts.Font.Family != state.Font.Family {
		t.Errorf("Expected clamped font size, got %+v", opts.Font)
	}
	if opts.AutoHideDelay != nil {
		t.Errorf("Invalid delay should be ignored, got %v", *opts.AutoHideDelay)
	}
	if opts.Position != nil || opts.RunAtStartup != nil || opts.CheckUpdates != nil {
		t.Error("Untouched fields should stay unset")
	}
	if lang != "pt" {
		t.Errorf("Expected language pt, got %q", lang)
	}

	// Applying the options moves the state in the expected direction
	next := state.Clone()
	opts.Merge(next)
	if next.Theme != model.ThemeLight || next.Transparency != 50 || next.ConfirmDeletion {
		t.Errorf("Unexpected merged state: %+v", next)
	}
}
