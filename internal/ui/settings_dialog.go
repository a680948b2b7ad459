package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quickbar/internal/config"
	"github.com/ytget/quickbar/internal/model"
)

// OptionsForm holds the widgets of the settings dialog
type OptionsForm struct {
	state *model.State

	positionSelect     *widget.Select
	themeSelect        *widget.Select
	sortSelect         *widget.Select
	defaultGroupSelect *widget.Select
	languageSelect     *widget.Select
	autoHideDelayEntry *widget.Entry
	fontSizeEntry      *widget.Entry
	transparencySlider *widget.Slider
	autoHideCheck      *widget.Check
	confirmCheck       *widget.Check
	startupCheck       *widget.Check
	updatesCheck       *widget.Check

	groupIDs map[string]string // group name -> id
}

// NewOptionsForm creates the form widgets filled with the values of state
func NewOptionsForm(state *model.State, settings *config.Settings) *OptionsForm {
	f := &OptionsForm{state: state, groupIDs: make(map[string]string)}

	f.positionSelect = widget.NewSelect([]string{string(model.PositionLeft), string(model.PositionRight)}, nil)
	f.positionSelect.SetSelected(string(state.Position))

	f.themeSelect = widget.NewSelect([]string{string(model.ThemeLight), string(model.ThemeDark)}, nil)
	f.themeSelect.SetSelected(string(state.Theme))

	sortOptions := []string{}
	for _, mode := range model.SortModes() {
		sortOptions = append(sortOptions, string(mode))
	}
	f.sortSelect = widget.NewSelect(sortOptions, nil)
	f.sortSelect.SetSelected(string(state.SortBy))

	groupNames := []string{}
	selectedGroup := ""
	for _, g := range state.Groups {
		if _, dup := f.groupIDs[g.Name]; dup {
			continue
		}
		f.groupIDs[g.Name] = g.ID
		groupNames = append(groupNames, g.Name)
		if g.ID == state.DefaultGroup {
			selectedGroup = g.Name
		}
	}
	f.defaultGroupSelect = widget.NewSelect(groupNames, nil)
	if selectedGroup != "" {
		f.defaultGroupSelect.SetSelected(selectedGroup)
	}

	languageOptions := []string{}
	for code := range settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	f.languageSelect = widget.NewSelect(languageOptions, nil)
	f.languageSelect.SetSelected(settings.GetLanguage())

	f.autoHideDelayEntry = widget.NewEntry()
	f.autoHideDelayEntry.SetText(strconv.Itoa(state.AutoHideDelay))

	f.fontSizeEntry = widget.NewEntry()
	f.fontSizeEntry.SetPlaceHolder(strconv.Itoa(MinFontSize) + "-" + strconv.Itoa(MaxFontSize))
	f.fontSizeEntry.SetText(strconv.Itoa(state.Font.Size))

	f.transparencySlider = widget.NewSlider(TransparencyMin, TransparencyMax)
	f.transparencySlider.Step = TransparencyStep
	f.transparencySlider.SetValue(float64(state.Transparency))

	f.autoHideCheck = widget.NewCheck("", nil)
	f.autoHideCheck.SetChecked(state.AutoHideWhenInactive)
	f.confirmCheck = widget.NewCheck("", nil)
	f.confirmCheck.SetChecked(state.ConfirmDeletion)
	f.startupCheck = widget.NewCheck("", nil)
	f.startupCheck.SetChecked(state.RunAtStartup)
	f.updatesCheck = widget.NewCheck("", nil)
	f.updatesCheck.SetChecked(state.CheckUpdates)

	return f
}

// Content lays the form out with localized labels
func (f *OptionsForm) Content(l *Localization) fyne.CanvasObject {
	return widget.NewForm(
		widget.NewFormItem(l.GetText(KeyPosition), f.positionSelect),
		widget.NewFormItem(l.GetText(KeyTheme), f.themeSelect),
		widget.NewFormItem(l.GetText(KeySortBy), f.sortSelect),
		widget.NewFormItem(l.GetText(KeyDefaultGroup), f.defaultGroupSelect),
		widget.NewFormItem(l.GetText(KeyFontSize), f.fontSizeEntry),
		widget.NewFormItem(l.GetText(KeyTransparency), f.transparencySlider),
		widget.NewFormItem(l.GetText(KeyAutoHide), f.autoHideCheck),
		widget.NewFormItem(l.GetText(KeyAutoHideDelay), f.autoHideDelayEntry),
		widget.NewFormItem(l.GetText(KeyConfirmDeletion), f.confirmCheck),
		widget.NewFormItem(l.GetText(KeyRunAtStartup), f.startupCheck),
		widget.NewFormItem(l.GetText(KeyCheckUpdates), f.updatesCheck),
		widget.NewFormItem(l.GetText(KeyLanguage), f.languageSelect),
	)
}

// Collect returns the options that differ from the state the form was
// built from, plus the selected language. Invalid numbers are ignored.
func (f *OptionsForm) Collect() (model.Options, string) {
	var opts model.Options
	s := f.state

	if p := model.Position(f.positionSelect.Selected); p.IsValid() && p != s.Position {
		opts.Position = &p
	}
	if t := model.Theme(f.themeSelect.Selected); t.IsValid() && t != s.Theme {
		opts.Theme = &t
	}
	if m := model.SortMode(f.sortSelect.Selected); m.IsValid() && m != s.SortBy {
		opts.SortBy = &m
	}
	if id, ok := f.groupIDs[f.defaultGroupSelect.Selected]; ok && id != s.DefaultGroup {
		opts.DefaultGroup = &id
	}

	if delay, err := strconv.Atoi(strings.TrimSpace(f.autoHideDelayEntry.Text)); err == nil && delay >= 0 && delay != s.AutoHideDelay {
		opts.AutoHideDelay = &delay
	}
	if size, err := strconv.Atoi(strings.TrimSpace(f.fontSizeEntry.Text)); err == nil && size != s.Font.Size {
		font := s.Font
		font.Size = clampInt(size, MinFontSize, MaxFontSize)
		if font != s.Font {
			opts.Font = &font
		}
	}
	if tr := int(f.transparencySlider.Value); tr != s.Transparency {
		opts.Transparency = &tr
	}

	boolOpt := func(checked, current bool) *bool {
		if checked == current {
			return nil
		}
		v := checked
		return &v
	}
	opts.AutoHideWhenInactive = boolOpt(f.autoHideCheck.Checked, s.AutoHideWhenInactive)
	opts.ConfirmDeletion = boolOpt(f.confirmCheck.Checked, s.ConfirmDeletion)
	opts.RunAtStartup = boolOpt(f.startupCheck.Checked, s.RunAtStartup)
	opts.CheckUpdates = boolOpt(f.updatesCheck.Checked, s.CheckUpdates)

	return opts, f.languageSelect.Selected
}

// ShowOptionsDialog shows the preferences dialog. onSave receives only the
// changed options.
func ShowOptionsDialog(window fyne.Window, state *model.State, settings *config.Settings, l *Localization, onSave func(model.Options, string)) {
	form := NewOptionsForm(state, settings)

	d := dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form.Content(l)),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			opts, lang := form.Collect()
			onSave(opts, lang)
		},
		window,
	)

	d.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	d.Show()
}
