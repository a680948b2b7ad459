package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quickbar/internal/config"
	"github.com/ytget/quickbar/internal/logging"
	"github.com/ytget/quickbar/internal/model"
	"github.com/ytget/quickbar/internal/platform"
	"github.com/ytget/quickbar/internal/sidebar"
)

// Launcher opens items
type Launcher interface {
	Launch(item model.Item) error
}

// look is the part of the state already applied to the app and window
type look struct {
	theme        model.Theme
	fontSize     int
	transparency int
	visible      bool
}

// SidebarUI renders the store and turns user input into actions
type SidebarUI struct {
	window       fyne.Window
	app          fyne.App
	store        *sidebar.Store
	settings     *config.Settings
	launcher     Launcher
	localization *Localization
	logger       *log.Logger

	searchBtn   *widget.Button
	pinBtn      *widget.Button
	themeBtn    *widget.Button
	positionBtn *widget.Button
	searchEntry *widget.Entry
	groupEntry  *widget.Entry
	groupsBox   *fyne.Container
	emptyLabel  *widget.Label

	applied    *look
	trayMenu   *fyne.Menu
	hideTimer  *time.Timer
	hideTimerM sync.Mutex
}

// NewSidebarUI creates the sidebar, renders the current state and
// re-renders on every store change
func NewSidebarUI(window fyne.Window, app fyne.App, store *sidebar.Store, settings *config.Settings, launcher Launcher) *SidebarUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &SidebarUI{
		window:       window,
		app:          app,
		store:        store,
		settings:     settings,
		launcher:     launcher,
		localization: localization,
		logger:       logging.New("[ui] "),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	store.Subscribe(func(state *model.State) {
		fyne.Do(func() {
			ui.render(state)
		})
	})
	ui.render(store.State())

	return ui
}

// Refresh re-renders the current store snapshot
func (ui *SidebarUI) Refresh() {
	ui.render(ui.store.State())
}

// Localization returns the active text catalog
func (ui *SidebarUI) Localization() *Localization {
	return ui.localization
}

func (ui *SidebarUI) setupUI() {
	ui.searchBtn = widget.NewButtonWithIcon("", theme.SearchIcon(), func() {
		ui.store.Dispatch(sidebar.ToggleSearch{})
	})
	ui.searchBtn.Importance = widget.LowImportance

	ui.pinBtn = widget.NewButton(IconPin, func() {
		ui.store.Dispatch(sidebar.SetFixed{Fixed: !ui.store.State().IsFixed})
	})
	ui.themeBtn = widget.NewButton(IconMoon, ui.onToggleTheme)
	ui.positionBtn = widget.NewButton(IconLeft, ui.onTogglePosition)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	for _, b := range []*widget.Button{ui.pinBtn, ui.themeBtn, ui.positionBtn} {
		b.Importance = widget.LowImportance
	}

	toolbar := container.NewHBox(ui.searchBtn, ui.pinBtn, ui.themeBtn, ui.positionBtn, layout.NewSpacer(), settingsBtn)

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = func(query string) {
		ui.store.Dispatch(sidebar.SetSearchQuery{Query: query})
	}
	ui.searchEntry.Hide()

	top := container.NewVBox(toolbar, ui.searchEntry)

	ui.groupsBox = container.NewVBox()
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoMatches))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()

	ui.groupEntry = widget.NewEntry()
	ui.groupEntry.SetPlaceHolder(ui.localization.GetText(KeyGroupName))
	ui.groupEntry.OnSubmitted = func(string) { ui.onAddGroup() }

	addGroupBtn := widget.NewButtonWithIcon("", theme.ContentAddIcon(), ui.onAddGroup)
	addItemBtn := widget.NewButtonWithIcon("", theme.FileIcon(), nil)
	addItemBtn.OnTapped = func() {
		menu := fyne.NewMenu("",
			fyne.NewMenuItem(ui.localization.GetText(KeyAddFile), ui.onAddFile),
			fyne.NewMenuItem(ui.localization.GetText(KeyAddFolder), ui.onAddFolder),
			fyne.NewMenuItem(ui.localization.GetText(KeyAddWebsite), ui.onAddWebsite),
		)
		pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(addItemBtn)
		widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), pos)
	}

	bottom := container.NewBorder(nil, nil, addItemBtn, addGroupBtn, ui.groupEntry)

	content := container.NewBorder(
		top,
		bottom,
		nil,
		nil,
		container.NewVScroll(container.NewVBox(ui.emptyLabel, ui.groupsBox)),
	)

	ui.window.SetContent(content)
}

// render applies a state snapshot to the widgets
func (ui *SidebarUI) render(state *model.State) {
	ui.applyLook(state)

	if state.IsSearchOpen {
		if ui.searchEntry.Text != state.SearchQuery {
			ui.searchEntry.SetText(state.SearchQuery)
		}
		ui.searchEntry.Show()
		ui.searchBtn.Importance = widget.HighImportance
	} else {
		ui.searchEntry.Hide()
		ui.searchBtn.Importance = widget.LowImportance
	}
	ui.searchBtn.Refresh()

	if state.IsFixed {
		ui.pinBtn.Importance = widget.HighImportance
	} else {
		ui.pinBtn.Importance = widget.LowImportance
	}
	ui.pinBtn.Refresh()

	if state.Theme == model.ThemeDark {
		ui.themeBtn.SetText(IconMoon)
	} else {
		ui.themeBtn.SetText(IconSun)
	}
	if state.Position == model.PositionRight {
		ui.positionBtn.SetText(IconRight)
	} else {
		ui.positionBtn.SetText(IconLeft)
	}

	groups := sidebar.VisibleGroups(state)
	activeID := ""
	if state.ActiveGroupID != nil {
		activeID = *state.ActiveGroupID
	}

	sections := make([]fyne.CanvasObject, 0, len(groups))
	for _, g := range groups {
		sections = append(sections, ui.groupSection(state, g, g.ID == activeID))
	}
	ui.groupsBox.Objects = sections
	ui.groupsBox.Refresh()

	if len(groups) == 0 && state.IsSearchOpen {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}

	ui.updateTrayMenu(state)
}

// applyLook updates theme and window visibility when they changed
func (ui *SidebarUI) applyLook(state *model.State) {
	next := look{
		theme:        state.Theme,
		fontSize:     state.Font.Size,
		transparency: state.Transparency,
		visible:      state.IsVisible,
	}

	if ui.applied == nil || ui.applied.theme != next.theme ||
		ui.applied.fontSize != next.fontSize || ui.applied.transparency != next.transparency {
		ui.app.Settings().SetTheme(ThemeFor(state))
	}

	if ui.applied != nil && ui.applied.visible != next.visible {
		if next.visible {
			ui.window.Show()
		} else {
			ui.window.Hide()
		}
	}

	ui.applied = &next
}

// groupSection renders one group: a header that activates and expands it,
// a menu button and, when expanded, its items
func (ui *SidebarUI) groupSection(state *model.State, group model.Group, active bool) fyne.CanvasObject {
	icon := theme.MenuExpandIcon()
	if group.Expanded {
		icon = theme.MenuDropDownIcon()
	}

	groupID := group.ID
	header := widget.NewButtonWithIcon(fmt.Sprintf(GroupCountFormat, group.Name, len(group.Items)), icon, func() {
		ui.store.Dispatch(sidebar.SetActiveGroup{GroupID: groupID})
		ui.store.Dispatch(sidebar.ToggleGroupExpand{GroupID: groupID})
	})
	header.Alignment = widget.ButtonAlignLeading
	if active {
		header.Importance = widget.MediumImportance
	} else {
		header.Importance = widget.LowImportance
	}

	menuBtn := widget.NewButtonWithIcon("", theme.MoreVerticalIcon(), nil)
	menuBtn.Importance = widget.LowImportance
	menuBtn.OnTapped = func() {
		pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(menuBtn)
		widget.ShowPopUpMenuAtPosition(ui.groupMenu(groupID), ui.window.Canvas(), pos)
	}

	headerRow := container.NewBorder(nil, nil, nil, menuBtn, header)
	if !group.Expanded || len(group.Items) == 0 {
		return headerRow
	}

	buttons := make([]fyne.CanvasObject, 0, len(group.Items))
	for _, item := range group.Items {
		b := NewItemButton(item, group.DisplayMode, ui.onLaunch, func(it model.Item, pos fyne.Position) {
			widget.ShowPopUpMenuAtPosition(ui.itemMenu(groupID, it), ui.window.Canvas(), pos)
		})
		if state.Position == model.PositionRight {
			b.Alignment = widget.ButtonAlignTrailing
		}
		buttons = append(buttons, b)
	}

	var items fyne.CanvasObject
	switch {
	case group.Layout == model.LayoutHorizontal:
		scroll := container.NewHScroll(container.NewHBox(buttons...))
		scroll.SetMinSize(fyne.NewSize(0, HorizontalRowH))
		items = scroll
	case group.DisplayMode == model.DisplayIconOnly:
		items = container.NewGridWrap(fyne.NewSize(IconOnlyButtonSize, IconOnlyButtonSize), buttons...)
	default:
		items = container.NewVBox(buttons...)
	}

	return container.NewVBox(headerRow, items)
}

// groupMenu builds the per-group context menu
func (ui *SidebarUI) groupMenu(groupID string) *fyne.Menu {
	l := ui.localization
	return fyne.NewMenu("",
		fyne.NewMenuItem(l.GetText(KeyRename), func() { ui.onRenameGroup(groupID) }),
		fyne.NewMenuItem(l.GetText(KeyToggleNames), func() { ui.onToggleDisplay(groupID) }),
		fyne.NewMenuItem(l.GetText(KeyToggleLayout), func() { ui.onToggleLayout(groupID) }),
		fyne.NewMenuItem(l.GetText(KeyMoveUp), func() { ui.moveGroup(groupID, -1) }),
		fyne.NewMenuItem(l.GetText(KeyMoveDown), func() { ui.moveGroup(groupID, 1) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeyRemove), func() { ui.onRemoveGroup(groupID) }),
	)
}

// itemMenu builds the per-item context menu
func (ui *SidebarUI) itemMenu(groupID string, item model.Item) *fyne.Menu {
	l := ui.localization
	state := ui.store.State()

	moveTo := fyne.NewMenuItem(l.GetText(KeyMoveTo), nil)
	var targets []*fyne.MenuItem
	for _, g := range state.Groups {
		if g.ID == groupID {
			continue
		}
		toID := g.ID
		targets = append(targets, fyne.NewMenuItem(g.Name, func() {
			ui.store.Dispatch(sidebar.MoveItem{FromGroupID: groupID, ToGroupID: toID, ItemID: item.ID})
		}))
	}
	if len(targets) > 0 {
		moveTo.ChildMenu = fyne.NewMenu("", targets...)
	} else {
		moveTo.Disabled = true
	}

	items := []*fyne.MenuItem{
		fyne.NewMenuItem(l.GetText(KeyOpen), func() { ui.onLaunch(item) }),
	}
	if item.Type != model.ItemTypeWebsite {
		items = append(items, fyne.NewMenuItem(l.GetText(KeyReveal), func() { ui.onReveal(item) }))
	}
	items = append(items,
		moveTo,
		fyne.NewMenuItem(l.GetText(KeyMoveUp), func() { ui.moveItem(groupID, item.ID, -1) }),
		fyne.NewMenuItem(l.GetText(KeyMoveDown), func() { ui.moveItem(groupID, item.ID, 1) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeyRemove), func() { ui.onRemoveItem(groupID, item) }),
	)
	return fyne.NewMenu("", items...)
}

func (ui *SidebarUI) onLaunch(item model.Item) {
	if err := ui.launcher.Launch(item); err != nil {
		ui.logger.Printf("launch %s failed: %v", item.ID, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorLaunching), err), ui.window)
	}
}

func (ui *SidebarUI) onReveal(item model.Item) {
	if err := platform.Reveal(item.Path); err != nil {
		ui.logger.Printf("reveal %s failed: %v", item.Path, err)
		dialog.ShowError(err, ui.window)
	}
}

func (ui *SidebarUI) onToggleTheme() {
	next := model.ThemeDark
	if ui.store.State().Theme == model.ThemeDark {
		next = model.ThemeLight
	}
	ui.store.Dispatch(sidebar.SetTheme{Theme: next})
}

func (ui *SidebarUI) onTogglePosition() {
	next := model.PositionRight
	if ui.store.State().Position == model.PositionRight {
		next = model.PositionLeft
	}
	ui.store.Dispatch(sidebar.SetPosition{Position: next})
}

func (ui *SidebarUI) onAddGroup() {
	name := strings.TrimSpace(ui.groupEntry.Text)
	if !utf8.ValidString(name) {
		return
	}
	if name == "" {
		name = ui.localization.GetText(KeyNewGroup)
	}
	if ui.store.Dispatch(sidebar.AddGroup{Name: name}) {
		ui.groupEntry.SetText("")
	}
}

func (ui *SidebarUI) onRenameGroup(groupID string) {
	group, ok := ui.store.State().Group(groupID)
	if !ok {
		return
	}

	entry := widget.NewEntry()
	entry.SetText(group.Name)
	items := []*widget.FormItem{widget.NewFormItem(ui.localization.GetText(KeyName), entry)}

	dialog.ShowForm(ui.localization.GetText(KeyRename), ui.localization.GetText(KeySave), ui.localization.GetText(KeyCancel), items, func(ok bool) {
		if !ok {
			return
		}
		name := strings.TrimSpace(entry.Text)
		if utf8.ValidString(name) {
			ui.store.Dispatch(sidebar.RenameGroup{GroupID: groupID, Name: name})
		}
	}, ui.window)
}

func (ui *SidebarUI) onToggleDisplay(groupID string) {
	if group, ok := ui.store.State().Group(groupID); ok {
		ui.store.Dispatch(sidebar.UpdateGroupDisplay{GroupID: groupID, DisplayMode: group.DisplayMode.Toggle()})
	}
}

func (ui *SidebarUI) onToggleLayout(groupID string) {
	if group, ok := ui.store.State().Group(groupID); ok {
		ui.store.Dispatch(sidebar.UpdateGroupLayout{GroupID: groupID, Layout: group.Layout.Toggle()})
	}
}

// moveGroup shifts a group by delta positions in the stored order
func (ui *SidebarUI) moveGroup(groupID string, delta int) {
	state := ui.store.State()
	idx := state.GroupIndex(groupID)
	target := idx + delta
	if idx < 0 || target < 0 || target >= len(state.Groups) {
		return
	}

	ids := make([]string, len(state.Groups))
	for i, g := range state.Groups {
		ids[i] = g.ID
	}
	ids[idx], ids[target] = ids[target], ids[idx]
	ui.store.Dispatch(sidebar.ReorderGroups{GroupIDs: ids})
}

// moveItem shifts an item by delta positions within its group
func (ui *SidebarUI) moveItem(groupID, itemID string, delta int) {
	group, ok := ui.store.State().Group(groupID)
	if !ok {
		return
	}
	idx := group.ItemIndex(itemID)
	if idx < 0 || idx+delta < 0 || idx+delta >= len(group.Items) {
		return
	}
	ui.store.Dispatch(sidebar.MoveItemTo{FromGroupID: groupID, ToGroupID: groupID, ItemID: itemID, Index: idx + delta})
}

func (ui *SidebarUI) onRemoveGroup(groupID string) {
	group, ok := ui.store.State().Group(groupID)
	if !ok {
		return
	}
	ui.confirm(group.Name, func() {
		ui.store.Dispatch(sidebar.RemoveGroup{GroupID: groupID})
	})
}

func (ui *SidebarUI) onRemoveItem(groupID string, item model.Item) {
	ui.confirm(item.Name, func() {
		ui.store.Dispatch(sidebar.RemoveItem{GroupID: groupID, ItemID: item.ID})
	})
}

// confirm runs fn directly or after a confirmation dialog, depending on the
// confirm-deletion preference
func (ui *SidebarUI) confirm(name string, fn func()) {
	if !ui.store.State().ConfirmDeletion {
		fn()
		return
	}
	msg := fmt.Sprintf(ui.localization.GetText(KeyConfirmRemove), name)
	dialog.ShowConfirm(ui.localization.GetText(KeyRemove), msg, func(ok bool) {
		if ok {
			fn()
		}
	}, ui.window)
}

// targetGroupID returns the group picked items are added to: the default
// group if it exists, else the active group, else the first group
func (ui *SidebarUI) targetGroupID() string {
	state := ui.store.State()
	if _, ok := state.Group(state.DefaultGroup); ok {
		return state.DefaultGroup
	}
	if g, ok := state.ActiveGroup(); ok {
		return g.ID
	}
	if len(state.Groups) > 0 {
		return state.Groups[0].ID
	}
	return ""
}

// AddPath adds an item for path to the target group. Paths that are not
// valid UTF-8 are refused since they cannot be stored.
func (ui *SidebarUI) AddPath(path string, itemType model.ItemType) bool {
	groupID := ui.targetGroupID()
	if groupID == "" || strings.TrimSpace(path) == "" || !utf8.ValidString(path) {
		return false
	}
	item := platform.ItemFromPath(path, itemType)
	return ui.store.Dispatch(sidebar.AddItem{GroupID: groupID, Item: item})
}

func (ui *SidebarUI) onAddFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		ui.settings.SetLastPickedDirectory(filepath.Dir(path))
		ui.AddPath(path, "")
	}, ui.window)

	ui.setPickerLocation(fd)
	fd.Show()
}

func (ui *SidebarUI) onAddFolder() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.settings.SetLastPickedDirectory(uri.Path())
		ui.AddPath(uri.Path(), model.ItemTypeFolder)
	}, ui.window)

	ui.setPickerLocation(fd)
	fd.Show()
}

func (ui *SidebarUI) setPickerLocation(fd *dialog.FileDialog) {
	dir := ui.settings.GetLastPickedDirectory()
	if dir == "" {
		return
	}
	lister, err := fynestorage.ListerForURI(fynestorage.NewFileURI(dir))
	if err != nil {
		return
	}
	fd.SetLocation(lister)
}

func (ui *SidebarUI) onAddWebsite() {
	l := ui.localization
	nameEntry := widget.NewEntry()
	addrEntry := widget.NewEntry()
	addrEntry.SetPlaceHolder("https://")

	items := []*widget.FormItem{
		widget.NewFormItem(l.GetText(KeyName), nameEntry),
		widget.NewFormItem(l.GetText(KeyAddress), addrEntry),
	}

	form := dialog.NewForm(l.GetText(KeyAddWebsite), l.GetText(KeySave), l.GetText(KeyCancel), items, func(ok bool) {
		if !ok {
			return
		}
		ui.AddWebsite(nameEntry.Text, addrEntry.Text)
	}, ui.window)
	form.Resize(fyne.NewSize(FormDialogWidth, FormDialogHeight))
	form.Show()
}

// AddWebsite adds a website item to the target group. An empty name falls
// back to the host.
func (ui *SidebarUI) AddWebsite(name, address string) bool {
	address = strings.TrimSpace(address)
	groupID := ui.targetGroupID()
	if address == "" || groupID == "" || !utf8.ValidString(address) || !utf8.ValidString(name) {
		return false
	}
	address = platform.NormalizeURL(address)

	item := platform.ItemFromPath(address, model.ItemTypeWebsite)
	if n := strings.TrimSpace(name); n != "" {
		item.Name = n
	}
	return ui.store.Dispatch(sidebar.AddItem{GroupID: groupID, Item: item})
}

func (ui *SidebarUI) onShowSettings() {
	ShowOptionsDialog(ui.window, ui.store.State(), ui.settings, ui.localization, func(opts model.Options, lang string) {
		if !opts.IsEmpty() {
			ui.store.Dispatch(sidebar.UpdateOptions{Options: opts})
		}
		if lang != "" && lang != ui.settings.GetLanguage() {
			ui.settings.SetLanguage(lang)
			ui.localization.SetLanguage(lang)
			ui.setupUI()
			ui.applied = nil
			ui.Refresh()
		}
	})
}

// EnableTray installs a system tray menu that shows and hides the sidebar
// and turns on auto-hide when the window loses focus
func (ui *SidebarUI) EnableTray(desk desktop.App) {
	ui.trayMenu = fyne.NewMenu(ui.localization.GetText(KeyAppTitle))
	desk.SetSystemTrayMenu(ui.trayMenu)
	ui.updateTrayMenu(ui.store.State())

	ui.app.Lifecycle().SetOnExitedForeground(ui.scheduleAutoHide)
	ui.app.Lifecycle().SetOnEnteredForeground(ui.cancelAutoHide)
}

func (ui *SidebarUI) updateTrayMenu(state *model.State) {
	if ui.trayMenu == nil {
		return
	}
	label := ui.localization.GetText(KeyShow)
	if state.IsVisible {
		label = ui.localization.GetText(KeyHide)
	}
	ui.trayMenu.Items = []*fyne.MenuItem{
		fyne.NewMenuItem(label, func() {
			ui.store.Dispatch(sidebar.SetVisible{Visible: !ui.store.State().IsVisible})
		}),
	}
	ui.trayMenu.Refresh()
}

// scheduleAutoHide hides an unpinned sidebar once the configured delay has
// passed without the app regaining focus
func (ui *SidebarUI) scheduleAutoHide() {
	state := ui.store.State()
	if !state.AutoHideWhenInactive || state.IsFixed {
		return
	}

	delay := time.Duration(state.AutoHideDelay) * time.Millisecond
	ui.hideTimerM.Lock()
	defer ui.hideTimerM.Unlock()
	if ui.hideTimer != nil {
		ui.hideTimer.Stop()
	}
	ui.hideTimer = time.AfterFunc(delay, func() {
		fyne.Do(func() {
			ui.store.Dispatch(sidebar.SetVisible{Visible: false})
		})
	})
}

func (ui *SidebarUI) cancelAutoHide() {
	ui.hideTimerM.Lock()
	defer ui.hideTimerM.Unlock()
	if ui.hideTimer != nil {
		ui.hideTimer.Stop()
		ui.hideTimer = nil
	}
}
