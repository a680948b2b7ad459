package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quickbar/internal/model"
)

// ItemButton launches an item on tap and reports secondary taps so the
// sidebar can show the item's context menu
type ItemButton struct {
	widget.Button

	item   model.Item
	onMenu func(model.Item, fyne.Position)
}

// NewItemButton creates a button for item. In icon-only mode the name is
// not rendered.
func NewItemButton(item model.Item, mode model.DisplayMode, onLaunch func(model.Item), onMenu func(model.Item, fyne.Position)) *ItemButton {
	b := &ItemButton{item: item, onMenu: onMenu}
	b.Icon = ItemIcon(item.Type)
	if mode != model.DisplayIconOnly {
		b.Text = item.Name
	}
	b.Alignment = widget.ButtonAlignLeading
	b.Importance = widget.LowImportance
	b.OnTapped = func() {
		if onLaunch != nil {
			onLaunch(item)
		}
	}
	b.ExtendBaseWidget(b)
	return b
}

// Item returns the item this button launches
func (b *ItemButton) Item() model.Item {
	return b.item
}

// TappedSecondary opens the context menu at the pointer
func (b *ItemButton) TappedSecondary(e *fyne.PointEvent) {
	if b.onMenu != nil {
		b.onMenu(b.item, e.AbsolutePosition)
	}
}

// ItemIcon maps an item type to a theme icon
func ItemIcon(t model.ItemType) fyne.Resource {
	switch t {
	case model.ItemTypeApplication:
		return theme.ComputerIcon()
	case model.ItemTypeFolder:
		return theme.FolderIcon()
	case model.ItemTypeWebsite:
		return theme.HomeIcon()
	default:
		return theme.DocumentIcon()
	}
}
