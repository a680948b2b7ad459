package model

// ItemType classifies what an item launches
type ItemType string

const (
	ItemTypeApplication ItemType = "application"
	ItemTypeDocument    ItemType = "document"
	ItemTypeFolder      ItemType = "folder"
	ItemTypeWebsite     ItemType = "website"
)

// String returns the string representation of ItemType
func (t ItemType) String() string {
	return string(t)
}

// IsValid returns true if the type is one of the known item types
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeApplication, ItemTypeDocument, ItemTypeFolder, ItemTypeWebsite:
		return true
	}
	return false
}

// ItemTypes returns all item types in menu order
func ItemTypes() []ItemType {
	return []ItemType{ItemTypeApplication, ItemTypeDocument, ItemTypeFolder, ItemTypeWebsite}
}

// DisplayMode controls whether items show their name next to the icon
type DisplayMode string

const (
	DisplayIconOnly    DisplayMode = "icon-only"
	DisplayIconAndName DisplayMode = "icon-and-name"
)

// IsValid returns true for known display modes
func (m DisplayMode) IsValid() bool {
	return m == DisplayIconOnly || m == DisplayIconAndName
}

// Toggle returns the other display mode
func (m DisplayMode) Toggle() DisplayMode {
	if m == DisplayIconOnly {
		return DisplayIconAndName
	}
	return DisplayIconOnly
}

// Layout controls how a group arranges its items
type Layout string

const (
	LayoutVertical   Layout = "vertical"
	LayoutHorizontal Layout = "horizontal"
)

// IsValid returns true for known layouts
func (l Layout) IsValid() bool {
	return l == LayoutVertical || l == LayoutHorizontal
}

// Toggle returns the other layout
func (l Layout) Toggle() Layout {
	if l == LayoutVertical {
		return LayoutHorizontal
	}
	return LayoutVertical
}

// Position is the screen edge the sidebar is docked to
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// IsValid returns true for known positions
func (p Position) IsValid() bool {
	return p == PositionLeft || p == PositionRight
}

// Theme is the sidebar color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid returns true for known themes
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// SortMode selects how items are ordered for display
type SortMode string

const (
	SortManual   SortMode = "manual"
	SortName     SortMode = "name"
	SortType     SortMode = "type"
	SortCategory SortMode = "category"
	SortLastUsed SortMode = "last_used"
)

// IsValid returns true for known sort modes
func (s SortMode) IsValid() bool {
	switch s {
	case SortManual, SortName, SortType, SortCategory, SortLastUsed:
		return true
	}
	return false
}

// SortModes returns all sort modes in options-menu order
func SortModes() []SortMode {
	return []SortMode{SortManual, SortName, SortType, SortCategory, SortLastUsed}
}
