package sidebar

import "github.com/ytget/quickbar/internal/model"

// Action kinds, used for logging and the CLI
const (
	KindSetVisible         = "SET_VISIBLE"
	KindSetFixed           = "SET_FIXED"
	KindSetPosition        = "SET_POSITION"
	KindSetTheme           = "SET_THEME"
	KindSetActiveGroup     = "SET_ACTIVE_GROUP"
	KindAddGroup           = "ADD_GROUP"
	KindRenameGroup        = "RENAME_GROUP"
	KindRemoveGroup        = "REMOVE_GROUP"
	KindAddItem            = "ADD_ITEM"
	KindRemoveItem         = "REMOVE_ITEM"
	KindMoveItem           = "MOVE_ITEM"
	KindMoveItemTo         = "MOVE_ITEM_TO"
	KindReorderGroups      = "REORDER_GROUPS"
	KindReorderItems       = "REORDER_ITEMS"
	KindToggleSearch       = "TOGGLE_SEARCH"
	KindSetSearchQuery     = "SET_SEARCH_QUERY"
	KindToggleGroupExpand  = "TOGGLE_GROUP_EXPAND"
	KindUpdateOptions      = "UPDATE_OPTIONS"
	KindUpdateGroupDisplay = "UPDATE_GROUP_DISPLAY"
	KindUpdateGroupLayout  = "UPDATE_GROUP_LAYOUT"
)

// Action is a single state transition. The set of actions is closed: only
// the types in this file implement it.
type Action interface {
	Kind() string
	action()
}

// SetVisible shows or hides the sidebar
type SetVisible struct{ Visible bool }

// SetFixed pins the sidebar so it never auto-hides
type SetFixed struct{ Fixed bool }

// SetPosition docks the sidebar to the left or right screen edge
type SetPosition struct{ Position model.Position }

// SetTheme switches between the light and dark theme
type SetTheme struct{ Theme model.Theme }

// SetActiveGroup does not check that the group exists
type SetActiveGroup struct{ GroupID string }

// AddGroup appends a new group and makes it active. The name is used as
// given; callers trim and validate it.
type AddGroup struct{ Name string }

// RenameGroup changes a group name
type RenameGroup struct {
	GroupID string
	Name    string
}

// RemoveGroup deletes a group together with its items
type RemoveGroup struct{ GroupID string }

// AddItem appends Item to the group. Item.ID is ignored and replaced by a
// generated one.
type AddItem struct {
	GroupID string
	Item    model.Item
}

// RemoveItem deletes one item from a group
type RemoveItem struct {
	GroupID string
	ItemID  string
}

// MoveItem moves an item to the end of another group
type MoveItem struct {
	FromGroupID string
	ToGroupID   string
	ItemID      string
}

// MoveItemTo places an item at Index in the destination group, which may be
// the source group itself. Index is clamped to the destination's bounds.
type MoveItemTo struct {
	FromGroupID string
	ToGroupID   string
	ItemID      string
	Index       int
}

// ReorderGroups puts the listed groups first, in the given order
type ReorderGroups struct{ GroupIDs []string }

// ReorderItems puts the listed items of one group first, in the given order
type ReorderItems struct {
	GroupID string
	ItemIDs []string
}

// ToggleSearch flips the search panel when Open is nil, otherwise sets it.
// Closing explicitly also clears the query.
type ToggleSearch struct{ Open *bool }

// SetSearchQuery replaces the search text
type SetSearchQuery struct{ Query string }

// ToggleGroupExpand collapses or expands one group
type ToggleGroupExpand struct{ GroupID string }

// UpdateOptions merges the set fields of Options into the preferences
type UpdateOptions struct{ Options model.Options }

// UpdateGroupDisplay sets whether item names are shown in a group
type UpdateGroupDisplay struct {
	GroupID     string
	DisplayMode model.DisplayMode
}

// UpdateGroupLayout arranges a group's items vertically or horizontally
type UpdateGroupLayout struct {
	GroupID string
	Layout  model.Layout
}

func (SetVisible) Kind() string         { return KindSetVisible }
func (SetFixed) Kind() string           { return KindSetFixed }
func (SetPosition) Kind() string        { return KindSetPosition }
func (SetTheme) Kind() string           { return KindSetTheme }
func (SetActiveGroup) Kind() string     { return KindSetActiveGroup }
func (AddGroup) Kind() string           { return KindAddGroup }
func (RenameGroup) Kind() string        { return KindRenameGroup }
func (RemoveGroup) Kind() string        { return KindRemoveGroup }
func (AddItem) Kind() string            { return KindAddItem }
func (RemoveItem) Kind() string         { return KindRemoveItem }
func (MoveItem) Kind() string           { return KindMoveItem }
func (MoveItemTo) Kind() string         { return KindMoveItemTo }
func (ReorderGroups) Kind() string      { return KindReorderGroups }
func (ReorderItems) Kind() string       { return KindReorderItems }
func (ToggleSearch) Kind() string       { return KindToggleSearch }
func (SetSearchQuery) Kind() string     { return KindSetSearchQuery }
func (ToggleGroupExpand) Kind() string  { return KindToggleGroupExpand }
func (UpdateOptions) Kind() string      { return KindUpdateOptions }
func (UpdateGroupDisplay) Kind() string { return KindUpdateGroupDisplay }
func (UpdateGroupLayout) Kind() string  { return KindUpdateGroupLayout }

func (SetVisible) action()         {}
func (SetFixed) action()           {}
func (SetPosition) action()        {}
func (SetTheme) action()           {}
func (SetActiveGroup) action()     {}
func (AddGroup) action()           {}
func (RenameGroup) action()        {}
func (RemoveGroup) action()        {}
func (AddItem) action()            {}
func (RemoveItem) action()         {}
func (MoveItem) action()           {}
func (MoveItemTo) action()         {}
func (ReorderGroups) action()      {}
func (ReorderItems) action()       {}
func (ToggleSearch) action()       {}
func (SetSearchQuery) action()     {}
func (ToggleGroupExpand) action()  {}
func (UpdateOptions) action()      {}
func (UpdateGroupDisplay) action() {}
func (UpdateGroupLayout) action()  {}
