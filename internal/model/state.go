package model

// Item is a single launchable shortcut
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Path     string   `json:"path"` // filesystem path or URL
	Icon     string   `json:"icon,omitempty"`
	FavIcon  string   `json:"favIcon,omitempty"`
	Category string   `json:"category,omitempty"`
}

// Group is a named, ordered collection of items
type Group struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Items       []Item      `json:"items"`
	Expanded    bool        `json:"expanded"`
	DisplayMode DisplayMode `json:"displayMode"`
	Layout      Layout      `json:"layout"`
}

// FontSettings describes the sidebar font
type FontSettings struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Weight int    `json:"weight"`
}

// State is the complete sidebar snapshot: groups plus preferences.
// A State is treated as immutable once published by the store.
type State struct {
	Groups        []Group `json:"groups"`
	ActiveGroupID *string `json:"activeGroupId"`

	IsVisible            bool         `json:"isVisible"`
	IsFixed              bool         `json:"isFixed"`
	Position             Position     `json:"position"`
	Theme                Theme        `json:"theme"`
	IsSearchOpen         bool         `json:"isSearchOpen"`
	SearchQuery          string       `json:"searchQuery"`
	AutoHideDelay        int          `json:"autoHideDelay"` // milliseconds
	Transparency         int          `json:"transparency"`  // 0 to 100
	AutoHideWhenInactive bool         `json:"autoHideWhenInactive"`
	SortBy               SortMode     `json:"sortBy"`
	ConfirmDeletion      bool         `json:"confirmDeletion"`
	RunAtStartup         bool         `json:"runAtStartup"`
	CheckUpdates         bool         `json:"checkUpdates"`
	Font                 FontSettings `json:"font"`
	DefaultGroup         string       `json:"defaultGroup"`
}

// Options is a partial set of preferences; nil fields are left untouched
// when merged into a State.
type Options struct {
	IsVisible            *bool
	IsFixed              *bool
	Position             *Position
	Theme                *Theme
	AutoHideDelay        *int
	Transparency         *int
	AutoHideWhenInactive *bool
	SortBy               *SortMode
	ConfirmDeletion      *bool
	RunAtStartup         *bool
	CheckUpdates         *bool
	Font                 *FontSettings
	DefaultGroup         *string
}

// Seed identifiers used by DefaultState
const (
	DefaultGroupID   = "default"
	DocumentsGroupID = "documents"
)

// DefaultState returns the built-in state used on first start and whenever
// persisted state cannot be read.
func DefaultState() *State {
	active := DefaultGroupID
	return &State{
		Groups: []Group{
			{
				ID:   DefaultGroupID,
				Name: "Applications",
				Items: []Item{
					{
						ID:   "chrome",
						Name: "Chrome",
						Type: ItemTypeApplication,
						Path: `C:\Program Files\Google\Chrome\Application\chrome.exe`,
						Icon: "chrome",
					},
					{
						ID:   "vscode",
						Name: "VS Code",
						Type: ItemTypeApplication,
						Path: `C:\Program Files\Microsoft VS Code\Code.exe`,
						Icon: "code",
					},
				},
				Expanded:    true,
				DisplayMode: DisplayIconAndName,
				Layout:      LayoutVertical,
			},
			{
				ID:   DocumentsGroupID,
				Name: "Documents",
				Items: []Item{
					{
						ID:   "doc1",
						Name: "Project Proposal",
						Type: ItemTypeDocument,
						Path: `C:\Users\User\Documents\Project Proposal.docx`,
						Icon: "file-text",
					},
				},
				Expanded:    true,
				DisplayMode: DisplayIconAndName,
				Layout:      LayoutVertical,
			},
		},
		ActiveGroupID:        &active,
		IsVisible:            true,
		IsFixed:              true,
		Position:             PositionLeft,
		Theme:                ThemeDark,
		IsSearchOpen:         false,
		SearchQuery:          "",
		AutoHideDelay:        500,
		Transparency:         90,
		AutoHideWhenInactive: false,
		SortBy:               SortManual,
		ConfirmDeletion:      true,
		RunAtStartup:         false,
		CheckUpdates:         true,
		Font: FontSettings{
			Family: "system-ui",
			Size:   14,
			Weight: 400,
		},
		DefaultGroup: DefaultGroupID,
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := *s
	if s.Groups != nil {
		out.Groups = make([]Group, len(s.Groups))
		for i, g := range s.Groups {
			out.Groups[i] = g.Clone()
		}
	}
	if s.ActiveGroupID != nil {
		id := *s.ActiveGroupID
		out.ActiveGroupID = &id
	}
	return &out
}

// Clone returns a copy of the group with its own item slice
func (g Group) Clone() Group {
	if g.Items != nil {
		items := make([]Item, len(g.Items))
		copy(items, g.Items)
		g.Items = items
	}
	return g
}

// GroupIndex returns the position of the group with the given ID, or -1
func (s *State) GroupIndex(id string) int {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return i
		}
	}
	return -1
}

// Group returns the group with the given ID
func (s *State) Group(id string) (*Group, bool) {
	idx := s.GroupIndex(id)
	if idx < 0 {
		return nil, false
	}
	return &s.Groups[idx], true
}

// ActiveGroup returns the active group if the reference resolves
func (s *State) ActiveGroup() (*Group, bool) {
	if s.ActiveGroupID == nil {
		return nil, false
	}
	return s.Group(*s.ActiveGroupID)
}

// ItemIndex returns the position of the item with the given ID, or -1
func (g *Group) ItemIndex(id string) int {
	for i := range g.Items {
		if g.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Item returns the item with the given ID
func (g *Group) Item(id string) (*Item, bool) {
	idx := g.ItemIndex(id)
	if idx < 0 {
		return nil, false
	}
	return &g.Items[idx], true
}

// ItemCount returns the total number of items across all groups
func (s *State) ItemCount() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Items)
	}
	return n
}

// Merge applies the set fields of o over the state in place
func (o Options) Merge(s *State) {
	if o.IsVisible != nil {
		s.IsVisible = *o.IsVisible
	}
	if o.IsFixed != nil {
		s.IsFixed = *o.IsFixed
	}
	if o.Position != nil {
		s.Position = *o.Position
	}
	if o.Theme != nil {
		s.Theme = *o.Theme
	}
	if o.AutoHideDelay != nil {
		s.AutoHideDelay = *o.AutoHideDelay
	}
	if o.Transparency != nil {
		s.Transparency = *o.Transparency
	}
	if o.AutoHideWhenInactive != nil {
		s.AutoHideWhenInactive = *o.AutoHideWhenInactive
	}
	if o.SortBy != nil {
		s.SortBy = *o.SortBy
	}
	if o.ConfirmDeletion != nil {
		s.ConfirmDeletion = *o.ConfirmDeletion
	}
	if o.RunAtStartup != nil {
		s.RunAtStartup = *o.RunAtStartup
	}
	if o.CheckUpdates != nil {
		s.CheckUpdates = *o.CheckUpdates
	}
	if o.Font != nil {
		s.Font = *o.Font
	}
	if o.DefaultGroup != nil {
		s.DefaultGroup = *o.DefaultGroup
	}
}

// IsEmpty reports whether no field is set
func (o Options) IsEmpty() bool {
	return o == Options{}
}
