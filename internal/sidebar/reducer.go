package sidebar

import (
	"github.com/ytget/quickbar/internal/model"
)

// Reduce applies action to state and returns the next snapshot. The input
// is never modified. When the action has no effect (unknown ID, same value,
// unrecognized action) the input pointer is returned with changed=false.
func Reduce(state *model.State, action Action, newID IDGenerator) (next *model.State, changed bool) {
	if state == nil {
		state = model.DefaultState()
	}

	switch a := action.(type) {
	case SetVisible:
		if state.IsVisible == a.Visible {
			return state, false
		}
		next = state.Clone()
		next.IsVisible = a.Visible
		return next, true

	case SetFixed:
		if state.IsFixed == a.Fixed {
			return state, false
		}
		next = state.Clone()
		next.IsFixed = a.Fixed
		return next, true

	case SetPosition:
		if state.Position == a.Position {
			return state, false
		}
		next = state.Clone()
		next.Position = a.Position
		return next, true

	case SetTheme:
		if state.Theme == a.Theme {
			return state, false
		}
		next = state.Clone()
		next.Theme = a.Theme
		return next, true

	case SetActiveGroup:
		if state.ActiveGroupID != nil && *state.ActiveGroupID == a.GroupID {
			return state, false
		}
		next = state.Clone()
		id := a.GroupID
		next.ActiveGroupID = &id
		return next, true

	case AddGroup:
		return addGroup(state, a, newID), true

	case RenameGroup:
		return updateGroup(state, a.GroupID, func(g *model.Group) bool {
			if g.Name == a.Name {
				return false
			}
			g.Name = a.Name
			return true
		})

	case RemoveGroup:
		return removeGroup(state, a.GroupID)

	case AddItem:
		if state.GroupIndex(a.GroupID) < 0 {
			return state, false
		}
		item := a.Item
		item.ID = uniqueID(state, newID)
		return updateGroup(state, a.GroupID, func(g *model.Group) bool {
			g.Items = append(g.Items, item)
			return true
		})

	case RemoveItem:
		return updateGroup(state, a.GroupID, func(g *model.Group) bool {
			idx := g.ItemIndex(a.ItemID)
			if idx < 0 {
				return false
			}
			g.Items = append(g.Items[:idx], g.Items[idx+1:]...)
			return true
		})

	case MoveItem:
		return moveItem(state, a)

	case MoveItemTo:
		return moveItemTo(state, a)

	case ReorderGroups:
		next = state.Clone()
		groups, ok := reorder(next.Groups, a.GroupIDs, func(g model.Group) string { return g.ID })
		if !ok {
			return state, false
		}
		next.Groups = groups
		return next, true

	case ReorderItems:
		return updateGroup(state, a.GroupID, func(g *model.Group) bool {
			items, ok := reorder(g.Items, a.ItemIDs, func(item model.Item) string { return item.ID })
			if !ok {
				return false
			}
			g.Items = items
			return true
		})

	case ToggleSearch:
		open := !state.IsSearchOpen
		query := state.SearchQuery
		if a.Open != nil {
			open = *a.Open
			if !open {
				query = ""
			}
		}
		if open == state.IsSearchOpen && query == state.SearchQuery {
			return state, false
		}
		next = state.Clone()
		next.IsSearchOpen = open
		next.SearchQuery = query
		return next, true

	case SetSearchQuery:
		if state.SearchQuery == a.Query {
			return state, false
		}
		next = state.Clone()
		next.SearchQuery = a.Query
		return next, true

	case ToggleGroupExpand:
		return updateGroup(state, a.GroupID, func(g *model.Group) bool {
			g.Expanded = !g.Expanded
			return true
		})

	case UpdateOptions:
		if a.Options.IsEmpty() {
			return state, false
		}
		next = state.Clone()
		a.Options.Merge(next)
		return next, true

	case UpdateGroupDisplay:
		return updateGroup(state, a.GroupID, func(g *model.Group) bool {
			if g.DisplayMode == a.DisplayMode {
				return false
			}
			g.DisplayMode = a.DisplayMode
			return true
		})

	case UpdateGroupLayout:
		return updateGroup(state, a.GroupID, func(g *model.Group) bool {
			if g.Layout == a.Layout {
				return false
			}
			g.Layout = a.Layout
			return true
		})
	}

	return state, false
}

func addGroup(state *model.State, a AddGroup, newID IDGenerator) *model.State {
	group := model.Group{
		ID:          uniqueID(state, newID),
		Name:        a.Name,
		Items:       []model.Item{},
		Expanded:    true,
		DisplayMode: model.DisplayIconAndName,
		Layout:      model.LayoutVertical,
	}
	next := state.Clone()
	next.Groups = append(next.Groups, group)
	next.ActiveGroupID = &group.ID
	return next
}

func removeGroup(state *model.State, groupID string) (*model.State, bool) {
	idx := state.GroupIndex(groupID)
	if idx < 0 {
		return state, false
	}
	next := state.Clone()
	next.Groups = append(next.Groups[:idx], next.Groups[idx+1:]...)

	if state.ActiveGroupID != nil && *state.ActiveGroupID == groupID {
		if len(next.Groups) > 0 {
			first := next.Groups[0].ID
			next.ActiveGroupID = &first
		} else {
			next.ActiveGroupID = nil
		}
	}
	return next, true
}

func moveItem(state *model.State, a MoveItem) (*model.State, bool) {
	if a.FromGroupID == a.ToGroupID {
		return state, false
	}
	from, to := state.GroupIndex(a.FromGroupID), state.GroupIndex(a.ToGroupID)
	if from < 0 || to < 0 {
		return state, false
	}
	itemIdx := state.Groups[from].ItemIndex(a.ItemID)
	if itemIdx < 0 {
		return state, false
	}

	next := state.Clone()
	item := next.Groups[from].Items[itemIdx]
	next.Groups[from].Items = append(next.Groups[from].Items[:itemIdx], next.Groups[from].Items[itemIdx+1:]...)
	next.Groups[to].Items = append(next.Groups[to].Items, item)
	return next, true
}

func moveItemTo(state *model.State, a MoveItemTo) (*model.State, bool) {
	from, to := state.GroupIndex(a.FromGroupID), state.GroupIndex(a.ToGroupID)
	if from < 0 || to < 0 {
		return state, false
	}
	itemIdx := state.Groups[from].ItemIndex(a.ItemID)
	if itemIdx < 0 {
		return state, false
	}
	if from == to && clampIndex(a.Index, len(state.Groups[from].Items)-1) == itemIdx {
		return state, false
	}

	next := state.Clone()
	item := next.Groups[from].Items[itemIdx]
	next.Groups[from].Items = append(next.Groups[from].Items[:itemIdx], next.Groups[from].Items[itemIdx+1:]...)

	dest := next.Groups[to].Items
	pos := clampIndex(a.Index, len(dest))
	dest = append(dest, model.Item{})
	copy(dest[pos+1:], dest[pos:])
	dest[pos] = item
	next.Groups[to].Items = dest
	return next, true
}

func clampIndex(idx, limit int) int {
	if idx < 0 {
		return 0
	}
	if idx > limit {
		return limit
	}
	return idx
}

// updateGroup clones the state and runs fn on the matching group. The clone
// is discarded if the group is missing or fn reports no change.
func updateGroup(state *model.State, groupID string, fn func(*model.Group) bool) (*model.State, bool) {
	idx := state.GroupIndex(groupID)
	if idx < 0 {
		return state, false
	}
	next := state.Clone()
	if !fn(&next.Groups[idx]) {
		return state, false
	}
	return next, true
}

// reorder returns the entries named by ids, in that order, followed by the
// entries ids does not mention in their current relative order. Unknown and
// repeated ids are ignored. ok is false when the order is unchanged.
func reorder[T any](list []T, ids []string, key func(T) string) (out []T, ok bool) {
	index := make(map[string]int, len(list))
	for i, entry := range list {
		index[key(entry)] = i
	}

	placed := make([]bool, len(list))
	out = make([]T, 0, len(list))
	for _, id := range ids {
		i, found := index[id]
		if !found || placed[i] {
			continue
		}
		placed[i] = true
		out = append(out, list[i])
	}
	for i, entry := range list {
		if !placed[i] {
			out = append(out, entry)
		}
	}

	for i := range list {
		if key(out[i]) != key(list[i]) {
			return out, true
		}
	}
	return list, false
}
