package sidebar

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ytget/quickbar/internal/model"
)

// itemNames adapts a slice of items to fuzzy.Source
type itemNames []model.Item

func (n itemNames) String(i int) string { return strings.ToLower(n[i].Name) }
func (n itemNames) Len() int            { return len(n) }

// VisibleItems returns the group's items matching query, ordered by sortBy.
// An item matches when its name fuzzy-matches the query or its path contains
// it. An empty query matches everything.
func VisibleItems(group model.Group, query string, sortBy model.SortMode) []model.Item {
	query = strings.ToLower(strings.TrimSpace(query))

	var items []model.Item
	if query == "" {
		items = make([]model.Item, len(group.Items))
		copy(items, group.Items)
	} else {
		matched := make([]bool, len(group.Items))
		for _, m := range fuzzy.FindFrom(query, itemNames(group.Items)) {
			matched[m.Index] = true
		}
		for i, item := range group.Items {
			if matched[i] || strings.Contains(strings.ToLower(item.Path), query) {
				items = append(items, item)
			}
		}
	}

	sortItems(items, sortBy)
	return items
}

// VisibleGroups returns every group with its items filtered and sorted for
// display. While a search is active, groups without matches are omitted.
func VisibleGroups(state *model.State) []model.Group {
	searching := state.IsSearchOpen && strings.TrimSpace(state.SearchQuery) != ""

	groups := make([]model.Group, 0, len(state.Groups))
	for _, g := range state.Groups {
		query := ""
		if searching {
			query = state.SearchQuery
		}
		items := VisibleItems(g, query, state.SortBy)
		if searching && len(items) == 0 {
			continue
		}
		g.Items = items
		groups = append(groups, g)
	}
	return groups
}

func sortItems(items []model.Item, sortBy model.SortMode) {
	var less func(a, b model.Item) bool
	switch sortBy {
	case model.SortName:
		less = func(a, b model.Item) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case model.SortType:
		less = func(a, b model.Item) bool { return a.Type < b.Type }
	case model.SortCategory:
		less = func(a, b model.Item) bool {
			// uncategorized items go last
			if a.Category == "" || b.Category == "" {
				return a.Category != "" && b.Category == ""
			}
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	default:
		// manual and last_used keep the stored order
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
