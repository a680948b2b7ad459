package sidebar

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ytget/quickbar/internal/model"
)

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func boolPtr(v bool) *bool { return &v }

func itemIDs(g *model.Group) []string {
	ids := make([]string, 0, len(g.Items))
	for _, item := range g.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func groupIDs(s *model.State) []string {
	ids := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		ids = append(ids, g.ID)
	}
	return ids
}

func TestReduce_Scenario(t *testing.T) {
	active := "default"
	state := &model.State{
		Groups:        []model.Group{{ID: "default", Name: "Default", Items: []model.Item{}}},
		ActiveGroupID: &active,
	}
	ids := sequentialIDs()

	state, changed := Reduce(state, AddGroup{Name: "Docs"}, ids)
	if !changed {
		t.Fatal("Expected ADD_GROUP to change state")
	}
	if len(state.Groups) != 2 || state.Groups[1].Name != "Docs" {
		t.Fatalf("Expected second group named Docs, got %+v", state.Groups)
	}
	docsID := state.Groups[1].ID
	if state.ActiveGroupID == nil || *state.ActiveGroupID != docsID {
		t.Errorf("Expected Docs to be active, got %v", state.ActiveGroupID)
	}

	state, _ = Reduce(state, AddItem{
		GroupID: "default",
		Item:    model.Item{Name: "X", Type: model.ItemTypeDocument, Path: "/x"},
	}, ids)
	def, _ := state.Group("default")
	if len(def.Items) != 1 || def.Items[0].Name != "X" {
		t.Fatalf("Expected default group to hold X, got %+v", def.Items)
	}
	xID := def.Items[0].ID

	state, changed = Reduce(state, MoveItem{FromGroupID: "default", ToGroupID: docsID, ItemID: xID}, ids)
	if !changed {
		t.Fatal("Expected MOVE_ITEM to change state")
	}
	def, _ = state.Group("default")
	docs, _ := state.Group(docsID)
	if len(def.Items) != 0 {
		t.Errorf("Expected default group to be empty, got %d items", len(def.Items))
	}
	if len(docs.Items) != 1 || docs.Items[0].Name != "X" || docs.Items[0].ID != xID {
		t.Errorf("Expected Docs to hold X with unchanged ID, got %+v", docs.Items)
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := model.DefaultState()
	snapshot := state.Clone()

	actions := []Action{
		AddGroup{Name: "New"},
		RenameGroup{GroupID: "default", Name: "Apps"},
		AddItem{GroupID: "default", Item: model.Item{Name: "Y"}},
		RemoveItem{GroupID: "default", ItemID: "chrome"},
		MoveItem{FromGroupID: "default", ToGroupID: "documents", ItemID: "vscode"},
		MoveItemTo{FromGroupID: "default", ToGroupID: "default", ItemID: "chrome", Index: 1},
		ReorderGroups{GroupIDs: []string{"documents", "default"}},
		ReorderItems{GroupID: "default", ItemIDs: []string{"vscode", "chrome"}},
		ToggleGroupExpand{GroupID: "default"},
		UpdateGroupDisplay{GroupID: "default", DisplayMode: model.DisplayIconOnly},
		UpdateGroupLayout{GroupID: "default", Layout: model.LayoutHorizontal},
		RemoveGroup{GroupID: "default"},
		SetActiveGroup{GroupID: "documents"},
		ToggleSearch{},
		SetSearchQuery{Query: "chr"},
	}

	for _, action := range actions {
		next, changed := Reduce(state, action, sequentialIDs())
		if !changed {
			t.Errorf("%s: expected a change", action.Kind())
		}
		if next == state {
			t.Errorf("%s: expected a new snapshot", action.Kind())
		}
		if !reflect.DeepEqual(state, snapshot) {
			t.Fatalf("%s: input state was modified", action.Kind())
		}
	}
}

func TestReduce_Setters(t *testing.T) {
	state := model.DefaultState()

	next, _ := Reduce(state, SetVisible{Visible: false}, nil)
	if next.IsVisible {
		t.Error("Expected sidebar to be hidden")
	}

	next, _ = Reduce(next, SetFixed{Fixed: false}, nil)
	if next.IsFixed {
		t.Error("Expected sidebar to be unpinned")
	}

	next, _ = Reduce(next, SetPosition{Position: model.PositionRight}, nil)
	if next.Position != model.PositionRight {
		t.Errorf("Expected position right, got %s", next.Position)
	}

	next, _ = Reduce(next, SetTheme{Theme: model.ThemeLight}, nil)
	if next.Theme != model.ThemeLight {
		t.Errorf("Expected light theme, got %s", next.Theme)
	}

	// Setting the same value is a no-op
	same, changed := Reduce(next, SetTheme{Theme: model.ThemeLight}, nil)
	if changed || same != next {
		t.Error("Setting an unchanged theme should be a no-op")
	}
}

func TestReduce_SetActiveGroupDoesNotValidate(t *testing.T) {
	next, changed := Reduce(model.DefaultState(), SetActiveGroup{GroupID: "ghost"}, nil)
	if !changed {
		t.Fatal("Expected active group change")
	}
	if *next.ActiveGroupID != "ghost" {
		t.Errorf("Expected active group ghost, got %s", *next.ActiveGroupID)
	}
}

func TestReduce_AddGroupDefaults(t *testing.T) {
	next, _ := Reduce(model.DefaultState(), AddGroup{Name: ""}, sequentialIDs())

	group := next.Groups[len(next.Groups)-1]
	if group.Name != "" {
		t.Errorf("Expected empty name to be kept, got %q", group.Name)
	}
	if group.ID != "id-1" {
		t.Errorf("Expected generated ID id-1, got %s", group.ID)
	}
	if !group.Expanded || group.DisplayMode != model.DisplayIconAndName || group.Layout != model.LayoutVertical {
		t.Errorf("Unexpected new group defaults: %+v", group)
	}
	if len(group.Items) != 0 {
		t.Errorf("Expected no items, got %d", len(group.Items))
	}
}

func TestReduce_GeneratedIDsSkipTakenIDs(t *testing.T) {
	taken := []string{"default", "chrome", "fresh"}
	n := 0
	gen := func() string {
		id := taken[n%len(taken)]
		n++
		return id
	}

	next, _ := Reduce(model.DefaultState(), AddItem{GroupID: "documents", Item: model.Item{Name: "Z"}}, gen)
	docs, _ := next.Group("documents")
	if got := docs.Items[len(docs.Items)-1].ID; got != "fresh" {
		t.Errorf("Expected first free ID 'fresh', got %s", got)
	}
}

func TestReduce_RemoveGroup(t *testing.T) {
	tests := []struct {
		name       string
		active     *string
		remove     string
		wantActive *string
		wantGroups []string
	}{
		{"active removed", strPtr("default"), "default", strPtr("documents"), []string{"documents"}},
		{"inactive removed", strPtr("default"), "documents", strPtr("default"), []string{"default"}},
		{"no active", nil, "documents", nil, []string{"default"}},
	}

	for _, test := range tests {
		state := model.DefaultState()
		state.ActiveGroupID = test.active

		next, changed := Reduce(state, RemoveGroup{GroupID: test.remove}, nil)
		if !changed {
			t.Errorf("%s: expected change", test.name)
			continue
		}
		if !reflect.DeepEqual(groupIDs(next), test.wantGroups) {
			t.Errorf("%s: groups = %v, expected %v", test.name, groupIDs(next), test.wantGroups)
		}
		if !reflect.DeepEqual(next.ActiveGroupID, test.wantActive) {
			t.Errorf("%s: active = %v, expected %v", test.name, deref(next.ActiveGroupID), deref(test.wantActive))
		}
	}
}

func TestReduce_RemoveLastGroupClearsActive(t *testing.T) {
	state := model.DefaultState()
	state, _ = Reduce(state, RemoveGroup{GroupID: "documents"}, nil)
	state, _ = Reduce(state, RemoveGroup{GroupID: "default"}, nil)

	if len(state.Groups) != 0 {
		t.Fatalf("Expected no groups, got %d", len(state.Groups))
	}
	if state.ActiveGroupID != nil {
		t.Errorf("Expected nil active group, got %s", *state.ActiveGroupID)
	}
}

func TestReduce_NoOps(t *testing.T) {
	tests := []Action{
		RenameGroup{GroupID: "missing", Name: "x"},
		RemoveGroup{GroupID: "missing"},
		AddItem{GroupID: "missing", Item: model.Item{Name: "x"}},
		RemoveItem{GroupID: "default", ItemID: "missing"},
		RemoveItem{GroupID: "missing", ItemID: "chrome"},
		MoveItem{FromGroupID: "default", ToGroupID: "default", ItemID: "chrome"},
		MoveItem{FromGroupID: "default", ToGroupID: "documents", ItemID: "missing"},
		MoveItem{FromGroupID: "missing", ToGroupID: "documents", ItemID: "chrome"},
		MoveItem{FromGroupID: "default", ToGroupID: "missing", ItemID: "chrome"},
		MoveItemTo{FromGroupID: "default", ToGroupID: "default", ItemID: "chrome", Index: 0},
		MoveItemTo{FromGroupID: "default", ToGroupID: "missing", ItemID: "chrome", Index: 0},
		ReorderGroups{GroupIDs: []string{"default", "documents"}},
		ReorderItems{GroupID: "missing", ItemIDs: []string{"a"}},
		ReorderItems{GroupID: "default", ItemIDs: []string{"chrome", "vscode"}},
		ToggleGroupExpand{GroupID: "missing"},
		UpdateOptions{},
		UpdateGroupDisplay{GroupID: "missing", DisplayMode: model.DisplayIconOnly},
		UpdateGroupLayout{GroupID: "missing", Layout: model.LayoutHorizontal},
		UpdateGroupLayout{GroupID: "default", Layout: model.LayoutVertical},
		SetSearchQuery{Query: ""},
		ToggleSearch{Open: boolPtr(false)},
	}

	for _, action := range tests {
		state := model.DefaultState()
		next, changed := Reduce(state, action, sequentialIDs())
		if changed {
			t.Errorf("%s %+v: expected no change", action.Kind(), action)
		}
		if next != state {
			t.Errorf("%s %+v: expected the same snapshot back", action.Kind(), action)
		}
		if !reflect.DeepEqual(next, model.DefaultState()) {
			t.Errorf("%s %+v: state differs from the original", action.Kind(), action)
		}
	}
}

func TestReduce_ReorderKeepsUnlistedEntries(t *testing.T) {
	state := model.DefaultState()
	state, _ = Reduce(state, AddItem{GroupID: "default", Item: model.Item{Name: "Third"}}, sequentialIDs())

	// "id-1" is listed first, "chrome" is unlisted, "unknown" is ignored
	next, changed := Reduce(state, ReorderItems{GroupID: "default", ItemIDs: []string{"id-1", "unknown", "vscode", "id-1"}}, nil)
	if !changed {
		t.Fatal("Expected reorder to change state")
	}
	def, _ := next.Group("default")
	expected := []string{"id-1", "vscode", "chrome"}
	if !reflect.DeepEqual(itemIDs(def), expected) {
		t.Errorf("Item order = %v, expected %v", itemIDs(def), expected)
	}

	next, _ = Reduce(next, ReorderGroups{GroupIDs: []string{"documents"}}, nil)
	expected = []string{"documents", "default"}
	if !reflect.DeepEqual(groupIDs(next), expected) {
		t.Errorf("Group order = %v, expected %v", groupIDs(next), expected)
	}
}

func TestReduce_MoveItemTo(t *testing.T) {
	tests := []struct {
		name     string
		action   MoveItemTo
		wantDef  []string
		wantDocs []string
	}{
		{
			name:     "within group",
			action:   MoveItemTo{FromGroupID: "default", ToGroupID: "default", ItemID: "chrome", Index: 1},
			wantDef:  []string{"vscode", "chrome"},
			wantDocs: []string{"doc1"},
		},
		{
			name:     "across groups at front",
			action:   MoveItemTo{FromGroupID: "default", ToGroupID: "documents", ItemID: "vscode", Index: 0},
			wantDef:  []string{"chrome"},
			wantDocs: []string{"vscode", "doc1"},
		},
		{
			name:     "index past end appends",
			action:   MoveItemTo{FromGroupID: "default", ToGroupID: "documents", ItemID: "chrome", Index: 99},
			wantDef:  []string{"vscode"},
			wantDocs: []string{"doc1", "chrome"},
		},
		{
			name:     "negative index prepends",
			action:   MoveItemTo{FromGroupID: "documents", ToGroupID: "default", ItemID: "doc1", Index: -3},
			wantDef:  []string{"doc1", "chrome", "vscode"},
			wantDocs: []string{},
		},
	}

	for _, test := range tests {
		next, changed := Reduce(model.DefaultState(), test.action, nil)
		if !changed {
			t.Errorf("%s: expected change", test.name)
			continue
		}
		def, _ := next.Group("default")
		docs, _ := next.Group("documents")
		if !reflect.DeepEqual(itemIDs(def), test.wantDef) {
			t.Errorf("%s: default = %v, expected %v", test.name, itemIDs(def), test.wantDef)
		}
		if !reflect.DeepEqual(itemIDs(docs), test.wantDocs) {
			t.Errorf("%s: documents = %v, expected %v", test.name, itemIDs(docs), test.wantDocs)
		}
	}
}

func TestReduce_ToggleSearch(t *testing.T) {
	state := model.DefaultState()

	state, _ = Reduce(state, ToggleSearch{}, nil)
	if !state.IsSearchOpen {
		t.Fatal("Expected search to open on toggle")
	}

	state, _ = Reduce(state, SetSearchQuery{Query: "  Code "}, nil)
	if state.SearchQuery != "  Code " {
		t.Errorf("Expected query to be stored verbatim, got %q", state.SearchQuery)
	}

	// Flipping closed keeps the query
	closed, _ := Reduce(state, ToggleSearch{}, nil)
	if closed.IsSearchOpen || closed.SearchQuery != "  Code " {
		t.Errorf("Toggle without value should keep query, got open=%v query=%q", closed.IsSearchOpen, closed.SearchQuery)
	}

	// Explicit close clears it
	closed, _ = Reduce(state, ToggleSearch{Open: boolPtr(false)}, nil)
	if closed.IsSearchOpen || closed.SearchQuery != "" {
		t.Errorf("Explicit close should clear query, got open=%v query=%q", closed.IsSearchOpen, closed.SearchQuery)
	}

	opened, _ := Reduce(state, ToggleSearch{Open: boolPtr(true)}, nil)
	if !opened.IsSearchOpen || opened.SearchQuery != "  Code " {
		t.Error("Explicit open should keep the query")
	}
}

func TestReduce_GroupToggles(t *testing.T) {
	state := model.DefaultState()

	state, _ = Reduce(state, ToggleGroupExpand{GroupID: "documents"}, nil)
	docs, _ := state.Group("documents")
	if docs.Expanded {
		t.Error("Expected documents to collapse")
	}

	state, _ = Reduce(state, ToggleGroupExpand{GroupID: "documents"}, nil)
	docs, _ = state.Group("documents")
	if !docs.Expanded {
		t.Error("Expected documents to expand again")
	}

	state, _ = Reduce(state, UpdateGroupDisplay{GroupID: "documents", DisplayMode: model.DisplayIconOnly}, nil)
	state, _ = Reduce(state, UpdateGroupLayout{GroupID: "documents", Layout: model.LayoutHorizontal}, nil)
	docs, _ = state.Group("documents")
	if docs.DisplayMode != model.DisplayIconOnly || docs.Layout != model.LayoutHorizontal {
		t.Errorf("Unexpected display/layout: %s/%s", docs.DisplayMode, docs.Layout)
	}

	def, _ := state.Group("default")
	if def.DisplayMode != model.DisplayIconAndName || def.Layout != model.LayoutVertical {
		t.Error("Other groups must not change")
	}
}

func TestReduce_RenameGroup(t *testing.T) {
	next, changed := Reduce(model.DefaultState(), RenameGroup{GroupID: "documents", Name: "Docs"}, nil)
	if !changed {
		t.Fatal("Expected rename to change state")
	}
	docs, _ := next.Group("documents")
	if docs.Name != "Docs" {
		t.Errorf("Expected name Docs, got %s", docs.Name)
	}
}

func TestReduce_UpdateOptions(t *testing.T) {
	delay := 1200
	sortBy := model.SortName
	next, changed := Reduce(model.DefaultState(), UpdateOptions{Options: model.Options{
		AutoHideDelay: &delay,
		SortBy:        &sortBy,
		RunAtStartup:  boolPtr(true),
	}}, nil)
	if !changed {
		t.Fatal("Expected update options to change state")
	}
	if next.AutoHideDelay != 1200 || next.SortBy != model.SortName || !next.RunAtStartup {
		t.Errorf("Options not merged: %+v", next)
	}
	if next.Transparency != 90 || next.Theme != model.ThemeDark {
		t.Error("Unspecified options must be untouched")
	}
}

func TestReduce_NilState(t *testing.T) {
	next, changed := Reduce(nil, SetVisible{Visible: true}, nil)
	if changed {
		t.Error("Default state is already visible; expected no change")
	}
	if next == nil || len(next.Groups) != 2 {
		t.Error("Expected nil state to fall back to defaults")
	}
}

func strPtr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
