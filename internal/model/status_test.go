package model

import "testing"

func TestItemType_IsValid(t *testing.T) {
	tests := []struct {
		itemType ItemType
		expected bool
	}{
		{ItemTypeApplication, true},
		{ItemTypeDocument, true},
		{ItemTypeFolder, true},
		{ItemTypeWebsite, true},
		{ItemType(""), false},
		{ItemType("shortcut"), false},
	}

	for _, test := range tests {
		result := test.itemType.IsValid()
		if result != test.expected {
			t.Errorf("ItemType(%q).IsValid() = %v, expected %v", test.itemType, result, test.expected)
		}
	}
}

func TestSortMode_IsValid(t *testing.T) {
	for _, mode := range SortModes() {
		if !mode.IsValid() {
			t.Errorf("SortMode(%s) should be valid", mode)
		}
	}

	if SortMode("random").IsValid() {
		t.Error("SortMode(random) should not be valid")
	}
}

func TestDisplayMode_Toggle(t *testing.T) {
	if DisplayIconOnly.Toggle() != DisplayIconAndName {
		t.Errorf("Expected icon-only to toggle to icon-and-name")
	}
	if DisplayIconAndName.Toggle() != DisplayIconOnly {
		t.Errorf("Expected icon-and-name to toggle to icon-only")
	}
}

func TestLayout_Toggle(t *testing.T) {
	if LayoutVertical.Toggle() != LayoutHorizontal {
		t.Errorf("Expected vertical to toggle to horizontal")
	}
	if LayoutHorizontal.Toggle() != LayoutVertical {
		t.Errorf("Expected horizontal to toggle to vertical")
	}
}

func TestEnumValidity(t *testing.T) {
	if !PositionLeft.IsValid() || !PositionRight.IsValid() || Position("top").IsValid() {
		t.Error("Position validity mismatch")
	}
	if !ThemeLight.IsValid() || !ThemeDark.IsValid() || Theme("sepia").IsValid() {
		t.Error("Theme validity mismatch")
	}
	if !DisplayIconOnly.IsValid() || DisplayMode("list").IsValid() {
		t.Error("DisplayMode validity mismatch")
	}
	if !LayoutVertical.IsValid() || Layout("grid").IsValid() {
		t.Error("Layout validity mismatch")
	}
}

func TestItemType_String(t *testing.T) {
	if ItemTypeWebsite.String() != "website" {
		t.Errorf("ItemType.String() = %s, expected website", ItemTypeWebsite.String())
	}
}
