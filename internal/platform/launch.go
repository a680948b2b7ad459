package platform

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/skratchdot/open-golang/open"

	"github.com/ytget/quickbar/internal/model"
)

// Executable extensions treated as applications
var (
	ApplicationExtensions = []string{".exe", ".lnk", ".app", ".appimage", ".desktop", ".bat", ".cmd"}
)

// Opener opens a path or URL with the system default handler
type Opener func(target string) error

// Launcher starts items
type Launcher struct {
	open Opener
}

// NewLauncher creates a launcher using the system handler
func NewLauncher() *Launcher {
	return &Launcher{open: open.Start}
}

// NewLauncherWithOpener creates a launcher with a custom opener
func NewLauncherWithOpener(opener Opener) *Launcher {
	return &Launcher{open: opener}
}

// Launch opens item with the system default handler
func Launch(item model.Item) error {
	return NewLauncher().Launch(item)
}

// Launch opens the item with its default application. Websites are opened
// in the browser; everything else must exist on disk.
func (l *Launcher) Launch(item model.Item) error {
	target := strings.TrimSpace(item.Path)
	if target == "" {
		return fmt.Errorf("item %q has no path", item.Name)
	}

	if item.Type == model.ItemTypeWebsite || IsURL(target) {
		return l.open(NormalizeURL(target))
	}

	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("cannot launch %q: %w", item.Name, err)
	}
	return l.open(target)
}

// IsURL reports whether s looks like an absolute web URL
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NormalizeURL adds https:// to bare host names such as "example.com"
func NormalizeURL(s string) string {
	if strings.Contains(s, "://") {
		return s
	}
	return "https://" + s
}

// ItemName derives a display name from the last path segment, accepting
// both / and \ separators
func ItemName(path string) string {
	trimmed := strings.TrimRight(path, `/\`)
	if IsURL(trimmed) {
		if u, err := url.Parse(trimmed); err == nil {
			return u.Host
		}
	}
	idx := strings.LastIndexAny(trimmed, `/\`)
	name := trimmed[idx+1:]
	if name == "" {
		return path
	}
	return name
}

// GuessItemType classifies path: URLs are websites, directories are
// folders, executables are applications and anything else is a document
func GuessItemType(path string) model.ItemType {
	if IsURL(path) {
		return model.ItemTypeWebsite
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() && !strings.EqualFold(filepath.Ext(path), ".app") {
			return model.ItemTypeFolder
		}
		if !info.IsDir() && info.Mode()&0o111 != 0 {
			return model.ItemTypeApplication
		}
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range ApplicationExtensions {
		if ext == candidate {
			return model.ItemTypeApplication
		}
	}
	return model.ItemTypeDocument
}

// ItemFromPath builds an item for a picked path. The type is guessed when
// itemType is empty.
func ItemFromPath(path string, itemType model.ItemType) model.Item {
	if itemType == "" {
		itemType = GuessItemType(path)
	}
	return model.Item{
		Name: ItemName(path),
		Type: itemType,
		Path: path,
	}
}
