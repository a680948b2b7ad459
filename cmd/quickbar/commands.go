package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ytget/quickbar/internal/model"
	"github.com/ytget/quickbar/internal/platform"
	"github.com/ytget/quickbar/internal/sidebar"
	"github.com/ytget/quickbar/internal/storage"
)

// Column widths of list output
const (
	NameColumnWidth = 32
	PathColumnWidth = 60
)

var (
	errGroupNotFound = errors.New("group not found")
	errItemNotFound  = errors.New("item not found")
)

// checkText rejects text that would not survive the JSON round trip
func checkText(field, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%s is not valid UTF-8: %q", field, s)
	}
	return nil
}

func (c *cli) state() *model.State {
	return c.rt.Store.State()
}

func (c *cli) group(id string) (*model.Group, error) {
	g, ok := c.state().Group(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errGroupNotFound, id)
	}
	return g, nil
}

func (c *cli) item(groupID, itemID string) (*model.Group, *model.Item, error) {
	g, err := c.group(groupID)
	if err != nil {
		return nil, nil, err
	}
	it, ok := g.Item(itemID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q in group %q", errItemNotFound, itemID, groupID)
	}
	return g, it, nil
}

// dispatch applies action and reports an unchanged state as an error
func (c *cli) dispatch(action sidebar.Action) error {
	if !c.rt.Store.Dispatch(action) {
		return fmt.Errorf("%s had no effect", action.Kind())
	}
	return nil
}

func newGroupsCmd(c *cli) *cobra.Command {
	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "List and edit groups",
	}

	listCmd := withStore(c, &cobra.Command{
		Use:   "list",
		Short: "List groups in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := c.state()
			active := ""
			if state.ActiveGroupID != nil {
				active = *state.ActiveGroupID
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tITEMS\tDISPLAY\tLAYOUT\t")
			for _, g := range state.Groups {
				marker := ""
				if g.ID == active {
					marker = "*"
				}
				fmt.Fprintf(w, "%s%s\t%s\t%d\t%s\t%s\t\n", g.ID, marker, fitColumn(g.Name, NameColumnWidth), len(g.Items), g.DisplayMode, g.Layout)
			}
			return w.Flush()
		},
	})

	addCmd := withStore(c, &cobra.Command{
		Use:   "add <name>",
		Short: "Append a group and make it active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkText("group name", args[0]); err != nil {
				return err
			}
			if err := c.dispatch(sidebar.AddGroup{Name: args[0]}); err != nil {
				return err
			}
			groups := c.state().Groups
			fmt.Fprintln(cmd.OutOrStdout(), groups[len(groups)-1].ID)
			return nil
		},
	})

	renameCmd := withStore(c, &cobra.Command{
		Use:   "rename <group-id> <name>",
		Short: "Rename a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkText("group name", args[1]); err != nil {
				return err
			}
			if _, err := c.group(args[0]); err != nil {
				return err
			}
			return c.dispatch(sidebar.RenameGroup{GroupID: args[0], Name: args[1]})
		},
	})

	rmCmd := withStore(c, &cobra.Command{
		Use:   "rm <group-id>",
		Short: "Remove a group and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.group(args[0]); err != nil {
				return err
			}
			return c.dispatch(sidebar.RemoveGroup{GroupID: args[0]})
		},
	})

	activateCmd := withStore(c, &cobra.Command{
		Use:   "activate <group-id>",
		Short: "Make a group the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.group(args[0]); err != nil {
				return err
			}
			c.rt.Store.Dispatch(sidebar.SetActiveGroup{GroupID: args[0]})
			return nil
		},
	})

	orderCmd := withStore(c, &cobra.Command{
		Use:   "order <group-id>...",
		Short: "Reorder groups; unlisted groups keep their relative order at the end",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.rt.Store.Dispatch(sidebar.ReorderGroups{GroupIDs: args})
			return nil
		},
	})

	groupsCmd.AddCommand(listCmd, addCmd, renameCmd, rmCmd, activateCmd, orderCmd)
	return groupsCmd
}

func newItemsCmd(c *cli) *cobra.Command {
	itemsCmd := &cobra.Command{
		Use:   "items",
		Short: "List and edit items",
	}

	listCmd := withStore(c, &cobra.Command{
		Use:   "list [group-id]",
		Short: "List items, optionally of one group, filtered by --query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, _ := cmd.Flags().GetString("query")
			state := c.state()

			groups := state.Groups
			if len(args) == 1 {
				g, err := c.group(args[0])
				if err != nil {
					return err
				}
				groups = []model.Group{*g}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "GROUP\tID\tNAME\tTYPE\tPATH\t")
			for _, g := range groups {
				for _, it := range sidebar.VisibleItems(g, query, state.SortBy) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", g.ID, it.ID, fitColumn(it.Name, NameColumnWidth), it.Type, fitColumn(it.Path, PathColumnWidth))
				}
			}
			return w.Flush()
		},
	})
	listCmd.Flags().String("query", "", "fuzzy filter on name and path")

	addCmd := withStore(c, &cobra.Command{
		Use:   "add <group-id> <path-or-url>",
		Short: "Add an item to a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			typ, _ := cmd.Flags().GetString("type")
			category, _ := cmd.Flags().GetString("category")

			for field, text := range map[string]string{"path": args[1], "name": name, "category": category} {
				if err := checkText(field, text); err != nil {
					return err
				}
			}

			itemType := model.ItemType(typ)
			if typ != "" && !itemType.IsValid() {
				return fmt.Errorf("invalid item type %q", typ)
			}
			g, err := c.group(args[0])
			if err != nil {
				return err
			}

			path := args[1]
			if itemType == model.ItemTypeWebsite {
				path = platform.NormalizeURL(path)
			}
			item := platform.ItemFromPath(path, itemType)
			if name != "" {
				item.Name = name
			}
			item.Category = category

			before := len(g.Items)
			if err := c.dispatch(sidebar.AddItem{GroupID: args[0], Item: item}); err != nil {
				return err
			}
			added, _ := c.state().Group(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), added.Items[before].ID)
			return nil
		},
	})
	addCmd.Flags().String("name", "", "display name (default: last path segment)")
	addCmd.Flags().String("type", "", "application, document, folder or website (default: guessed)")
	addCmd.Flags().String("category", "", "category used by category sorting")

	rmCmd := withStore(c, &cobra.Command{
		Use:   "rm <group-id> <item-id>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := c.item(args[0], args[1]); err != nil {
				return err
			}
			return c.dispatch(sidebar.RemoveItem{GroupID: args[0], ItemID: args[1]})
		},
	})

	mvCmd := withStore(c, &cobra.Command{
		Use:   "mv <from-group-id> <item-id> <to-group-id>",
		Short: "Move an item to another group, or to --index within a group",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, itemID, to := args[0], args[1], args[2]
			if _, _, err := c.item(from, itemID); err != nil {
				return err
			}
			if _, err := c.group(to); err != nil {
				return err
			}

			if cmd.Flags().Changed("index") {
				index, _ := cmd.Flags().GetInt("index")
				return c.dispatch(sidebar.MoveItemTo{FromGroupID: from, ToGroupID: to, ItemID: itemID, Index: index})
			}
			return c.dispatch(sidebar.MoveItem{FromGroupID: from, ToGroupID: to, ItemID: itemID})
		},
	})
	mvCmd.Flags().Int("index", 0, "destination position (default: append)")

	copyCmd := withStore(c, &cobra.Command{
		Use:   "copy <group-id> <item-id>",
		Short: "Copy an item's path or URL to the clipboard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, it, err := c.item(args[0], args[1])
			if err != nil {
				return err
			}
			if err := clipboard.WriteAll(it.Path); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), it.Path)
			return nil
		},
	})

	itemsCmd.AddCommand(listCmd, addCmd, rmCmd, mvCmd, copyCmd)
	return itemsCmd
}

// optionsView is the YAML rendering of the preferences
type optionsView struct {
	Visible              bool               `yaml:"visible"`
	Fixed                bool               `yaml:"fixed"`
	Position             model.Position     `yaml:"position"`
	Theme                model.Theme        `yaml:"theme"`
	AutoHideDelay        int                `yaml:"autoHideDelay"`
	Transparency         int                `yaml:"transparency"`
	AutoHideWhenInactive bool               `yaml:"autoHideWhenInactive"`
	SortBy               model.SortMode     `yaml:"sortBy"`
	ConfirmDeletion      bool               `yaml:"confirmDeletion"`
	RunAtStartup         bool               `yaml:"runAtStartup"`
	CheckUpdates         bool               `yaml:"checkUpdates"`
	Font                 model.FontSettings `yaml:"font"`
	DefaultGroup         string             `yaml:"defaultGroup"`
}

func newOptionsView(s *model.State) optionsView {
	return optionsView{
		Visible:              s.IsVisible,
		Fixed:                s.IsFixed,
		Position:             s.Position,
		Theme:                s.Theme,
		AutoHideDelay:        s.AutoHideDelay,
		Transparency:         s.Transparency,
		AutoHideWhenInactive: s.AutoHideWhenInactive,
		SortBy:               s.SortBy,
		ConfirmDeletion:      s.ConfirmDeletion,
		RunAtStartup:         s.RunAtStartup,
		CheckUpdates:         s.CheckUpdates,
		Font:                 s.Font,
		DefaultGroup:         s.DefaultGroup,
	}
}

func newOptionsCmd(c *cli) *cobra.Command {
	optionsCmd := &cobra.Command{
		Use:   "options",
		Short: "Show and change preferences",
	}

	showCmd := withStore(c, &cobra.Command{
		Use:   "show",
		Short: "Print preferences as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(newOptionsView(c.state())); err != nil {
				return err
			}
			return enc.Close()
		},
	})

	setCmd := withStore(c, &cobra.Command{
		Use:   "set",
		Short: "Change preferences; only the given flags are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFromFlags(cmd, c.state().Font)
			if err != nil {
				return err
			}
			if opts.IsEmpty() {
				return errors.New("no options given")
			}
			c.rt.Store.Dispatch(sidebar.UpdateOptions{Options: opts})
			return nil
		},
	})
	flags := setCmd.Flags()
	flags.String("position", "", "left or right")
	flags.String("theme", "", "light or dark")
	flags.String("sort", "", "manual, name, type, category or last_used")
	flags.Int("transparency", 0, "0 to 100")
	flags.Int("auto-hide-delay", 0, "milliseconds")
	flags.Bool("auto-hide", false, "hide when inactive")
	flags.Bool("fixed", false, "keep the sidebar pinned")
	flags.Bool("visible", false, "show the sidebar")
	flags.Bool("confirm-deletion", false, "ask before removing")
	flags.Bool("run-at-startup", false, "start at login")
	flags.Bool("check-updates", false, "check for updates")
	flags.Int("font-size", 0, "font size in points")
	flags.String("font-family", "", "font family")
	flags.String("default-group", "", "group new items are added to")

	optionsCmd.AddCommand(showCmd, setCmd)
	return optionsCmd
}

// optionsFromFlags converts the changed flags of cmd into partial options.
// Font flags are applied over current.
func optionsFromFlags(cmd *cobra.Command, current model.FontSettings) (model.Options, error) {
	var opts model.Options
	flags := cmd.Flags()

	if flags.Changed("position") {
		v, _ := flags.GetString("position")
		p := model.Position(v)
		if !p.IsValid() {
			return opts, fmt.Errorf("invalid position %q", v)
		}
		opts.Position = &p
	}
	if flags.Changed("theme") {
		v, _ := flags.GetString("theme")
		t := model.Theme(v)
		if !t.IsValid() {
			return opts, fmt.Errorf("invalid theme %q", v)
		}
		opts.Theme = &t
	}
	if flags.Changed("sort") {
		v, _ := flags.GetString("sort")
		m := model.SortMode(v)
		if !m.IsValid() {
			return opts, fmt.Errorf("invalid sort mode %q", v)
		}
		opts.SortBy = &m
	}
	if flags.Changed("transparency") {
		v, _ := flags.GetInt("transparency")
		if v < 0 || v > 100 {
			return opts, fmt.Errorf("transparency must be between 0 and 100, got %d", v)
		}
		opts.Transparency = &v
	}
	if flags.Changed("auto-hide-delay") {
		v, _ := flags.GetInt("auto-hide-delay")
		if v < 0 {
			return opts, fmt.Errorf("auto-hide delay must not be negative, got %d", v)
		}
		opts.AutoHideDelay = &v
	}
	if flags.Changed("font-size") || flags.Changed("font-family") {
		font := current
		if flags.Changed("font-size") {
			font.Size, _ = flags.GetInt("font-size")
			if font.Size <= 0 {
				return opts, fmt.Errorf("font size must be positive, got %d", font.Size)
			}
		}
		if flags.Changed("font-family") {
			font.Family, _ = flags.GetString("font-family")
		}
		opts.Font = &font
	}
	if flags.Changed("default-group") {
		v, _ := flags.GetString("default-group")
		opts.DefaultGroup = &v
	}

	boolFlags := map[string]**bool{
		"auto-hide":        &opts.AutoHideWhenInactive,
		"fixed":            &opts.IsFixed,
		"visible":          &opts.IsVisible,
		"confirm-deletion": &opts.ConfirmDeletion,
		"run-at-startup":   &opts.RunAtStartup,
		"check-updates":    &opts.CheckUpdates,
	}
	for name, field := range boolFlags {
		if flags.Changed(name) {
			v, _ := flags.GetBool(name)
			*field = &v
		}
	}

	return opts, nil
}

func newExportCmd(c *cli) *cobra.Command {
	return withStore(c, &cobra.Command{
		Use:   "export",
		Short: "Print the persisted state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := storage.EncodeState(c.state())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	})
}

func newImportCmd(c *cli) *cobra.Command {
	return withStore(c, &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the state with an exported JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			state, err := storage.DecodeState(data)
			if err != nil {
				return err
			}
			if err := storage.NewBlobPersister(c.rt.KV).Save(state); err != nil {
				return err
			}
			c.rt.Store.Reload()

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d groups, %d items\n", len(state.Groups), state.ItemCount())
			return nil
		},
	})
}

func newOpenCmd(c *cli) *cobra.Command {
	return withStore(c, &cobra.Command{
		Use:   "open <group-id> <item-id>",
		Short: "Open an item with its default application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, it, err := c.item(args[0], args[1])
			if err != nil {
				return err
			}
			if err := platform.Launch(*it); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", it.Name)
			return nil
		},
	})
}

// fitColumn truncates s to width terminal cells. Wide runes count double.
func fitColumn(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
