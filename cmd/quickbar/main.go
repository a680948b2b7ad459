package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/quickbar/internal/bootstrap"
	"github.com/ytget/quickbar/internal/storage"
)

// cli holds the runtime opened for the current command
type cli struct {
	configDir string
	backend   string

	rt *bootstrap.Runtime
}

func (c *cli) open(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.Open(bootstrap.Options{
		Dir:     c.configDir,
		Backend: storage.Backend(c.backend),
	})
	if err != nil {
		return err
	}
	c.rt = rt
	return nil
}

func (c *cli) close(cmd *cobra.Command, args []string) error {
	if c.rt == nil {
		return nil
	}
	err := c.rt.Close()
	c.rt = nil
	return err
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "quickbar",
		Short:         "Manage quick launcher groups and items",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&c.configDir, "config", "", "config directory (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&c.backend, "backend", "", "storage backend override (file, sqlite, memory)")

	rootCmd.AddCommand(
		newGroupsCmd(c),
		newItemsCmd(c),
		newOptionsCmd(c),
		newExportCmd(c),
		newImportCmd(c),
		newOpenCmd(c),
	)
	return rootCmd
}

// withStore marks cmd as needing an opened store
func withStore(c *cli, cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = c.open
	cmd.PostRunE = c.close
	return cmd
}

// run executes the command line in args. The store is closed even when a
// command fails.
func run(args []string, in io.Reader, out io.Writer) error {
	c := &cli{}
	defer c.close(nil, nil)

	rootCmd := newRootCmd(c)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	return rootCmd.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
