// Package initcmd implements the `cataloger init` command.
package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/config"
	"github.com/go-ports/cataloger/internal/store"
)

// Command implements `cataloger init`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	force bool
}

// New creates the init command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize the catalog home with a starter catalog",
		RunE:  c.run,
	}
	c.cmd.Flags().BoolVar(&c.force, "force", false, "Overwrite an existing catalog document")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	home := c.ctx.CatalogHome
	if home == "" {
		home = config.GetCatalogHome()
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	path := filepath.Join(home, "catalog.json")
	if _, err := os.Stat(path); err == nil && !c.force {
		return fmt.Errorf("init: %s already exists (use --force to overwrite)", path)
	}

	if err := store.Save(store.Starter(), path); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Catalog initialized at %s\n", home)
	return nil
}
