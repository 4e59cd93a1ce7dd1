// Package configcmd implements the `cataloger config` command group.
package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/config"
)

const configTemplate = `# Cataloger configuration

# How listings are presented.
display:
  format: table                 # table | json | md
  separator: " > "              # joins location path segments

# Name given to the root container of a fresh catalog.
root:
  name: house
`

// Command implements `cataloger config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		RunE:  c.runShow,
	}
	c.cmd.AddCommand(
		newConfigInit(ctx),
		newSetHome(ctx),
		newClearHome(ctx),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	home, source := config.ResolveCatalogHome()
	if c.ctx.CatalogHome != "" {
		home = c.ctx.CatalogHome
		source = "flag"
	}
	cfg, err := config.Load(filepath.Join(home, "config.yaml"))
	if err != nil {
		return err
	}
	data := map[string]any{
		"display": map[string]any{
			"format":    cfg.Display.Format,
			"separator": cfg.Display.Separator,
		},
		"root": map[string]any{
			"name": cfg.Root.Name,
		},
		"catalog_home":        home,
		"catalog_home_source": source,
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

// ---------------------------------------------------------------------------
// config init
// ---------------------------------------------------------------------------

func newConfigInit(ctx *shared.Context) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a starter config.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			home := ctx.CatalogHome
			if home == "" {
				home = config.GetCatalogHome()
			}
			if err := os.MkdirAll(home, 0o755); err != nil {
				return err
			}
			path := filepath.Join(home, "config.yaml")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config init: %s already exists (use --force to overwrite)", path)
			}
			if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config.yaml")
	return cmd
}

// ---------------------------------------------------------------------------
// config set-home / clear-home
// ---------------------------------------------------------------------------

func newSetHome(_ *shared.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "set-home <path>",
		Short: "Persist the catalog home directory in the global config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized, err := config.SetPersistedCatalogHome(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog home set to %s\n", normalized)
			return nil
		},
	}
}

func newClearHome(_ *shared.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-home",
		Short: "Remove the persisted catalog home from the global config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed, err := config.ClearPersistedCatalogHome()
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog home cleared.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No catalog home was set.")
			}
			return nil
		},
	}
}
