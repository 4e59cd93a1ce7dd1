// Package listcmd implements the `cataloger list` command.
package listcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/render"
	"github.com/go-ports/cataloger/internal/service"
)

// Command implements `cataloger list`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	format    string
	container string
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "list",
		Short: "List every object in the catalog with its location",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.format, "format", "", "Output format: table, json, or md (default from config)")
	f.StringVar(&c.container, "container", "", "List only the subtree of the named container")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := service.New(c.ctx.CatalogHome)
	if err != nil {
		return err
	}

	format := c.format
	if format == "" {
		format = svc.Config.Display.Format
	}

	rows := svc.ListAll()
	if c.container != "" {
		var ok bool
		rows, ok = svc.ListContainer(catalog.Normalize(c.container))
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Container %q not found in the catalog.\n", c.container)
			return nil
		}
	}

	return render.Rows(cmd.OutOrStdout(), rows, format)
}
