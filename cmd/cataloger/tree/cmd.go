// Package treecmd implements the `cataloger tree` command.
package treecmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/render"
	"github.com/go-ports/cataloger/internal/service"
)

// Command implements `cataloger tree`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the tree command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "tree",
		Short: "Show the container hierarchy as an outline",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := service.New(c.ctx.CatalogHome)
	if err != nil {
		return err
	}

	render.Tree(cmd.OutOrStdout(), svc.Root())
	return nil
}
