// Package searchcmd implements the `cataloger search` command.
package searchcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/service"
)

// Command implements `cataloger search`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the search command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "search <name>",
		Short: "Find an object by name and show where it lives",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := service.New(c.ctx.CatalogHome)
	if err != nil {
		return err
	}

	found, ok := svc.Search(catalog.Normalize(args[0]))
	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "Object not found in the catalog!")
		return nil
	}

	fmt.Fprintf(out, "Name: %s\n", found.Name)
	fmt.Fprintf(out, "Category: %s\n", found.Category)
	fmt.Fprintf(out, "Location: %s\n", found.Location)
	return nil
}
