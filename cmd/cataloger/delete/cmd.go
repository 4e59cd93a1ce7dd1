// Package deletecmd implements the `cataloger delete` command.
package deletecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/service"
)

// Command implements `cataloger delete`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the delete command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete the first object matching name",
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

	ok, saveErr := svc.Delete(catalog.Normalize(args[0]))
	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "Object not found in the catalog!")
		return nil
	}
	if saveErr != nil {
		return saveErr
	}
	fmt.Fprintln(out, "Object successfully deleted from the catalog!")
	return nil
}
