// Package editcmd implements the `cataloger edit` command.
package editcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/service"
)

// Command implements `cataloger edit`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	newName     string
	newCategory string
}

// New creates the edit command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "edit <name>",
		Short: "Rename and/or recategorize an object",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.newName, "name", "", "New name for the object (blank keeps the current one)")
	f.StringVar(&c.newCategory, "category", "", "New category for the object (blank keeps the current one)")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := service.New(c.ctx.CatalogHome)
	if err != nil {
		return err
	}

	ok, saveErr := svc.Modify(
		catalog.Normalize(args[0]),
		catalog.Normalize(c.newName),
		catalog.Normalize(c.newCategory),
	)
	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "Object not found in the catalog!")
		return nil
	}
	if saveErr != nil {
		return saveErr
	}
	fmt.Fprintln(out, "Object successfully modified in the catalog!")
	return nil
}
