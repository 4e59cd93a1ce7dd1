// Package addcmd implements the `cataloger add` command.
package addcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/service"
)

// Command implements `cataloger add`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	category     string
	container    string
	newContainer string
	parent       string
}

// New creates the add command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "add <name>",
		Short: "Add an object to a container",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.category, "category", "", "Category label for the object (required)")
	f.StringVar(&c.container, "container", "", "Existing container to add the object to")
	f.StringVar(&c.newContainer, "new-container", "", "Create this container for the object (requires --parent)")
	f.StringVar(&c.parent, "parent", "", "Existing container the new container is created under")
	_ = c.cmd.MarkFlagRequired("category")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := service.New(c.ctx.CatalogHome)
	if err != nil {
		return err
	}

	obj := &catalog.Object{
		Name:     catalog.Normalize(args[0]),
		Category: catalog.Normalize(c.category),
	}
	out := cmd.OutOrStdout()

	switch {
	case c.newContainer != "":
		if c.parent == "" {
			return fmt.Errorf("add: --new-container requires --parent")
		}
		parent := catalog.Normalize(c.parent)
		ok, saveErr := svc.AddToNewContainer(parent, catalog.Normalize(c.newContainer), obj)
		if !ok {
			fmt.Fprintf(out, "Container %q not found in the catalog.\n", parent)
			return nil
		}
		if saveErr != nil {
			return saveErr
		}
		fmt.Fprintln(out, "New container and object successfully added to the catalog!")

	case c.container != "":
		container := catalog.Normalize(c.container)
		ok, saveErr := svc.Add(container, obj)
		if !ok {
			fmt.Fprintf(out, "Container %q not found in the catalog.\n", container)
			return nil
		}
		if saveErr != nil {
			return saveErr
		}
		fmt.Fprintln(out, "Object successfully added to the catalog!")

	default:
		return fmt.Errorf("add: either --container or --new-container is required")
	}

	return nil
}
