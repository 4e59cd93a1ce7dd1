// Package querycmd implements the `cataloger query` command.
package querycmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/service"
)

// Command implements `cataloger query`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the query command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "Evaluate a JSONPath expression against the catalog document",
		Long: `Evaluate a JSONPath expression against the catalog document.

Examples:
  cataloger query '$.containers[0].name'
  cataloger query '$.containers[0].objects[*].name'`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
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

	out, err := svc.QueryDocument(args[0])
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
