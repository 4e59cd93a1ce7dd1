// Package shellcmd implements the `cataloger shell` command.
package shellcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	"github.com/go-ports/cataloger/internal/service"
	"github.com/go-ports/cataloger/internal/shell"
)

// Command implements `cataloger shell`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the shell command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive catalog menu",
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

	// Piped input gets a plain line reader; a terminal gets readline with
	// history next to the catalog document.
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		in := shell.NewReaderInput(cmd.InOrStdin(), cmd.OutOrStdout())
		return shell.New(svc, in, cmd.OutOrStdout()).Run()
	}

	in, err := shell.NewReadlineInput(filepath.Join(svc.CatalogHome, "shell_history"))
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	defer func() { _ = in.Close() }()

	return shell.New(svc, in, cmd.OutOrStdout()).Run()
}
