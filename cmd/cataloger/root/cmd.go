// Package rootcmd wires the root cobra.Command for the cataloger CLI binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	addcmd "github.com/go-ports/cataloger/cmd/cataloger/add"
	configcmd "github.com/go-ports/cataloger/cmd/cataloger/config"
	deletecmd "github.com/go-ports/cataloger/cmd/cataloger/delete"
	editcmd "github.com/go-ports/cataloger/cmd/cataloger/edit"
	initcmd "github.com/go-ports/cataloger/cmd/cataloger/init"
	listcmd "github.com/go-ports/cataloger/cmd/cataloger/list"
	mcpcmd "github.com/go-ports/cataloger/cmd/cataloger/mcp"
	querycmd "github.com/go-ports/cataloger/cmd/cataloger/query"
	searchcmd "github.com/go-ports/cataloger/cmd/cataloger/search"
	"github.com/go-ports/cataloger/cmd/cataloger/shared"
	shellcmd "github.com/go-ports/cataloger/cmd/cataloger/shell"
	treecmd "github.com/go-ports/cataloger/cmd/cataloger/tree"
)

// New creates and returns the root cobra.Command for the cataloger CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "cataloger",
		Short:         "Cataloger keeps a household object inventory as a tree of containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().StringVar(
		&ctx.CatalogHome, "catalog-home", "",
		"Override catalog home directory (default: $CATALOG_HOME, persisted config, or ~/.cataloger)",
	)

	root.AddCommand(
		initcmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		searchcmd.New(ctx).Cmd(),
		addcmd.New(ctx).Cmd(),
		editcmd.New(ctx).Cmd(),
		deletecmd.New(ctx).Cmd(),
		treecmd.New(ctx).Cmd(),
		querycmd.New(ctx).Cmd(),
		shellcmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
	)

	return root
}
