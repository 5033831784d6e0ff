package cli

import (
	"fmt"

	"github.com/alexanderramin/milkround/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"products"},
		Short:   "List orderable products and prices",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(app.Catalog.Products()))
			return nil
		},
	}
}
