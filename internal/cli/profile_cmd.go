package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/milkround/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the customer profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showProfile(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the customer profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showProfile(cmd, app)
			},
		},
		newProfileSetCmd(app),
	)

	return cmd
}

func showProfile(cmd *cobra.Command, app *App) error {
	p, err := app.Customers.Get(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
	return nil
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, phone, since string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update name, phone or start date",
		Long:  "Update name, phone or start date. Only the flags given are changed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Customers.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("phone") {
				p.Phone = phone
			}
			if cmd.Flags().Changed("since") {
				p.StartedOn, err = parseOptionalDate(since, app.today())
				if err != nil {
					return err
				}
			}

			if err := app.Customers.Save(ctx, p); err != nil {
				return err
			}
			return showProfile(cmd, app)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Customer name")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&since, "since", "", "First delivery day; empty clears it")

	return cmd
}
