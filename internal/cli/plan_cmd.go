package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/milkround/internal/cli/formatter"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show or change the standing daily order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showPlan(cmd, app)
		},
	}

	cmd.AddCommand(
		newPlanShowCmd(app),
		newPlanSetCmd(app),
		newPlanStepCmd(app),
		newPlanEditCmd(app),
	)

	return cmd
}

func showPlan(cmd *cobra.Command, app *App) error {
	s, err := app.Schedule.Get(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(s, app.Catalog.Products()))
	return nil
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the standing daily order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showPlan(cmd, app)
		},
	}
}

func newPlanSetCmd(app *App) *cobra.Command {
	var morning, evening float64

	cmd := &cobra.Command{
		Use:   "set <product>",
		Short: "Set the daily liters for one product",
		Long:  "Set the daily liters for one product. Setting both shifts to 0 removes the product from the plan.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := resolveProductID(app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Schedule.SetLine(context.Background(), productID, morning, evening)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(s, app.Catalog.Products()))
			return nil
		},
	}

	cmd.Flags().Float64Var(&morning, "morning", 0, "Liters delivered in the morning")
	cmd.Flags().Float64Var(&evening, "evening", 0, "Liters delivered in the evening")

	return cmd
}

func newPlanStepCmd(app *App) *cobra.Command {
	var shiftFlag string
	var delta float64
	var down bool

	cmd := &cobra.Command{
		Use:   "step <product>",
		Short: "Step one shift of a product up or down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := resolveProductID(app, args[0])
			if err != nil {
				return err
			}
			shift, err := domain.ParseShift(shiftFlag)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("delta") {
				delta = app.stepLiters()
			}
			if down {
				delta = -delta
			}
			s, err := app.Schedule.Step(context.Background(), productID, shift, delta)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(s, app.Catalog.Products()))
			return nil
		},
	}

	cmd.Flags().StringVar(&shiftFlag, "shift", "morning", "Shift to change (morning|evening)")
	cmd.Flags().Float64Var(&delta, "delta", 0, "Liters to add; negative to remove (default: configured step)")
	cmd.Flags().BoolVar(&down, "down", false, "Step down instead of up")

	return cmd
}

func newPlanEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the whole plan in a form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("plan edit needs an interactive terminal; use `milkround plan set` instead")
			}
			ctx := context.Background()
			current, err := app.Schedule.Get(ctx)
			if err != nil {
				return err
			}

			inputs := newPlanInputs(app.Catalog.Products(), current)
			if err := wizardEditPlan(inputs).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Plan unchanged."))
					return nil
				}
				return err
			}

			next, err := inputs.schedule()
			if err != nil {
				return err
			}
			if err := app.Schedule.Save(ctx, next); err != nil {
				return err
			}
			return showPlan(cmd, app)
		},
	}
}
