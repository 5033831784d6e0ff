package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/milkround/internal/cli/formatter"
	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "day [date]",
		Aliases: []string{"today"},
		Short:   "Show the effective order for a day (default today)",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.today()
			date := today
			if len(args) == 1 {
				var err error
				if date, err = parseDateArg(args[0], today); err != nil {
					return err
				}
			}
			return printDay(cmd, app, date)
		},
	}
}

func printDay(cmd *cobra.Command, app *App, date domain.Date) error {
	view, err := app.Days.Resolve(context.Background(), date)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(view, app.today()))
	return nil
}

func newSkipCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "skip <product>",
		Short: "Skip a product's delivery for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, date, err := productAndDate(app, args[0], dateFlag)
			if err != nil {
				return err
			}
			if err := app.Overrides.Skip(context.Background(), date, productID); err != nil {
				return err
			}
			return printDay(cmd, app, date)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "today", "Day to change")

	return cmd
}

func newAdjustCmd(app *App) *cobra.Command {
	var dateFlag string
	var morning, evening float64

	cmd := &cobra.Command{
		Use:   "adjust <product>",
		Short: "Replace a product's quantities for one day",
		Long:  "Replace a product's quantities for one day. The plan is ignored for that day; 0/0 means none.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, date, err := productAndDate(app, args[0], dateFlag)
			if err != nil {
				return err
			}
			if err := app.Overrides.Adjust(context.Background(), date, productID, morning, evening); err != nil {
				return err
			}
			return printDay(cmd, app, date)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "today", "Day to change")
	cmd.Flags().Float64Var(&morning, "morning", 0, "Liters in the morning")
	cmd.Flags().Float64Var(&evening, "evening", 0, "Liters in the evening")

	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "reset <product>",
		Short: "Drop a day's change so the plan applies again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, date, err := productAndDate(app, args[0], dateFlag)
			if err != nil {
				return err
			}
			if err := app.Overrides.Reset(context.Background(), date, productID); err != nil {
				return err
			}
			return printDay(cmd, app, date)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "today", "Day to change")

	return cmd
}

func productAndDate(app *App, product, dateFlag string) (string, domain.Date, error) {
	productID, err := resolveProductID(app, product)
	if err != nil {
		return "", domain.Date{}, err
	}
	date, err := parseDateArg(dateFlag, app.today())
	if err != nil {
		return "", domain.Date{}, err
	}
	return productID, date, nil
}

func newHistoryCmd(app *App) *cobra.Command {
	var dateFlag string
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show delivered liters for the days before a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.today()
			date, err := parseDateArg(dateFlag, today)
			if err != nil {
				return err
			}
			req := contract.NewHistoryRequest(date)
			req.Days = app.historyDays()
			if cmd.Flags().Changed("days") {
				req.Days = days
			}

			resp, err := app.Days.History(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(resp, today))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "today", "Day the history ends before")
	cmd.Flags().IntVar(&days, "days", 0, "Number of days to show (default from MILKROUND_HISTORY_DAYS)")

	return cmd
}
