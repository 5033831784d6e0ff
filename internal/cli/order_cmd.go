package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/milkround/internal/cli/formatter"
	"github.com/alexanderramin/milkround/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// orderLineArg is one unresolved --line value.
type orderLineArg struct {
	product string
	morning float64
	evening float64
}

// orderLinesFlag collects repeated --line product=morning:evening values.
type orderLinesFlag struct {
	args []orderLineArg
}

var _ pflag.Value = (*orderLinesFlag)(nil)

func (f *orderLinesFlag) String() string {
	parts := make([]string, 0, len(f.args))
	for _, a := range f.args {
		parts = append(parts, fmt.Sprintf("%s=%s:%s", a.product, formatLitersInput(a.morning), formatLitersInput(a.evening)))
	}
	return strings.Join(parts, ",")
}

func (f *orderLinesFlag) Type() string { return "product=am:pm" }

// Set parses "cow=1:0.5". The evening part is optional ("cow=1"), and
// either side may be empty ("cow=:1").
func (f *orderLinesFlag) Set(v string) error {
	product, qty, ok := strings.Cut(v, "=")
	product = strings.TrimSpace(product)
	if !ok || product == "" {
		return fmt.Errorf("expected product=morning:evening, got %q", v)
	}
	am, pm, _ := strings.Cut(qty, ":")
	morning, err := parseLiters(am)
	if err != nil {
		return fmt.Errorf("%s morning: %w", product, err)
	}
	evening, err := parseLiters(pm)
	if err != nil {
		return fmt.Errorf("%s evening: %w", product, err)
	}
	f.args = append(f.args, orderLineArg{product: product, morning: morning, evening: evening})
	return nil
}

func newOrderCmd(app *App) *cobra.Command {
	var dateFlag string
	var morning, evening, interactive bool
	lines := &orderLinesFlag{}

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place a one-day order for several products at once",
		Long: `Place a one-day order for several products at once.

Every line becomes that day's quantity for the product, replacing the plan.
Shifts that are not selected are ordered as 0. All lines are stored together
or not at all.`,
		Example: `  milkround order --line cow=1:0.5 --line a2=0.5 --evening-shift
  milkround order --date tomorrow --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.today()
			date, err := parseDateArg(dateFlag, today)
			if err != nil {
				return err
			}

			req := contract.NewQuickOrderRequest(date)
			req.Morning = morning
			req.Evening = evening

			if interactive {
				if !app.interactive() {
					return errors.New("interactive order needs a terminal; use --line instead")
				}
				return runQuickOrder(cmd, app, req)
			}

			if len(lines.args) == 0 {
				return errors.New("at least one --line is required (or use --interactive)")
			}
			for _, arg := range lines.args {
				productID, err := resolveProductID(app, arg.product)
				if err != nil {
					return err
				}
				req.Lines = append(req.Lines, contract.QuickOrderLine{
					ProductID:     productID,
					LitersMorning: arg.morning,
					LitersEvening: arg.evening,
				})
			}

			resp, err := app.Overrides.QuickOrder(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuickOrder(resp, app.Catalog.Products()))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "today", "Day to order for")
	cmd.Flags().BoolVar(&morning, "morning-shift", true, "Deliver the morning quantities")
	cmd.Flags().BoolVar(&evening, "evening-shift", false, "Deliver the evening quantities")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick quantities on an interactive screen")
	cmd.Flags().Var(lines, "line", "Product quantities as product=morning:evening (repeatable)")

	return cmd
}

func runQuickOrder(cmd *cobra.Command, app *App, req contract.QuickOrderRequest) error {
	model := newQuickOrderModel(context.Background(), app, req)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running quick order: %w", err)
	}

	m := final.(*quickOrderModel)
	switch {
	case m.placed != nil:
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuickOrder(m.placed, app.Catalog.Products()))
	case m.err != nil:
		return m.err
	default:
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No order placed."))
	}
	return nil
}
