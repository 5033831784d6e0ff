package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/milkround/internal/cli/formatter"
	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

func newPayCmd(app *App) *cobra.Command {
	var amount float64
	var dateFlag, method, note string

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Record a payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(dateFlag, app.today())
			if err != nil {
				return err
			}
			p := &domain.Payment{
				PaidOn: date,
				Amount: amount,
				Method: method,
				Note:   note,
			}
			if err := app.Ledger.RecordPayment(context.Background(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s on %s by %s (%s)\n",
				formatter.FormatMoney(p.Amount), p.PaidOn, p.Method, formatter.TruncID(p.ID))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount paid")
	cmd.Flags().StringVar(&dateFlag, "date", "today", "Day the payment was made")
	cmd.Flags().StringVar(&method, "method", "", "Payment method (default cash)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPaymentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List recorded payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payments, err := app.Ledger.ListPayments(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPayments(payments))
			return nil
		},
	}

	cmd.AddCommand(newPaymentsRemoveCmd(app))

	return cmd
}

func newPaymentsRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a recorded payment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePaymentID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return errors.New("refusing to remove without --yes outside a terminal")
				}
				confirmed := false
				if err := wizardConfirm("Remove payment "+formatter.TruncID(id)+"?", &confirmed).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := app.Ledger.DeletePayment(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed payment %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

// resolvePaymentID accepts a full payment ID or a unique prefix of one, as
// printed by `milkround payments`.
func resolvePaymentID(ctx context.Context, app *App, input string) (string, error) {
	payments, err := app.Ledger.ListPayments(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, p := range payments {
		if p.ID == input {
			return p.ID, nil
		}
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("payment %q not found", input)
	default:
		return "", fmt.Errorf("payment prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// statementCSVRow is one exported month of a statement.
type statementCSVRow struct {
	Month     string `csv:"month"`
	Liters    string `csv:"liters"`
	Purchased string `csv:"purchased"`
	Paid      string `csv:"paid"`
	Due       string `csv:"due"`
}

func statementCSVRows(resp *contract.StatementResponse) []*statementCSVRow {
	rows := make([]*statementCSVRow, 0, len(resp.Months))
	for _, m := range resp.Months {
		rows = append(rows, &statementCSVRow{
			Month:     m.Month.String(),
			Liters:    formatLitersInputOrZero(m.Liters),
			Purchased: m.Purchased.StringFixed(2),
			Paid:      m.Paid.StringFixed(2),
			Due:       m.Due.StringFixed(2),
		})
	}
	return rows
}

func writeStatementCSV(w io.Writer, resp *contract.StatementResponse) error {
	if err := gocsv.Marshal(statementCSVRows(resp), w); err != nil {
		return fmt.Errorf("writing statement csv: %w", err)
	}
	return nil
}

func newStatementCmd(app *App) *cobra.Command {
	var fromFlag, toFlag, csvPath string

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Show purchased, paid and due amounts per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.today()
			from, err := parseOptionalDate(fromFlag, today)
			if err != nil {
				return err
			}
			to, err := parseOptionalDate(toFlag, today)
			if err != nil {
				return err
			}

			resp, err := app.Ledger.Statement(context.Background(), contract.StatementRequest{From: from, To: to})
			if err != nil {
				return err
			}

			switch csvPath {
			case "":
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatement(resp))
				return nil
			case "-":
				return writeStatementCSV(cmd.OutOrStdout(), resp)
			}

			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", csvPath, err)
			}
			if err := writeStatementCSV(f, resp); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", csvPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d months to %s\n", len(resp.Months), csvPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "First day (default: customer start date)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Last day (default: today)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write months as CSV to a file ('-' for stdout)")

	return cmd
}
