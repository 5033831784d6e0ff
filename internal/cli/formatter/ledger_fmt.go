package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
)

const statementBarWidth = 10

// FormatStatement renders per-month purchased, paid and due amounts.
func FormatStatement(resp *contract.StatementResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Statement %s to %s", resp.From, resp.To)))
	b.WriteString("\n")

	if len(resp.Months) == 0 {
		b.WriteString(Dim("No deliveries or payments in this period."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Months)+1)
	for _, m := range resp.Months {
		rows = append(rows, []string{
			Bold(m.Month.String()),
			FormatLiters(m.Liters),
			FormatDecimal(m.Purchased),
			FormatDecimal(m.Paid),
			dueCell(m.Due.InexactFloat64(), FormatDecimal(m.Due)),
			RenderProgress(PaidRatio(m.Paid.InexactFloat64(), m.Purchased.InexactFloat64()), statementBarWidth),
		})
	}
	rows = append(rows, []string{
		StyleHeader.Render("Total"),
		Bold(FormatLiters(resp.TotalLiters)),
		Bold(FormatDecimal(resp.TotalPurchased)),
		Bold(FormatDecimal(resp.TotalPaid)),
		dueCell(resp.TotalDue.InexactFloat64(), FormatDecimal(resp.TotalDue)),
		"",
	})

	b.WriteString(RenderTableAligned(
		[]string{"MONTH", "LITERS", "PURCHASED", "PAID", "DUE", "PAID SHARE"}, rows,
		[]bool{false, true, true, true, true, false}))
	return b.String()
}

func dueCell(due float64, text string) string {
	switch {
	case due > 0:
		return StyleRed.Render(text)
	case due < 0:
		return StyleGreen.Render(text + " credit")
	default:
		return StyleGreen.Render(text)
	}
}

// FormatPayments lists recorded payments, newest first.
func FormatPayments(payments []*domain.Payment) string {
	if len(payments) == 0 {
		return Dim("No payments recorded.") + "\n"
	}
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			TruncID(p.ID),
			p.PaidOn.String(),
			Bold(FormatMoney(p.Amount)),
			StylePurple.Render(p.Method),
			Dim(p.Note),
		})
	}
	return Header("Payments") + "\n" +
		RenderTableAligned([]string{"ID", "DATE", "AMOUNT", "METHOD", "NOTE"}, rows, []bool{false, false, true})
}
