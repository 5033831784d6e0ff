package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
)

var dayAlign = []bool{false, true, true, true, true, false}

// FormatDay renders the effective order for one day.
func FormatDay(view *contract.DayView, today domain.Date) string {
	var b strings.Builder
	b.WriteString(Header("Order for " + HumanDate(view.Date, today)))
	b.WriteString("\n")

	rows := make([][]string, 0, len(view.Rows))
	for _, r := range view.Rows {
		rows = append(rows, []string{
			Bold(r.Product.Name),
			quantityCell(r.LitersMorning),
			quantityCell(r.LitersEvening),
			quantityCell(r.Total()),
			FormatMoney(r.Amount()),
			SourcePill(r.Source),
		})
	}
	b.WriteString(RenderTableAligned(
		[]string{"PRODUCT", "MORNING", "EVENING", "TOTAL", "AMOUNT", "SOURCE"}, rows, dayAlign))
	b.WriteString("\n")

	if view.TotalLiters() == 0 {
		b.WriteString(Dim("No delivery for this day."))
	} else {
		b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
			Dim("Morning"), FormatLiters(view.LitersMorning),
			Dim("Evening"), FormatLiters(view.LitersEvening),
			Dim("Total"), Bold(FormatLiters(view.TotalLiters())+" · "+FormatMoney(view.Amount)),
		))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatHistory renders the days before the viewed date, newest first.
func FormatHistory(resp *contract.HistoryResponse, today domain.Date) string {
	rows := make([][]string, 0, len(resp.Days))
	for _, d := range resp.Days {
		liters, amount := Dim("No order"), Dim("--")
		if !d.NoOrder() {
			liters, amount = FormatLiters(d.Liters), FormatMoney(d.Amount)
		}
		rows = append(rows, []string{HumanDate(d.Date, today), Dim(d.Date.String()), liters, amount})
	}
	return Header("Recent days") + "\n" +
		RenderTableAligned([]string{"DAY", "DATE", "LITERS", "AMOUNT"}, rows, []bool{false, false, true, true})
}

// FormatQuickOrder confirms a placed quick order.
func FormatQuickOrder(resp *contract.QuickOrderResponse, products []domain.Product) string {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	rows := make([][]string, 0, len(resp.Overrides))
	for _, o := range resp.Overrides {
		name := names[o.ProductID]
		if name == "" {
			name = o.ProductID
		}
		rows = append(rows, []string{Bold(name), quantityCell(o.LitersMorning), quantityCell(o.LitersEvening)})
	}

	var b strings.Builder
	b.WriteString(Header("Order placed for " + resp.Date.String()))
	b.WriteString("\n")
	b.WriteString(RenderTableAligned([]string{"PRODUCT", "MORNING", "EVENING"}, rows, []bool{false, true, true}))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("Total liters"), Bold(FormatLiters(resp.TotalLiters)),
		Dim("Total amount"), Bold(FormatMoney(resp.TotalAmount))))
	return b.String()
}

func quantityCell(l float64) string {
	if l == 0 {
		return Dim("0")
	}
	return FormatLiters(l)
}
