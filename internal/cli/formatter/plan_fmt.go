package formatter

import (
	"strings"

	"github.com/alexanderramin/milkround/internal/domain"
)

// FormatPlan renders the recurring schedule against the full catalog, so
// products without a line show as zero.
func FormatPlan(s domain.Schedule, products []domain.Product) string {
	var b strings.Builder
	b.WriteString(Header("Daily plan"))
	b.WriteString("\n")

	var liters, amount float64
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		l, _ := s.Line(p.ID)
		total := l.Total()
		liters += total
		amount += total * p.PricePerLiter
		rows = append(rows, []string{
			Bold(p.Name),
			Dim(FormatPrice(p.PricePerLiter)),
			quantityCell(l.LitersMorning),
			quantityCell(l.LitersEvening),
			FormatMoney(total * p.PricePerLiter),
		})
	}
	b.WriteString(RenderTableAligned(
		[]string{"PRODUCT", "PRICE", "MORNING", "EVENING", "PER DAY"}, rows,
		[]bool{false, true, true, true, true}))
	b.WriteString("\n")

	if liters == 0 {
		b.WriteString(Dim("No standing order. Use `milkround plan set` to add one."))
	} else {
		b.WriteString(Dim("Every day ") + Bold(FormatLiters(liters)+" · "+FormatMoney(amount)))
	}
	b.WriteString("\n")
	return b.String()
}
