package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay names d relative to today: "Today", "Tomorrow", "3d ago".
func RelativeDay(d, today domain.Date) string {
	days := today.DaysUntil(d)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0:
		return fmt.Sprintf("In %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// HumanDate renders d like "Fri, Mar 15 2024", or a relative name when d is
// within a day of today.
func HumanDate(d, today domain.Date) string {
	if days := today.DaysUntil(d); days >= -1 && days <= 1 {
		return RelativeDay(d, today)
	}
	return d.Time().Format("Mon, Jan 2 2006")
}

// FormatLiters renders a quantity like "1.5 L", dropping needless zeros.
func FormatLiters(l float64) string {
	return strconv.FormatFloat(l, 'f', -1, 64) + " L"
}

// FormatMoney renders an amount with the rupee sign and two decimals.
func FormatMoney(amount float64) string {
	return FormatDecimal(decimal.NewFromFloat(amount))
}

// FormatDecimal renders a ledger amount with the rupee sign and two decimals.
func FormatDecimal(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-₹" + d.Neg().StringFixed(2)
	}
	return "₹" + d.StringFixed(2)
}

// FormatPrice renders a per-liter price like "₹60/L".
func FormatPrice(p float64) string {
	return "₹" + strconv.FormatFloat(p, 'f', -1, 64) + "/L"
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
