package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/milkround/internal/cli/formatter"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// milkroundHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func milkroundHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// parseLiters parses s as a liter quantity. Empty means 0.
func parseLiters(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "L"))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("enter a non-negative number of liters")
	}
	return v, nil
}

// validateLiters accepts empty or a non-negative liter quantity.
func validateLiters(s string) error {
	_, err := parseLiters(s)
	return err
}

func formatLitersInput(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// planInputs holds the string values bound to the plan form, one morning and
// one evening field per product.
type planInputs struct {
	products []domain.Product
	morning  []string
	evening  []string
}

func newPlanInputs(products []domain.Product, current domain.Schedule) *planInputs {
	in := &planInputs{
		products: products,
		morning:  make([]string, len(products)),
		evening:  make([]string, len(products)),
	}
	for i, p := range products {
		if line, ok := current.Line(p.ID); ok {
			in.morning[i] = formatLitersInput(line.LitersMorning)
			in.evening[i] = formatLitersInput(line.LitersEvening)
		}
	}
	return in
}

// schedule converts the form values into a Schedule in catalog order.
func (in *planInputs) schedule() (domain.Schedule, error) {
	var s domain.Schedule
	for i, p := range in.products {
		m, err := parseLiters(in.morning[i])
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("%s morning: %w", p.Name, err)
		}
		e, err := parseLiters(in.evening[i])
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("%s evening: %w", p.Name, err)
		}
		if m == 0 && e == 0 {
			continue
		}
		s.Lines = append(s.Lines, domain.ScheduleLine{ProductID: p.ID, LitersMorning: m, LitersEvening: e})
	}
	return s, nil
}

// wizardEditPlan creates a huh form with one group per product.
func wizardEditPlan(in *planInputs) *huh.Form {
	groups := make([]*huh.Group, 0, len(in.products))
	for i, p := range in.products {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(p.Name+" · morning").
				Description(formatter.FormatPrice(p.PricePerLiter)).
				Placeholder("0").
				Value(&in.morning[i]).
				Validate(validateLiters),
			huh.NewInput().
				Title(p.Name+" · evening").
				Placeholder("0").
				Value(&in.evening[i]).
				Validate(validateLiters),
		))
	}
	return huh.NewForm(groups...).WithTheme(milkroundHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(milkroundHuhTheme()).WithShowHelp(false)
}
