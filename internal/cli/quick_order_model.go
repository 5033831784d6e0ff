package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/milkround/internal/cli/formatter"
	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── key bindings ─────────────────────────────────────────────────────────────

type quickOrderKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Inc     key.Binding
	Dec     key.Binding
	Shift   key.Binding
	Morning key.Binding
	Evening key.Binding
	Place   key.Binding
	Quit    key.Binding
}

func newQuickOrderKeyMap() quickOrderKeyMap {
	return quickOrderKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Inc:     key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("+", "more")),
		Dec:     key.NewBinding(key.WithKeys("-", "_", "left", "h"), key.WithHelp("-", "less")),
		Shift:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "am/pm")),
		Morning: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "morning on/off")),
		Evening: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "evening on/off")),
		Place:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "place order")),
		Quit:    key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k quickOrderKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Inc, k.Dec, k.Shift, k.Morning, k.Evening, k.Place, k.Quit}
}

func (k quickOrderKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Inc, k.Dec},
		{k.Shift, k.Morning, k.Evening},
		{k.Place, k.Quit},
	}
}

// ── model ────────────────────────────────────────────────────────────────────

type quickOrderPlacedMsg struct {
	resp *contract.QuickOrderResponse
	err  error
}

// quickOrderModel is the one-screen order pad: one row per catalog product
// with a stepper for each shift. Every product is sent, so the placed order
// fully describes the day.
type quickOrderModel struct {
	ctx      context.Context
	app      *App
	date     domain.Date
	products []domain.Product

	// qty holds the picked liters per product; only Step and Line are used.
	qty     domain.Schedule
	morning bool
	evening bool
	cursor  int
	shift   domain.Shift
	step    float64

	keys    quickOrderKeyMap
	help    help.Model
	placing bool
	placed  *contract.QuickOrderResponse
	err     error
}

func newQuickOrderModel(ctx context.Context, app *App, req contract.QuickOrderRequest) *quickOrderModel {
	m := &quickOrderModel{
		ctx:      ctx,
		app:      app,
		date:     req.Date,
		products: app.Catalog.Products(),
		morning:  req.Morning,
		evening:  req.Evening,
		shift:    domain.ShiftMorning,
		step:     app.stepLiters(),
		keys:     newQuickOrderKeyMap(),
		help:     help.New(),
	}
	for _, l := range req.Lines {
		m.qty = m.qty.WithLine(domain.ScheduleLine{
			ProductID:     l.ProductID,
			LitersMorning: l.LitersMorning,
			LitersEvening: l.LitersEvening,
		})
	}
	if !m.morning && m.evening {
		m.shift = domain.ShiftEvening
	}
	return m
}

func (m *quickOrderModel) Init() tea.Cmd { return nil }

// request builds the batched order from the current picks.
func (m *quickOrderModel) request() contract.QuickOrderRequest {
	req := contract.QuickOrderRequest{Date: m.date, Morning: m.morning, Evening: m.evening}
	for _, p := range m.products {
		l, _ := m.qty.Line(p.ID)
		req.Lines = append(req.Lines, contract.QuickOrderLine{
			ProductID:     p.ID,
			LitersMorning: l.LitersMorning,
			LitersEvening: l.LitersEvening,
		})
	}
	return req
}

// totals mirrors what the order will store: inactive shifts count as zero.
func (m *quickOrderModel) totals() (liters, amount float64) {
	for _, p := range m.products {
		l, _ := m.qty.Line(p.ID)
		var sum float64
		if m.morning {
			sum += l.LitersMorning
		}
		if m.evening {
			sum += l.LitersEvening
		}
		liters += sum
		amount += sum * p.PricePerLiter
	}
	return liters, amount
}

func (m *quickOrderModel) place() tea.Cmd {
	req := m.request()
	overrides := m.app.Overrides
	ctx := m.ctx
	return func() tea.Msg {
		resp, err := overrides.QuickOrder(ctx, req)
		return quickOrderPlacedMsg{resp: resp, err: err}
	}
}

func (m *quickOrderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case quickOrderPlacedMsg:
		m.placing = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.placed = msg.resp
		return m, tea.Quit

	case tea.KeyMsg:
		if m.placing {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.products)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Inc):
			m.stepFocused(m.step)
		case key.Matches(msg, m.keys.Dec):
			m.stepFocused(-m.step)
		case key.Matches(msg, m.keys.Shift):
			if m.shift == domain.ShiftMorning {
				m.shift = domain.ShiftEvening
			} else {
				m.shift = domain.ShiftMorning
			}
		case key.Matches(msg, m.keys.Morning):
			m.morning = !m.morning
			m.err = nil
		case key.Matches(msg, m.keys.Evening):
			m.evening = !m.evening
			m.err = nil
		case key.Matches(msg, m.keys.Place):
			m.placing = true
			m.err = nil
			return m, m.place()
		}
	}
	return m, nil
}

func (m *quickOrderModel) stepFocused(delta float64) {
	if len(m.products) == 0 {
		return
	}
	m.qty = m.qty.Step(m.products[m.cursor].ID, m.shift, delta)
}

// ── view rendering ───────────────────────────────────────────────────────────

const quickOrderNameWidth = 16

func (m *quickOrderModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.Header("Quick order · "+formatter.HumanDate(m.date, m.app.today())))
	b.WriteString("\n\n  ")
	b.WriteString(shiftToggle("Morning", m.morning))
	b.WriteString("  ")
	b.WriteString(shiftToggle("Evening", m.evening))
	b.WriteString("\n\n")

	if len(m.products) == 0 {
		b.WriteString("  " + formatter.Dim("No products in catalog."))
		b.WriteString("\n")
		return b.String()
	}

	nameStyle := lipgloss.NewStyle().Width(quickOrderNameWidth)
	for i, p := range m.products {
		l, _ := m.qty.Line(p.ID)
		prefix := "  "
		name := nameStyle.Render(p.Name)
		if i == m.cursor {
			prefix = formatter.StyleHeader.Render("▸ ")
			name = formatter.StyleBold.Render(nameStyle.Render(p.Name))
		}
		fmt.Fprintf(&b, "%s%s %s  %s  %s\n",
			prefix, name,
			m.stepper(i, domain.ShiftMorning, l.LitersMorning, m.morning),
			m.stepper(i, domain.ShiftEvening, l.LitersEvening, m.evening),
			formatter.Dim(formatter.FormatPrice(p.PricePerLiter)),
		)
	}

	liters, amount := m.totals()
	b.WriteString("\n  ")
	b.WriteString(formatter.Bold(fmt.Sprintf("%.1f L • %s", liters, formatter.FormatMoney(amount))))
	b.WriteString("\n")

	switch {
	case m.placing:
		b.WriteString("\n  " + formatter.Dim("Placing order..."))
	case m.err != nil:
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()))
	case !m.morning && !m.evening:
		b.WriteString("\n  " + formatter.StyleYellow.Render("Select morning or evening to place an order."))
	}

	b.WriteString("\n\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m *quickOrderModel) stepper(row int, shift domain.Shift, liters float64, active bool) string {
	text := fmt.Sprintf("- %5s +", formatLitersInputOrZero(liters))
	switch {
	case row == m.cursor && shift == m.shift:
		return formatter.StyleHeader.Render("[" + text + "]")
	case !active:
		return formatter.Dim(" " + text + " ")
	default:
		return " " + text + " "
	}
}

func shiftToggle(label string, on bool) string {
	if on {
		return formatter.StyleGreen.Render("● " + label)
	}
	return formatter.Dim("○ " + label)
}

func formatLitersInputOrZero(v float64) string {
	if v == 0 {
		return "0"
	}
	return formatLitersInput(v)
}
