package teatest

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

type tickMsg struct{}

// counterModel counts keys and answers "t" with a Cmd that delivers tickMsg.
type counterModel struct {
	keys  []string
	ticks int
	delay time.Duration
}

func (m *counterModel) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg{} }
}

func (m *counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ticks++
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		switch msg.String() {
		case "t":
			delay := m.delay
			return m, func() tea.Msg {
				time.Sleep(delay)
				return tickMsg{}
			}
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *counterModel) View() string {
	return lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("ticks=%d", m.ticks))
}

func TestDriver_DrainInitAndPress(t *testing.T) {
	m := &counterModel{}
	d := New(t, m)
	d.DrainInit()
	assert.Equal(t, 1, m.ticks)

	d.Press("tab", "down", "+", "t")
	d.PressTab()
	assert.Equal(t, []string{"tab", "down", "+", "t", "tab"}, m.keys)
	assert.Equal(t, 2, m.ticks)
	assert.Equal(t, "ticks=2", d.PlainView())
}

func TestDriver_SlowCmdSkippedUnlessTimeoutRaised(t *testing.T) {
	slow := &counterModel{delay: 50 * time.Millisecond}
	d := New(t, slow)
	d.Press("t")
	assert.Equal(t, 0, slow.ticks)

	patient := &counterModel{delay: 50 * time.Millisecond}
	d = New(t, patient, WithCmdTimeout(time.Second))
	d.Press("t")
	assert.Equal(t, 1, patient.ticks)
}

func TestDriver_QuitStopsFurtherInput(t *testing.T) {
	m := &counterModel{}
	d := New(t, m)
	d.Press("q", "x")

	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"q"}, m.keys)
}
