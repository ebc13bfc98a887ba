// Package tui is the terminal front end for the toggle-grid puzzle.
//
// The Model only forwards key presses to the engine and renders the
// snapshot it gets back; rejected moves surface as toasts from the
// notify.Center.
//
// # Thread Safety
//
// Model is used from the bubbletea event loop only.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridlock/internal/core"
	"gridlock/internal/engine"
	"gridlock/internal/notify"
)

// tickInterval drives toast expiry while the user is idle.
const tickInterval = 250 * time.Millisecond

type tickMsg time.Time

// Model is the bubbletea model for an interactive session.
type Model struct {
	eng   *engine.Engine
	notes *notify.Center
	keys  KeyMap
	help  help.Model

	row, col int
	quitting bool
}

// New returns a model with the cursor at the top-left cell.
func New(eng *engine.Engine, notes *notify.Center) Model {
	return Model{
		eng:   eng,
		notes: notes,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

// Cursor returns the highlighted cell.
func (m Model) Cursor() (row, col int) { return m.row, m.col }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := m.eng.Size() - 1
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.row = max(m.row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.row = min(m.row+1, last)
	case key.Matches(msg, m.keys.Left):
		m.col = max(m.col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.col = min(m.col+1, last)
	case key.Matches(msg, m.keys.Toggle):
		_, err := m.eng.Toggle(m.row, m.col)
		m.notes.Report(err)
	case key.Matches(msg, m.keys.Reset):
		m.eng.Reset()
		m.notes.Info("Grid reset")
	case key.Matches(msg, m.keys.Fill):
		if _, err := m.eng.Randomize(m.eng.FillProbability()); err != nil {
			m.notes.Report(err)
		} else {
			m.notes.Info(fmt.Sprintf("Random fill accepted after %d attempts", m.eng.Stats().LastAttempts))
		}
	case key.Matches(msg, m.keys.More):
		m.nudgeFill(1)
	case key.Matches(msg, m.keys.Less):
		m.nudgeFill(-1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) nudgeFill(direction int) {
	core.NudgeFloat(m.eng, engine.ParamFillProbability, m.eng.FillProbability(), direction)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	g := m.eng.Grid()
	rows, cols := g.RowCounts(), g.ColumnCounts()

	var b strings.Builder
	b.WriteString(titleStyle.Render("gridlock"))
	b.WriteString("\n\n")
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			b.WriteString(m.renderCell(g, r, c))
		}
		b.WriteString(dimStyle.Render(" │ "))
		b.WriteString(countStyle(rows[r]).Render(strconv.Itoa(rows[r])))
		b.WriteByte('\n')
	}
	b.WriteString(dimStyle.Render(strings.Repeat("──", g.Size())))
	b.WriteByte('\n')
	for _, n := range cols {
		b.WriteString(countStyle(n).Render(fmt.Sprintf("%-2d", n)))
	}
	b.WriteString("\n\n")

	st := m.eng.Stats()
	b.WriteString(statusStyle.Render(fmt.Sprintf("fill %.2f · filled %d · accepted %d · rejected %d",
		m.eng.FillProbability(), g.FilledCount(), st.Accepted, st.Rejected())))
	b.WriteByte('\n')

	for _, t := range m.notes.Active() {
		b.WriteString(toastStyle(t.Level).Render(t.Message))
		if t.Detail != "" {
			b.WriteString(" ")
			b.WriteString(dimStyle.Render(t.Detail))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) renderCell(g engine.Snapshot, r, c int) string {
	glyph, style := "· ", emptyStyle
	if g.Filled(r, c) {
		glyph, style = "■ ", filledStyle
	}
	if r == m.row && c == m.col {
		style = style.Inherit(cursorStyle)
	}
	return style.Render(glyph)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	filledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	fullCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func countStyle(n int) lipgloss.Style {
	if n >= engine.MaxPerLine {
		return fullCountStyle
	}
	return statusStyle
}

func toastStyle(l notify.Level) lipgloss.Style {
	switch l {
	case notify.LevelError:
		return errorStyle
	case notify.LevelWarn:
		return warnStyle
	default:
		return infoStyle
	}
}
