package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridlock/internal/engine"
	"gridlock/internal/notify"
)

func newTestModel(t *testing.T) (Model, *engine.Engine) {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Seed = 11
	eng, err := engine.New(cfg)
	require.NoError(t, err)
	return New(eng, notify.NewCenter()), eng
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestCursorStaysOnGrid(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})
	r, c := m.Cursor()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	for i := 0; i < 15; i++ {
		m = press(t, m, runeKey('j'), runeKey('l'))
	}
	r, c = m.Cursor()
	assert.Equal(t, 9, r)
	assert.Equal(t, 9, c)
}

func TestSpaceTogglesCell(t *testing.T) {
	m, eng := newTestModel(t)
	m = press(t, m, spaceKey)

	g := eng.Grid()
	assert.True(t, g.Filled(0, 0))
	assert.True(t, g.Filled(0, 1))
	assert.True(t, g.Filled(1, 0))
	assert.Equal(t, 3, g.FilledCount())
	assert.Contains(t, m.View(), "accepted 1")
}

func TestRejectedToggleShowsToast(t *testing.T) {
	m, eng := newTestModel(t)
	m = press(t, m, spaceKey, runeKey('l'), runeKey('l'))
	before := eng.Grid()

	m = press(t, m, spaceKey)
	assert.True(t, eng.Grid().Equal(before))

	view := m.View()
	assert.Contains(t, view, notify.ViolationMessage)
	assert.Contains(t, view, "row 0 would hold 4 filled cells")
}

func TestResetAndFill(t *testing.T) {
	m, eng := newTestModel(t)
	m = press(t, m, runeKey('f'))
	require.Nil(t, eng.Grid().Check())
	assert.Equal(t, 1, eng.Stats().Randomized)
	assert.Contains(t, m.View(), "Random fill accepted")

	m = press(t, m, runeKey('r'))
	assert.Zero(t, eng.Grid().FilledCount())
	assert.Contains(t, m.View(), "Grid reset")
}

func TestFillProbabilityKeys(t *testing.T) {
	m, eng := newTestModel(t)
	m = press(t, m, runeKey('+'), runeKey('+'))
	assert.InDelta(t, 0.3, eng.FillProbability(), 1e-9)

	m = press(t, m, runeKey('-'))
	assert.InDelta(t, 0.25, eng.FillProbability(), 1e-9)
	assert.Contains(t, m.View(), "fill 0.25")
}

func TestViewShowsCounts(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, spaceKey)

	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), 3)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[2]), "2"), "row 0 count in %q", lines[2])
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[3]), "1"), "row 1 count in %q", lines[3])
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}
