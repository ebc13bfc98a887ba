package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the puzzle's key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Fill   key.Binding
	More   key.Binding
	Less   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns arrow/vi movement with single-letter actions.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset grid")),
		Fill:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "random fill")),
		More:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "denser fill")),
		Less:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "sparser fill")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Fill, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Reset, k.Fill},
		{k.More, k.Less, k.Help, k.Quit},
	}
}
