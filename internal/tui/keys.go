package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Reveal key.Binding
	Flag   key.Binding
	Reset  key.Binding

	Difficulty key.Binding
	Harder     key.Binding
	Easier     key.Binding

	MoreCols  key.Binding
	FewerCols key.Binding
	MoreRows  key.Binding
	FewerRows key.Binding
	MoreMines key.Binding
	LessMines key.Binding

	Help key.Binding
	Quit key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Reveal: key.NewBinding(
		key.WithKeys(" ", "space", "enter"),
		key.WithHelp("space", "reveal"),
	),
	Flag: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "flag"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "new deal"),
	),
	Difficulty: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "difficulty"),
	),
	Harder: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "next difficulty"),
	),
	Easier: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "previous difficulty"),
	),
	MoreCols: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("[/]", "custom cols"),
	),
	FewerCols: key.NewBinding(
		key.WithKeys("["),
	),
	MoreRows: key.NewBinding(
		key.WithKeys("}"),
		key.WithHelp("{/}", "custom rows"),
	),
	FewerRows: key.NewBinding(
		key.WithKeys("{"),
	),
	MoreMines: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp("</>", "custom mines"),
	),
	LessMines: key.NewBinding(
		key.WithKeys("<"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp and FullHelp satisfy help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.Reset, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag, k.Reset},
		{k.Difficulty, k.Harder, k.Easier},
		{k.MoreCols, k.MoreRows, k.MoreMines},
		{k.Help, k.Quit},
	}
}
