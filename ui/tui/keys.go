package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home    key.Binding
	Search  key.Binding
	Profile key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Search:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "search")),
		Profile: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "profile")),
		NextTab: key.NewBinding(key.WithKeys("]", "tab"), key.WithHelp("]/tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("[", "shift+tab"), key.WithHelp("[", "prev tab")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll popular")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll popular")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "scroll hot")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "scroll hot")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Search, k.Profile, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Search, k.Profile},
		{k.NextTab, k.PrevTab},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Help, k.Quit},
	}
}
