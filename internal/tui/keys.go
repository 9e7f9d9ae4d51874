package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Previous key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Reset    key.Binding
	Jump     key.Binding
	Add      key.Binding
	Delete   key.Binding
	Clear    key.Binding
	Quit     key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recenter")),
		Jump:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Clear:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear deck")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Jump, k.Add, k.Delete, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last},
		{k.Reset, k.Jump, k.Add, k.Delete, k.Clear},
		{k.Quit},
	}
}

// promptHelp is shown while the prompt is open.
type promptHelp struct{ keys keyMap }

func (p promptHelp) ShortHelp() []key.Binding {
	return []key.Binding{p.keys.Confirm, p.keys.Cancel}
}

func (p promptHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
