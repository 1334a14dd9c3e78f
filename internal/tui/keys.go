package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Step      key.Binding
	DecodeAll key.Binding
	Play      key.Binding
	Reset     key.Binding
	Edit      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Step: key.NewBinding(
			key.WithKeys(" ", "space", "right", "n"),
			key.WithHelp("space", "step"),
		),
		DecodeAll: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "decode all"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "autoplay"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit input"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.DecodeAll, k.Play, k.Reset, k.Edit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
