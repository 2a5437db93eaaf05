package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Color    key.Binding
	Sequence key.Binding
	Reaction key.Binding
	Choose   key.Binding
	Click    key.Binding
	Finish   key.Binding
	Abandon  key.Binding
	Roll     key.Binding
	RollTen  key.Binding
	Tab      key.Binding
	Period   key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Color:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color match")),
		Sequence: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sequence")),
		Reaction: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reaction")),
		Choose:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "choose")),
		Click:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "click")),
		Finish:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "finish")),
		Abandon:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "abandon")),
		Roll:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "roll x1")),
		RollTen:  key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "roll x10")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Period:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "period")),
		Dismiss:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "dismiss")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Color, k.Sequence, k.Reaction, k.Roll, k.Tab, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Color, k.Sequence, k.Reaction},
		{k.Choose, k.Click, k.Finish, k.Abandon},
		{k.Roll, k.RollTen, k.Tab, k.Period},
		{k.Dismiss, k.Quit},
	}
}
