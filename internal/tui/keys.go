package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Sort   key.Binding
	Clear  key.Binding
	Quit   key.Binding

	// form
	Submit  key.Binding
	Cancel  key.Binding
	QtyUp   key.Binding
	QtyDown key.Binding

	// confirm
	Yes key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Clear:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear list")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add item")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
		QtyUp:   key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "more")),
		QtyDown: key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "fewer")),

		Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Sort, k.Clear}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Submit, k.QtyUp, k.QtyDown, k.Cancel}
}
