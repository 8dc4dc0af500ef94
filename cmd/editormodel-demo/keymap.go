package main

import "github.com/charmbracelet/bubbles/key"

// keyMap binds demo keys to attribute changes. It implements help.KeyMap.
type keyMap struct {
	ToggleLineNumbers key.Binding
	ToggleReadOnly    key.Binding
	ToggleFixedHeight key.Binding
	TabSizeUp         key.Binding
	TabSizeDown       key.Binding

	Backspace key.Binding
	Enter     key.Binding
	Tab       key.Binding

	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ToggleLineNumbers: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "line numbers")),
		ToggleReadOnly:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "read-only")),
		ToggleFixedHeight: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "fixed height")),

		// alt fallbacks: not every terminal reports ctrl+ combinations for +/-.
		TabSizeUp:   key.NewBinding(key.WithKeys("ctrl+up", "alt+="), key.WithHelp("ctrl+↑", "tab size +1")),
		TabSizeDown: key.NewBinding(key.WithKeys("ctrl+down", "alt+-"), key.WithHelp("ctrl+↓", "tab size -1")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Enter:     key.NewBinding(key.WithKeys("enter")),
		Tab:       key.NewBinding(key.WithKeys("tab")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleLineNumbers, k.ToggleReadOnly, k.ToggleFixedHeight, k.TabSizeUp, k.TabSizeDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleLineNumbers, k.ToggleReadOnly, k.ToggleFixedHeight},
		{k.TabSizeUp, k.TabSizeDown, k.Quit},
	}
}
