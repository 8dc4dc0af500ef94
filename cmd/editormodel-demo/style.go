package main

import "github.com/charmbracelet/lipgloss"

// Style controls how the demo view renders a model.
type Style struct {
	Header   lipgloss.Style
	ReadOnly lipgloss.Style
	Gutter   lipgloss.Style
	Text     lipgloss.Style
	Status   lipgloss.Style
}

func DefaultStyle() Style {
	return newStyle(lipgloss.DefaultRenderer())
}

func newStyle(r *lipgloss.Renderer) Style {
	gutter := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Header:   r.NewStyle().Bold(true),
		ReadOnly: r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Gutter:   gutter,
		Text:     r.NewStyle(),
		Status:   r.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
