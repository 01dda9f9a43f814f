package render

import (
	"github.com/charmbracelet/lipgloss"
)

// These colors are from the gruvbox vim theme
// https://github.com/morhetz/gruvbox
var fg = lipgloss.AdaptiveColor{
	Light: "#3c3836",
	Dark:  "#ebdbb2",
}
var red = lipgloss.Color("#cc241d")
var green = lipgloss.Color("#98971a")
var yellow = lipgloss.Color("#d79921")
var purple = lipgloss.Color("#b16286")
var gray = lipgloss.Color("#928374")

type styles struct {
	node, head, tail, link, empty, ok, fault lipgloss.Style
}

var plain = styles{
	node:  lipgloss.NewStyle(),
	head:  lipgloss.NewStyle(),
	tail:  lipgloss.NewStyle(),
	link:  lipgloss.NewStyle(),
	empty: lipgloss.NewStyle(),
	ok:    lipgloss.NewStyle(),
	fault: lipgloss.NewStyle(),
}

var colored = styles{
	node:  lipgloss.NewStyle().Foreground(fg),
	head:  lipgloss.NewStyle().Foreground(green).Bold(true),
	tail:  lipgloss.NewStyle().Foreground(purple).Bold(true),
	link:  lipgloss.NewStyle().Foreground(gray),
	empty: lipgloss.NewStyle().Foreground(gray).Italic(true),
	ok:    lipgloss.NewStyle().Foreground(yellow),
	fault: lipgloss.NewStyle().Foreground(red).Bold(true),
}
