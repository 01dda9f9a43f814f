// Package render draws deque snapshots for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const link = " <-> "

// Options controls the drawing.
type Options struct {
	Color bool

	// Width wraps the drawing onto several lines. Zero or less disables
	// wrapping.
	Width int
}

func (o Options) styles() styles {
	if o.Color {
		return colored
	}
	return plain
}

// List draws values front to back as "[a] <-> [b] <-> [c]". The front element
// is styled as the head, the back element as the tail. A wrapped line starts
// with the link that continues it.
func List(values []int, opts Options) string {
	s := opts.styles()
	if len(values) == 0 {
		return s.empty.Render("(empty)")
	}

	var lines []string
	var line strings.Builder
	width := 0
	for i, v := range values {
		style := s.node
		switch {
		case i == 0:
			style = s.head
		case i == len(values)-1:
			style = s.tail
		}
		box := style.Render(fmt.Sprintf("[%d]", v))

		piece := box
		if i > 0 {
			piece = s.link.Render(link) + box
		}
		w := lipgloss.Width(piece)
		if opts.Width > 0 && width > 0 && width+w > opts.Width {
			lines = append(lines, line.String())
			line.Reset()
			width = 0
		}
		line.WriteString(piece)
		width += w
	}
	lines = append(lines, line.String())
	return strings.Join(lines, "\n")
}

// Status draws a one-line outcome, highlighted as a fault when failed is set.
func Status(text string, failed bool, opts Options) string {
	s := opts.styles()
	if failed {
		return s.fault.Render(text)
	}
	return s.ok.Render(text)
}
