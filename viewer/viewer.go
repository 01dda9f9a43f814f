// Package viewer steps through a script in a terminal UI, drawing the list
// after every op.
package viewer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hop.computer/lists/render"
	"hop.computer/lists/script"
)

var titleStyle = lipgloss.
	NewStyle().
	MarginLeft(2).
	MarginTop(1)

var itemStyle = lipgloss.
	NewStyle().
	PaddingLeft(4)

var helpStyle = itemStyle.
	Foreground(lipgloss.Color("#928374"))

// Model implements tea.Model. Each step executes one op of the script against
// a runner built by newRunner; reset starts over with a fresh runner.
type Model struct {
	ops       []script.Op
	newRunner func() *script.Runner
	opts      render.Options

	runner *script.Runner
	next   int
	last   string
	failed bool
}

var _ tea.Model = Model{}

// New returns a model positioned before the first op.
func New(ops []script.Op, newRunner func() *script.Runner, opts render.Options) Model {
	return Model{
		ops:       ops,
		newRunner: newRunner,
		opts:      opts,
		runner:    newRunner(),
	}
}

// Init implements the tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements the tea.Model interface. "n", enter and space execute the
// next op, "r" starts over, "q" and CTRL-C quit.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width - 4
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "n", "enter", " ":
			return m.step(), nil
		case "r":
			m.runner.Close()
			m.runner = m.newRunner()
			m.next = 0
			m.last = ""
			m.failed = false
			return m, nil
		case "ctrl+c", "q":
			m.runner.Close()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) step() Model {
	if m.Done() {
		return m
	}
	op := m.ops[m.next]
	m.next++
	res, err := m.runner.Step(op)
	if err != nil {
		m.last = fmt.Sprintf("%s: %s", op, err)
		m.failed = true
		return m
	}
	m.last = fmt.Sprintf("%s => %s", op, res)
	m.failed = false
	return m
}

// Done reports whether every op has been executed.
func (m Model) Done() bool {
	return m.next >= len(m.ops)
}

// View renders the list, the last result and the next op.
func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("step %d/%d", m.next, len(m.ops)))

	list := "(exclusively borrowed)"
	if values, ok := m.runner.Snapshot(); ok {
		list = render.List(values, m.opts)
	}

	last := ""
	if m.last != "" {
		last = render.Status(m.last, m.failed, m.opts)
	}

	next := "(end of script)"
	if !m.Done() {
		next = "next: " + m.ops[m.next].String()
	}

	return lipgloss.JoinVertical(0,
		title,
		itemStyle.Render(list),
		itemStyle.Render(last),
		itemStyle.Render(next),
		helpStyle.Render("n/enter: step  r: reset  q: quit"),
	)
}

// Run shows the viewer until the user quits.
func Run(ops []script.Op, newRunner func() *script.Runner, opts render.Options) error {
	_, err := tea.NewProgram(New(ops, newRunner, opts), tea.WithAltScreen()).Run()
	return err
}
