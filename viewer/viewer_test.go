package viewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"go.uber.org/goleak"
	"gotest.tools/assert"

	"hop.computer/lists/render"
	"hop.computer/lists/script"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T, src string) Model {
	ops, err := script.Parse(strings.NewReader(src))
	assert.NilError(t, err)
	return New(ops, func() *script.Runner {
		return script.NewRunner(logrus.WithField("script", "viewer"))
	}, render.Options{})
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestStep(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := newModel(t, "push_front 1\npush_front 2\npop_back")
	assert.Assert(t, strings.Contains(m.View(), "(empty)"))
	assert.Assert(t, strings.Contains(m.View(), "next: push_front 1"))

	m, _ = update(m, key("n"))
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, m.next, 2)
	assert.Assert(t, strings.Contains(m.View(), "[2] <-> [1]"))
	assert.Equal(t, m.last, "push_front 2 => ok")

	m, _ = update(m, key(" "))
	assert.Check(t, m.Done())
	assert.Equal(t, m.last, "pop_back => 1")
	assert.Assert(t, strings.Contains(m.View(), "(end of script)"))

	// Stepping past the end does nothing.
	m, _ = update(m, key("n"))
	assert.Equal(t, m.next, 3)

	m, _ = update(m, key("r"))
	assert.Equal(t, m.next, 0)
	assert.Equal(t, m.last, "")
	assert.Assert(t, strings.Contains(m.View(), "(empty)"))
}

func TestFaultAndQuit(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := newModel(t, "push_back 1\nhold_front_mut\npop_front")
	m, _ = update(m, key("n"))
	m, _ = update(m, key("n"))
	assert.Assert(t, strings.Contains(m.View(), "(exclusively borrowed)"))

	m, _ = update(m, key("n"))
	assert.Check(t, m.failed)
	assert.Assert(t, strings.Contains(m.last, "aliasing fault"))

	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Equal(t, m.opts.Width, 36)

	m, cmd := update(m, key("q"))
	assert.Assert(t, cmd != nil)
	assert.Equal(t, cmd(), tea.Quit())

	// Quitting released the held view.
	values, ok := m.runner.Snapshot()
	assert.Check(t, ok)
	assert.DeepEqual(t, values, []int{1})
}
