package script

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/goleak"
	"golang.org/x/exp/slices"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRunner() *Runner {
	r := NewRunner(logrus.WithField("script", "test"))
	r.Validate = true
	return r
}

func TestParse(t *testing.T) {
	src := `
# build a list
push_front 1
PUSH_BACK -2   # trailing comment

pop_front
`
	ops, err := Parse(strings.NewReader(src))
	assert.NilError(t, err)
	assert.DeepEqual(t, ops, []Op{
		{Kind: PushFront, Arg: 1, Line: 3},
		{Kind: PushBack, Arg: -2, Line: 4},
		{Kind: PopFront, Line: 6},
	})
	assert.Equal(t, ops[1].String(), "push_back -2")
	assert.Equal(t, ops[2].String(), "pop_front")
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{"shove 1", `line 1: unknown command "shove"`},
		{"push_front", "line 1: push_front takes one integer argument"},
		{"pop_back\npop_front 3", "line 2: pop_front takes no arguments"},
		{"push_back x", `line 1: bad argument "x"`},
	} {
		_, err := Parse(strings.NewReader(tc.src))
		assert.Check(t, errors.Is(err, ErrSyntax), tc.src)
		assert.Check(t, is.ErrorContains(err, tc.want), tc.src)
	}
}

func TestCommands(t *testing.T) {
	names := Commands()
	assert.Equal(t, len(names), len(commands))
	assert.Check(t, slices.IsSorted(names))
	assert.Check(t, slices.Contains(names, "push_front"))
	assert.Check(t, strings.Contains(Usage(), "push_front N"))
	assert.Equal(t, Kind(99).String(), "Kind(99)")
}

func run(t *testing.T, r *Runner, src string) []string {
	t.Helper()
	ops, err := Parse(strings.NewReader(src))
	assert.NilError(t, err)
	results, err := r.Run(ops)
	assert.NilError(t, err)
	out := make([]string, len(results))
	for i, res := range results {
		out[i] = res.String()
	}
	return out
}

func TestRunFrontScenario(t *testing.T) {
	r := newTestRunner()
	got := run(t, r, `
push_front 1
push_front 2
push_front 3
peek_front
set_front 42
pop_front
pop_front
push_front 4
pop_front
pop_front
pop_front
len
`)
	assert.DeepEqual(t, got, []string{
		"ok", "ok", "ok", "3", "ok", "42", "2", "ok", "4", "1", "none", "0",
	})
}

func TestRunBackScenario(t *testing.T) {
	r := newTestRunner()
	got := run(t, r, `
push_back 1
push_back 2
push_back 3
pop_back
pop_back
push_back 4
push_back 5
dump
pop_back
pop_back
pop_back
pop_back
set_back 9
`)
	assert.DeepEqual(t, got, []string{
		"ok", "ok", "ok", "3", "2", "ok", "ok", "[1 4 5]", "5", "4", "1", "none", "none",
	})
}

func TestRunDrain(t *testing.T) {
	r := newTestRunner()
	got := run(t, r, `
push_front 1
push_front 2
push_front 3
drain_back
len
push_back 7
push_back 8
drain
dump
`)
	assert.DeepEqual(t, got, []string{"ok", "ok", "ok", "[1 2 3]", "0", "ok", "ok", "[7 8]", "[]"})
}

func TestRunFaults(t *testing.T) {
	r := newTestRunner()
	defer r.Close()
	run(t, r, "push_back 1\npush_back 2\nhold_front\nhold_back")
	refs, muts := r.Held()
	assert.Equal(t, refs, 2)
	assert.Equal(t, muts, 0)

	snap, ok := r.Snapshot()
	assert.Check(t, ok)
	assert.DeepEqual(t, snap, []int{1, 2})

	for _, op := range []Op{{Kind: PushFront, Arg: 3}, {Kind: PopBack}, {Kind: SetFront, Arg: 5}, {Kind: Clear}, {Kind: Drain}} {
		_, err := r.Step(op)
		assert.Check(t, errors.Is(err, ErrFault), op.String())
	}

	// Reads still work and nothing changed.
	assert.DeepEqual(t, run(t, r, "peek_back\nvalidate\nrelease"), []string{"2", "ok", "released 2"})

	run(t, r, "hold_front_mut")
	_, ok = r.Snapshot()
	assert.Check(t, !ok)
	_, err := r.Step(Op{Kind: PeekBack})
	assert.Check(t, errors.Is(err, ErrFault))
	_, err = r.Step(Op{Kind: HoldBackMut})
	assert.Check(t, errors.Is(err, ErrFault))

	assert.DeepEqual(t, run(t, r, "release\npop_front\npop_front"), []string{"released 1", "1", "2"})
}

func TestGenerate(t *testing.T) {
	a := Generate(3, 200)
	b := Generate(3, 200)
	assert.DeepEqual(t, a, b)
	assert.Check(t, !slices.Equal(a, Generate(4, 200)))

	r := newTestRunner()
	results, err := r.Run(a)
	assert.NilError(t, err)
	assert.Equal(t, len(results), 200)
}
