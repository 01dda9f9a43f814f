package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/lists/cell"
	"hop.computer/lists/deque"
)

// ErrFault is wrapped around a refused borrow recovered while running an op.
var ErrFault = errors.New("aliasing fault")

// Result is the outcome of one op.
type Result struct {
	Op      Op
	Value   int
	Present bool
	Values  []int
	Text    string
}

func (r Result) String() string {
	switch r.Op.Kind {
	case PopFront, PopBack, PeekFront, PeekBack, HoldFront, HoldBack, HoldFrontMut, HoldBackMut:
		if !r.Present {
			return "none"
		}
		return strconv.Itoa(r.Value)
	case Len:
		return strconv.Itoa(r.Value)
	case Dump, Drain, DrainBack:
		parts := make([]string, len(r.Values))
		for i, v := range r.Values {
			parts[i] = strconv.Itoa(v)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case SetFront, SetBack:
		if !r.Present {
			return "none"
		}
		return "ok"
	}
	return r.Text
}

// Runner executes ops against a list. Views opened by the hold commands stay
// open until a release op or Close.
type Runner struct {
	List *deque.List[int]

	// Validate runs List.Validate after every op.
	Validate bool

	Log *logrus.Entry

	refs []*deque.Ref[int]
	muts []*deque.RefMut[int]
}

// NewRunner returns a runner over an empty list.
func NewRunner(log *logrus.Entry) *Runner {
	return &Runner{
		List: deque.New[int](),
		Log:  log,
	}
}

// Held returns the number of open read and exclusive views.
func (r *Runner) Held() (refs, muts int) {
	return len(r.refs), len(r.muts)
}

// Snapshot returns the elements front to back. The boolean is false while an
// exclusive view is held, since the list cannot be read then.
func (r *Runner) Snapshot() ([]int, bool) {
	if len(r.muts) > 0 {
		return nil, false
	}
	return r.List.Values(), true
}

// Close releases every held view.
func (r *Runner) Close() {
	for _, ref := range r.refs {
		ref.Release()
	}
	for _, m := range r.muts {
		m.Release()
	}
	r.refs = nil
	r.muts = nil
}

// Step executes op. A refused borrow is reported as an error wrapping ErrFault
// and the list is left as it was. Validation failures wrap deque.ErrCorrupt.
func (r *Runner) Step(op Op) (res Result, err error) {
	res.Op = op
	if r.Log == nil {
		r.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	log := r.Log.WithField("op", op.String())
	if op.Line > 0 {
		log = log.WithField("line", op.Line)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		berr, ok := p.(*cell.BorrowError)
		if !ok {
			panic(p)
		}
		log.WithError(berr).Warn("refused borrow")
		err = errors.Wrapf(ErrFault, "%s: %s", op, berr)
	}()

	r.exec(op, &res)
	log.WithField("result", res.String()).Debug("step")

	if r.Validate && len(r.muts) == 0 {
		if verr := r.List.Validate(); verr != nil {
			return res, errors.WithMessagef(verr, "after %s", op)
		}
	}
	return res, nil
}

func (r *Runner) exec(op Op, res *Result) {
	l := r.List
	switch op.Kind {
	case PushFront:
		l.PushFront(op.Arg)
		res.Text = "ok"
	case PushBack:
		l.PushBack(op.Arg)
		res.Text = "ok"
	case PopFront:
		res.Value, res.Present = l.PopFront()
	case PopBack:
		res.Value, res.Present = l.PopBack()
	case PeekFront, PeekBack, HoldFront, HoldBack:
		var ref *deque.Ref[int]
		if op.Kind == PeekFront || op.Kind == HoldFront {
			ref, res.Present = l.PeekFront()
		} else {
			ref, res.Present = l.PeekBack()
		}
		if !res.Present {
			return
		}
		res.Value = ref.Get()
		if op.Kind == HoldFront || op.Kind == HoldBack {
			r.refs = append(r.refs, ref)
		} else {
			ref.Release()
		}
	case SetFront, SetBack, HoldFrontMut, HoldBackMut:
		var m *deque.RefMut[int]
		if op.Kind == SetFront || op.Kind == HoldFrontMut {
			m, res.Present = l.PeekFrontMut()
		} else {
			m, res.Present = l.PeekBackMut()
		}
		if !res.Present {
			return
		}
		if op.Kind == SetFront || op.Kind == SetBack {
			m.Set(op.Arg)
			m.Release()
			return
		}
		res.Value = m.Get()
		r.muts = append(r.muts, m)
	case Release:
		n := len(r.refs) + len(r.muts)
		r.Close()
		res.Text = fmt.Sprintf("released %d", n)
	case Len:
		res.Value = l.Len()
	case Clear:
		l.Clear()
		res.Text = "ok"
	case Validate:
		if err := l.Validate(); err != nil {
			res.Text = err.Error()
		} else {
			res.Text = "ok"
		}
	case Dump:
		res.Values = l.Values()
	case Drain:
		it := l.IntoIter()
		for v := range it.All() {
			res.Values = append(res.Values, v)
		}
	case DrainBack:
		it := l.IntoIter()
		for v := range it.Backward() {
			res.Values = append(res.Values, v)
		}
	case Help:
		res.Text = strings.TrimRight(Usage(), "\n")
	default:
		res.Text = fmt.Sprintf("unsupported op %s", op)
	}
}

// Run executes ops in order and stops at the first error.
func (r *Runner) Run(ops []Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		res, err := r.Step(op)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
