// Package script defines a small line-oriented language of deque operations
// and a runner that executes it against a deque.List[int].
//
// Each line holds one command, optionally followed by an integer argument:
//
//	push_front 3
//	pop_back
//	# comments and blank lines are ignored
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrSyntax is wrapped by every error returned from Parse and ParseLine.
var ErrSyntax = errors.New("syntax error")

// Kind identifies a command.
type Kind int

// Commands understood by the runner.
const (
	PushFront Kind = iota + 1
	PushBack
	PopFront
	PopBack
	PeekFront
	PeekBack
	SetFront
	SetBack
	HoldFront
	HoldBack
	HoldFrontMut
	HoldBackMut
	Release
	Len
	Clear
	Validate
	Dump
	Drain
	DrainBack
	Help
)

type command struct {
	kind Kind
	arg  bool
	help string
}

var commands = map[string]command{
	"push_front":     {PushFront, true, "insert N at the front"},
	"push_back":      {PushBack, true, "insert N at the back"},
	"pop_front":      {PopFront, false, "remove the front element"},
	"pop_back":       {PopBack, false, "remove the back element"},
	"peek_front":     {PeekFront, false, "read the front element"},
	"peek_back":      {PeekBack, false, "read the back element"},
	"set_front":      {SetFront, true, "overwrite the front element with N"},
	"set_back":       {SetBack, true, "overwrite the back element with N"},
	"hold_front":     {HoldFront, false, "keep a read view of the front element open"},
	"hold_back":      {HoldBack, false, "keep a read view of the back element open"},
	"hold_front_mut": {HoldFrontMut, false, "keep an exclusive view of the front element open"},
	"hold_back_mut":  {HoldBackMut, false, "keep an exclusive view of the back element open"},
	"release":        {Release, false, "release every held view"},
	"len":            {Len, false, "print the number of elements"},
	"clear":          {Clear, false, "remove every element"},
	"validate":       {Validate, false, "check the link invariants"},
	"dump":           {Dump, false, "print the elements front to back"},
	"drain":          {Drain, false, "consume the list front to back"},
	"drain_back":     {DrainBack, false, "consume the list back to front"},
	"help":           {Help, false, "list the commands"},
}

var names = func() map[Kind]string {
	m := make(map[Kind]string, len(commands))
	for name, c := range commands {
		m[c.kind] = name
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TakesArg reports whether the command requires an integer argument.
func (k Kind) TakesArg() bool {
	return commands[names[k]].arg
}

// Commands returns the command names in sorted order.
func Commands() []string {
	keys := maps.Keys(commands)
	slices.Sort(keys)
	return keys
}

// Usage returns one line of help per command.
func Usage() string {
	var b strings.Builder
	for _, name := range Commands() {
		c := commands[name]
		usage := name
		if c.arg {
			usage += " N"
		}
		fmt.Fprintf(&b, "  %-18s %s\n", usage, c.help)
	}
	return b.String()
}

// Op is a single parsed command. Line is the 1-based source line, or 0 for
// generated operations.
type Op struct {
	Kind Kind
	Arg  int
	Line int
}

func (o Op) String() string {
	if o.Kind.TakesArg() {
		return fmt.Sprintf("%s %d", o.Kind, o.Arg)
	}
	return o.Kind.String()
}

// ParseLine parses a single line. The boolean is false for blank and comment
// lines.
func ParseLine(line string, lineno int) (Op, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, false, nil
	}
	c, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return Op{}, false, errors.Wrapf(ErrSyntax, "line %d: unknown command %q", lineno, fields[0])
	}
	op := Op{Kind: c.kind, Line: lineno}
	switch {
	case c.arg && len(fields) != 2:
		return Op{}, false, errors.Wrapf(ErrSyntax, "line %d: %s takes one integer argument", lineno, fields[0])
	case !c.arg && len(fields) != 1:
		return Op{}, false, errors.Wrapf(ErrSyntax, "line %d: %s takes no arguments", lineno, fields[0])
	case c.arg:
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return Op{}, false, errors.Wrapf(ErrSyntax, "line %d: bad argument %q", lineno, fields[1])
		}
		op.Arg = n
	}
	return op, true, nil
}

// Parse reads a whole script.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		op, ok, err := ParseLine(scanner.Text(), lineno)
		if err != nil {
			return nil, err
		}
		if ok {
			ops = append(ops, op)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	return ops, nil
}
