// Package flags provides support for the lists CLI args
package flags

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"hop.computer/lists/config"
)

// ErrConflictingModes is returned when both a script and -random are given.
var ErrConflictingModes = errors.New("-f and -random are mutually exclusive")

// Flags holds CLI arguments for the lists command.
type Flags struct {
	ConfigPath string
	ScriptPath string

	Interactive bool // step through the script in a terminal UI
	Verbose     bool // log every op at debug level
	Validate    bool // check invariants after every op
	NoRender    bool // do not draw the list after each op
	NoColor     bool

	Random int // number of generated ops; zero means no generated run
	Seed   *uint64
}

func defineFlags(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.ConfigPath, "C", "", "path to config (uses ~/.hop/lists.toml when unspecified)")
	fs.StringVar(&f.ScriptPath, "f", "", "script file to run (\"-\" for stdin)")
	fs.BoolVar(&f.Interactive, "i", false, "step through the ops interactively")
	fs.BoolVar(&f.Verbose, "V", false, "log every op")
	fs.BoolVar(&f.Validate, "validate", false, "check the list invariants after every op")
	fs.BoolVar(&f.NoRender, "no-render", false, "do not draw the list after each op")
	fs.BoolVar(&f.NoColor, "no-color", false, "draw without colour")
	fs.IntVar(&f.Random, "random", 0, "run `N` generated ops instead of a script")
	fs.Func("seed", "seed for -random", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %s", s, err)
		}
		f.Seed = &v
		return nil
	})
}

// ParseArgs defines and parses the flags from the command line. args[0] is the
// program name.
func ParseArgs(args []string) (*Flags, error) {
	f := new(Flags)
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	defineFlags(fs, f)

	err := fs.Parse(args[1:])
	if err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		if f.ScriptPath != "" {
			return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
		}
		f.ScriptPath = fs.Arg(0)
	}
	if f.ScriptPath != "" && f.Random > 0 {
		return nil, ErrConflictingModes
	}
	if f.Random < 0 {
		return nil, fmt.Errorf("-random must not be negative, got %d", f.Random)
	}
	return f, nil
}

// Merge applies flags that override c.
func (f *Flags) Merge(c *config.Config) {
	if f.Verbose {
		c.LogLevel = "debug"
	}
	if f.Validate {
		c.Validate = true
	}
	if f.NoRender {
		c.Render.Enabled = false
	}
	if f.NoColor {
		c.Render.Color = false
	}
	if f.Seed != nil {
		c.Random.Seed = *f.Seed
	}
	if f.Random > 0 {
		c.Random.Steps = f.Random
	}
}
