package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"hop.computer/lists/config"
	"hop.computer/lists/flags"
	"hop.computer/lists/render"
	"hop.computer/lists/script"
	"hop.computer/lists/viewer"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	f, err := flags.ParseArgs(os.Args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stderr, "\ncommands:\n"+script.Usage())
		return
	}
	if err != nil {
		logrus.Fatalf("%s", err)
	}

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		logrus.Fatalf("%s", err)
	}
	f.Merge(cfg)

	lvl, err := cfg.Level()
	if err != nil {
		logrus.Fatalf("%s", err)
	}
	logrus.SetLevel(lvl)
	if !isTerminal(os.Stderr) {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	opts := render.Options{
		Color: cfg.Render.Color && isTerminal(os.Stdout),
		Width: cfg.Render.Width,
	}
	if opts.Width == 0 && isTerminal(os.Stdout) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			opts.Width = w
		}
	}

	name := f.ScriptPath
	if f.Random > 0 {
		name = fmt.Sprintf("random(seed=%d)", cfg.Random.Seed)
	}
	newRunner := func() *script.Runner {
		r := script.NewRunner(logrus.WithField("script", name))
		r.Validate = cfg.Validate
		return r
	}

	var ops []script.Op
	switch {
	case f.Random > 0:
		ops = script.Generate(cfg.Random.Seed, cfg.Random.Steps)
	case f.ScriptPath == "" && isTerminal(os.Stdin) && !f.Interactive:
		prompt(os.Stdin, os.Stdout, newRunner(), cfg, opts)
		return
	default:
		ops, err = readScript(f.ScriptPath)
		if err != nil {
			logrus.Fatalf("%s", err)
		}
	}
	logrus.Debugf("loaded %d ops from %s", len(ops), name)

	if f.Interactive {
		if err := viewer.Run(ops, newRunner, opts); err != nil {
			logrus.Fatalf("viewer: %s", err)
		}
		return
	}

	r := newRunner()
	for _, op := range ops {
		res, err := r.Step(op)
		report(os.Stdout, r, op, res, err, cfg, opts)
		if err != nil {
			r.Close()
			os.Exit(1)
		}
	}
	r.Close()
}

func readScript(path string) ([]script.Op, error) {
	var in io.Reader = os.Stdin
	if path != "" && path != "-" {
		fd, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		in = fd
	}
	return script.Parse(in)
}
