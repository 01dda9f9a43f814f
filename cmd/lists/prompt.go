package main

import (
	"bufio"
	"fmt"
	"io"

	"hop.computer/lists/config"
	"hop.computer/lists/render"
	"hop.computer/lists/script"
)

// prompt reads ops from in one line at a time. Unlike a script run, errors are
// reported and the session continues.
func prompt(in io.Reader, out io.Writer, r *script.Runner, cfg *config.Config, opts render.Options) {
	defer r.Close()
	scanner := bufio.NewScanner(in)
	lineno := 0
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		lineno++
		op, ok, err := script.ParseLine(scanner.Text(), lineno)
		switch {
		case err != nil:
			fmt.Fprintln(out, render.Status(err.Error(), true, opts))
		case ok:
			res, err := r.Step(op)
			report(out, r, op, res, err, cfg, opts)
		}
		fmt.Fprint(out, "> ")
	}
	fmt.Fprintln(out)
}

func report(out io.Writer, r *script.Runner, op script.Op, res script.Result, err error, cfg *config.Config, opts render.Options) {
	if err != nil {
		fmt.Fprintln(out, render.Status(err.Error(), true, opts))
		return
	}
	fmt.Fprintf(out, "%s => %s\n", op, render.Status(res.String(), false, opts))
	if !cfg.Render.Enabled {
		return
	}
	if values, ok := r.Snapshot(); ok {
		fmt.Fprintln(out, render.List(values, opts))
	}
}
