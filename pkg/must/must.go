// Package must contains helpers that panic instead of returning an error or an
// absent result.
package must

import (
	"hop.computer/lists/pkg"
)

// Do takes any value and error pair, and panics if the error is non-nil. Use it
// wrapping another function call that returns two values, to get a single
// statement that only returns one value.
//
// Example:
//
//	f := must.Do(os.Open("somefile.txt"))
//	defer f.Close()
func Do[T any](v T, err error) T {
	if err != nil {
		pkg.Panicf("expected nil-error, got %s", err)
	}
	return v
}

// Some takes a value and presence pair, as returned by PopFront and friends, and
// panics if the value is absent.
//
// Example:
//
//	v := must.Some(l.PopFront())
func Some[T any](v T, ok bool) T {
	if !ok {
		pkg.Panicf("expected a value, got none")
	}
	return v
}
