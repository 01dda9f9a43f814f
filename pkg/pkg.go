// Package pkg contains standalone helpers shared by the list packages. It does
// not depend on anything except the standard library.
package pkg

import (
	"fmt"
)

// Panicf functions like printf, but for constructing a string sent to panic. Do
// not use if you think that fmt.Sprintf would also panic, e.g. if you are
// already inside a panic handler.
func Panicf(msg string, args ...interface{}) {
	s := fmt.Sprintf(msg, args...)
	panic(s)
}

// Assertf panics with the formatted message when cond is false. It is used for
// structural invariants that correct code can never break.
func Assertf(cond bool, msg string, args ...interface{}) {
	if !cond {
		Panicf("invariant violated: "+msg, args...)
	}
}
