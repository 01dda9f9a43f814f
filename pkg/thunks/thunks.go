// Package thunks contains pointers to functions that might be replaced in
// tests.
package thunks

import (
	"os"
	"path/filepath"
)

// UserHomeDir is an alias for os.UserHomeDir
var UserHomeDir func() (string, error) = os.UserHomeDir

// SetUpTest replaces thunks with stable test versions. The home directory is
// rooted at dir.
func SetUpTest(dir string) {
	UserHomeDir = func() (string, error) {
		return filepath.Join(dir, "home"), nil
	}
}

// TearDownTest restores the real implementations.
func TearDownTest() {
	UserHomeDir = os.UserHomeDir
}
