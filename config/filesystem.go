package config

import (
	"io/fs"
	"os"
)

// overwriting fileSystem lets us use a mock filesystem for tests
var fileSystem fs.FS = osFS{}

type osFS struct{}

// Open implements fs.FS. Unlike os.DirFS, it accepts absolute and relative
// paths as-is, since config paths come straight from the command line.
func (o osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
