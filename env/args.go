package env

import (
	"os"
	"path/filepath"

	"github.com/justjake/go-getarg/params"
)

// Args provides accessors for a process argument vector, including the
// program name.
type Args []string

// SystemArgs returns an Args instance populated with a copy of os.Args
func SystemArgs() Args {
	copied := make([]string, len(os.Args))
	copy(copied, os.Args)
	return Args(copied)
}

// ProcessName returns the basename of the process command line of args, or
// "" if args is empty.
func (x Args) ProcessName() string {
	if len(x) == 0 {
		return ""
	}
	return filepath.Base(x[0])
}

// Argv returns just the passed arguments
func (x Args) Argv() []string {
	if len(x) == 0 {
		return nil
	}
	return x[1:]
}

// Params normalizes the passed arguments into a parameter store. Call it
// once at startup and hand the store to whatever needs configuration.
func (x Args) Params() *params.Store {
	return params.Normalize(x.Argv())
}
