package params

import (
	"io"

	"github.com/kr/pretty"
)

// Snapshot is an exported copy of a Store's contents, for printing.
type Snapshot struct {
	Flags      []Flag
	Positional []string
}

// Snapshot copies out the parsed flags and positional arguments.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Flags: s.Flags(), Positional: s.Positional()}
}

// Dump pretty-prints the store to out.
func (s *Store) Dump(out io.Writer) {
	pretty.Fprintf(out, "%# v\n", s.Snapshot())
}
