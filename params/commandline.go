package params

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// SplitCommandLine splits a single command-line string into argv tokens
// using POSIX shell quoting rules.
//
//   SplitCommandLine(`-datadir='/my data' -noupnp`)
//   // []string{"-datadir=/my data", "-noupnp"}
func SplitCommandLine(line string) ([]string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("Cannot split command line %q: %v", line, err)
	}
	return words, nil
}

// ParseCommandLine splits line with SplitCommandLine and normalizes the
// result. line must not include the program name.
func ParseCommandLine(line string) (*Store, error) {
	args, err := SplitCommandLine(line)
	if err != nil {
		return nil, err
	}
	return Normalize(args), nil
}

// String returns the canonical single-dash token for the flag, such as
// "-STP", "-STP=" or "-noSTP=0". A name that itself starts with a dash gets
// two leading dashes, so ParseFlag strips the right number back off.
func (f Flag) String() string {
	key := f.Key()
	if f.Kind == Positive && strings.HasPrefix(f.Name, "-") {
		key = "-" + key
	}
	if f.HasValue {
		return key + "=" + f.Value
	}
	return key
}

// CommandLine renders the store back into a single shell-quoted string.
// ParseCommandLine(s.CommandLine()) yields an equivalent store.
func (s *Store) CommandLine() string {
	flags := s.Flags()
	words := make([]string, 0, len(flags)+1)
	for _, f := range flags {
		words = append(words, f.String())
	}
	if positional := s.Positional(); len(positional) > 0 {
		words = append(words, "--")
		words = append(words, positional...)
	}
	return shellquote.Join(words...)
}
