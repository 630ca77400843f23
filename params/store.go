package params

import (
	"errors"
	"strconv"
	"strings"
)

// Store holds the flags parsed from a command line. A Store is never modified
// after it is built, so it is safe to share between goroutines. A nil *Store
// behaves like a store built from an empty command line.
type Store struct {
	flags      []Flag
	positional []string
	// literal key, eg "-noSTP", to every value given for it
	values map[string][]string
	// positive key, eg "-STP", to the values of its negated form
	negations map[string][]string
}

// Normalize parses args, which must not include the program name.
//
// Flag processing stops at the first token that is not a flag. That token and
// everything after it are kept as positional arguments. A bare "--" also ends
// flag processing, and is dropped.
func Normalize(args []string) *Store {
	flags := make([]Flag, 0, len(args))
	var positional []string
	for i, token := range args {
		if token == "--" {
			positional = args[i+1:]
			break
		}
		f, ok := ParseFlag(token)
		if !ok {
			positional = args[i:]
			break
		}
		flags = append(flags, f)
	}
	return newStore(flags, positional)
}

func newStore(flags []Flag, positional []string) *Store {
	s := &Store{
		flags:      flags,
		positional: append([]string(nil), positional...),
		values:     make(map[string][]string),
		negations:  make(map[string][]string),
	}
	for _, f := range flags {
		s.values[f.Key()] = append(s.values[f.Key()], f.Value)
		if f.Kind == Negated {
			s.negations[f.Target()] = append(s.negations[f.Target()], f.Value)
		}
	}
	return s
}

func (s *Store) get(name string) []string {
	if s == nil {
		return nil
	}
	return s.values[name]
}

// Lookup returns the first value given for name, and whether name was given
// at all.
func (s *Store) Lookup(name string) (string, bool) {
	vals := s.get(name)
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// IsSet reports whether name appears on the command line under exactly that
// key. IsSet("-STP") is false for a command line of "-noSTP".
func (s *Store) IsSet(name string) bool {
	_, found := s.Lookup(name)
	return found
}

// GetArg returns the first value given for name, or def if name is absent.
// A presence-only flag has the value "".
func (s *Store) GetArg(name string, def string) string {
	if val, found := s.Lookup(name); found {
		return val
	}
	return def
}

// GetArgs returns every value given for name, in command-line order.
func (s *Store) GetArgs(name string) []string {
	vals := s.get(name)
	if len(vals) == 0 {
		return nil
	}
	return append([]string(nil), vals...)
}

// GetIntArg returns the first value given for name as a base-10 integer, or
// def if name is absent. A present value that is not an integer, including
// the empty value of a presence-only flag, is 0.
func (s *Store) GetIntArg(name string, def int64) int64 {
	val, found := s.Lookup(name)
	if !found {
		return def
	}
	return atoi64(val)
}

func atoi64(val string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	if err == nil {
		return n
	}
	// ParseInt clamps to the int64 bounds on overflow.
	if errors.Is(err, strconv.ErrRange) {
		return n
	}
	return 0
}

// GetBoolArg resolves a boolean flag.
//
// If name itself was given, its first value decides: "0" is false, anything
// else, including no value, is true. Otherwise the negated form decides with
// the opposite polarity. If neither form was given, def is returned.
// Only negations as classified by ParseFlag count, so -noX=yes does not.
func (s *Store) GetBoolArg(name string, def bool) bool {
	var positive, negated []string
	if s != nil {
		positive = s.values[name]
		negated = s.negations[name]
	}
	return resolveBool(positive, negated, def)
}

// HasFlag is GetBoolArg with a default of false.
func (s *Store) HasFlag(name string) bool {
	return s.GetBoolArg(name, false)
}

func resolveBool(positive, negated []string, def bool) bool {
	switch {
	case len(positive) > 0:
		return interpretBool(positive[0])
	case len(negated) > 0:
		return !interpretBool(negated[0])
	default:
		return def
	}
}

func interpretBool(val string) bool {
	return val != "0"
}

// SoftSetArg returns a store with name set to value, unless name is already
// set, in which case it returns s and false. s is not modified. A name that
// is not a flag, or that contains "=", is refused.
func (s *Store) SoftSetArg(name string, value string) (*Store, bool) {
	if strings.Contains(name, "=") {
		return s, false
	}
	f, ok := ParseFlag(name + "=" + value)
	if !ok || s.IsSet(f.Key()) {
		return s, false
	}
	return newStore(append(s.Flags(), f), s.Positional()), true
}

// SoftSetBoolArg is SoftSetArg for booleans. It also leaves the store alone
// if the negated form of name was given.
func (s *Store) SoftSetBoolArg(name string, value bool) (*Store, bool) {
	f, ok := ParseFlag(name)
	if !ok {
		return s, false
	}
	if s != nil && f.Kind == Positive && len(s.negations[f.Target()]) > 0 {
		return s, false
	}
	if value {
		return s.SoftSetArg(name, "1")
	}
	return s.SoftSetArg(name, "0")
}

// Flags returns every parsed flag, in command-line order.
func (s *Store) Flags() []Flag {
	if s == nil {
		return nil
	}
	return append([]Flag(nil), s.flags...)
}

// Positional returns the arguments that followed the flags.
func (s *Store) Positional() []string {
	if s == nil || len(s.positional) == 0 {
		return nil
	}
	return append([]string(nil), s.positional...)
}
