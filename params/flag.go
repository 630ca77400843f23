package params

import "strings"

// Kind tells a positive flag apart from its "no"-prefixed negation.
type Kind int

const (
	// Positive is a flag given under its own name, eg -listen or -listen=0
	Positive Kind = iota
	// Negated is a flag given as -noNAME, optionally with =0 or =1
	Negated
)

func (k Kind) String() string {
	if k == Negated {
		return "Negated"
	}
	return "Positive"
}

const negationPrefix = "no"

// Flag is a single normalized command-line flag.
type Flag struct {
	Kind Kind
	// Name without leading dashes. For a Negated flag this is the name of the
	// positive flag it negates, so -noSTP has Name "STP".
	Name string
	// Value is "" for presence-only flags.
	Value string
	// HasValue is true if the token contained "=".
	HasValue bool
}

// Key returns the literal store key for the flag, including the leading dash:
// "-STP" for -STP and "-noSTP" for -noSTP.
func (f Flag) Key() string {
	if f.Kind == Negated {
		return "-" + negationPrefix + f.Name
	}
	return "-" + f.Name
}

// Target returns the key of the positive flag this flag configures.
func (f Flag) Target() string {
	return "-" + f.Name
}

// ParseFlag classifies a single argv token. It returns false if the token is
// not a flag: it has no leading dash, or nothing follows the dashes.
func ParseFlag(token string) (Flag, bool) {
	if !strings.HasPrefix(token, "-") {
		return Flag{}, false
	}
	rest := token[1:]
	// --foo is the same as -foo. Only one extra dash is eaten.
	rest = strings.TrimPrefix(rest, "-")
	if rest == "" {
		return Flag{}, false
	}

	f := Flag{Kind: Positive, Name: rest}
	if i := strings.IndexByte(rest, '='); i >= 0 {
		f.Name = rest[:i]
		f.Value = rest[i+1:]
		f.HasValue = true
	}

	if isNegation(f) {
		f.Kind = Negated
		f.Name = strings.TrimPrefix(f.Name, negationPrefix)
	}
	return f, true
}

// -noX, -noX=0 and -noX=1 negate X. Anything else starting with "no", like
// -notify=cmd, is an ordinary flag.
func isNegation(f Flag) bool {
	if len(f.Name) <= len(negationPrefix) || !strings.HasPrefix(f.Name, negationPrefix) {
		return false
	}
	return !f.HasValue || f.Value == "0" || f.Value == "1"
}
