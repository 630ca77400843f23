package cli

import (
	"regexp"
	"strings"
)

// Regexps is a repeatable flag value holding compiled regular expressions.
// Each value of the flag is compiled and appended.
//
//   cfg := struct {
//     Exclude cli.Regexps `help:"Skip paths matching this pattern. Pass more than once."`
//   }{}
type Regexps []*regexp.Regexp

// Set is part of the flag.Value interface
func (r *Regexps) Set(s string) error {
	v, err := regexp.Compile(s)
	if err != nil {
		return err
	}
	*r = append(*r, v)
	return nil
}

// String is part of the flag.Value interface
func (r *Regexps) String() string {
	if r == nil {
		return ""
	}
	parts := make([]string, len(*r))
	for i, v := range *r {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

// MatchAny returns true if any of the expressions match s.
func (r Regexps) MatchAny(s string) bool {
	for _, v := range r {
		if v.MatchString(s) {
			return true
		}
	}
	return false
}
