// Package params turns a process argument vector into an immutable store of
// flag values, and provides typed accessors with default fallback.
//
// Flags look like -name, --name, -name=value or --name=value. A flag may be
// given more than once; accessors that return a single value use the first
// one. A flag may also be negated by prefixing its name with "no":
//
//   -nolisten      same as -listen=0
//   -nolisten=1    same as -listen=0
//   -nolisten=0    same as -listen=1
//
// If both -listen and -nolisten are present, -listen always wins, whatever
// their order or values.
//
// Nothing in this package fails. Unknown flags fall back to the caller's
// default, and integers that do not parse become 0.
//
//   store := params.Normalize(os.Args[1:])
//   port := store.GetIntArg("-port", 8333)
//   if store.GetBoolArg("-listen", true) {
//     ...
//   }
package params
