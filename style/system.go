package style

import "fmt"

// System identifies the numeral-derivation family of a counter style.
type System int

const (
	// Cyclic repeats its symbol list endlessly (bullet markers).
	Cyclic System = iota

	// Numeric is place-value counting with a digit per symbol, where
	// the first symbol denotes zero (decimal, hexadecimal).
	Numeric

	// Fixed runs through its symbol list exactly once, then falls back.
	Fixed

	// Alphabetic is bijective counting with no zero digit, as in
	// spreadsheet columns: a..z, aa, ab, ...
	Alphabetic

	// Symbolic repeats the cycled symbol, doubling, tripling and so on
	// with every pass over the list: *, **, ***.
	Symbolic

	// Additive decomposes the value against a descending weight table,
	// as in Roman numerals.
	Additive
)

var systemNames = map[System]string{
	Cyclic:     "cyclic",
	Numeric:    "numeric",
	Fixed:      "fixed",
	Alphabetic: "alphabetic",
	Symbolic:   "symbolic",
	Additive:   "additive",
}

// String returns the lowercase system keyword used by configuration
// documents.
func (s System) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem converts a system keyword back to its System value.
func ParseSystem(name string) (System, error) {
	for s, n := range systemNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown system %q", name)
}

// DefaultRange returns the range a style of this system supports when
// its configuration does not narrow it: cyclic, numeric and fixed
// styles cover all integers, alphabetic and symbolic styles start at 1,
// additive styles start at 0.
func (s System) DefaultRange() Range {
	switch s {
	case Alphabetic, Symbolic:
		return AtLeast(1)
	case Additive:
		return AtLeast(0)
	default:
		return All()
	}
}

// minSymbols is the smallest symbol list each system can operate on.
// Additive styles use the weight table instead and carry no minimum
// here.
func (s System) minSymbols() int {
	switch s {
	case Numeric, Alphabetic:
		return 2
	case Additive:
		return 0
	default:
		return 1
	}
}
