package style

import (
	"math"
	"strings"
)

// algorithm derives the unsigned, undecorated numeral for a magnitude.
// ok is false when the system cannot represent the magnitude and the
// style's fallback must take over.
//
// One variant exists per System, each carrying only the data that
// system needs; compile selects the variant at construction time.
type algorithm interface {
	render(magnitude uint64) (s string, ok bool)
}

func compile(system System, symbols []string, additive []AdditiveSymbol) algorithm {
	switch system {
	case Cyclic:
		return cyclicAlg{symbols: symbols}
	case Numeric:
		return numericAlg{symbols: symbols}
	case Fixed:
		return fixedAlg{symbols: symbols}
	case Alphabetic:
		return alphabeticAlg{symbols: symbols}
	case Symbolic:
		return symbolicAlg{symbols: symbols}
	case Additive:
		return additiveAlg{table: additive}
	}
	panic("style: unreachable system " + system.String())
}

// cyclicAlg selects symbols[(magnitude-1) mod n], where mod is the
// floored modulo, so magnitude 0 wraps to the last symbol. It always
// succeeds.
type cyclicAlg struct {
	symbols []string
}

func (a cyclicAlg) render(m uint64) (string, bool) {
	n := uint64(len(a.symbols))
	return a.symbols[(m+n-1)%n], true
}

// numericAlg is place-value counting in base len(symbols), with
// symbols[0] the zero digit. It always succeeds.
type numericAlg struct {
	symbols []string
}

func (a numericAlg) render(m uint64) (string, bool) {
	if m == 0 {
		return a.symbols[0], true
	}
	n := uint64(len(a.symbols))
	var digits []string
	for m > 0 {
		digits = append(digits, a.symbols[m%n])
		m /= n
	}
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(digits[i])
	}
	return b.String(), true
}

// fixedAlg maps magnitudes 1..n onto the symbol list once; anything
// else is the fallback's problem.
type fixedAlg struct {
	symbols []string
}

func (a fixedAlg) render(m uint64) (string, bool) {
	if m < 1 || m > uint64(len(a.symbols)) {
		return "", false
	}
	return a.symbols[m-1], true
}

// alphabeticAlg is bijective base-n counting: no digit denotes zero,
// and the sequence doubles in length after every n values (a..z, aa,
// ab, ...). Zero itself has no representation.
type alphabeticAlg struct {
	symbols []string
}

func (a alphabeticAlg) render(m uint64) (string, bool) {
	if m == 0 {
		return "", false
	}
	n := uint64(len(a.symbols))
	var digits []string
	for m != 0 {
		m--
		digits = append(digits, a.symbols[m%n])
		m /= n
	}
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(digits[i])
	}
	return b.String(), true
}

// symbolicAlg repeats the cycled symbol (magnitude/n)+1 times, so the
// output grows one symbol longer with each pass over the list. Output
// length is linear in the magnitude; a repeat count beyond the int
// limit cannot be materialized and defers to the fallback.
type symbolicAlg struct {
	symbols []string
}

func (a symbolicAlg) render(m uint64) (string, bool) {
	n := uint64(len(a.symbols))
	count := m/n + 1
	if count > uint64(math.MaxInt) {
		return "", false
	}
	sym := a.symbols[(m+n-1)%n]
	return strings.Repeat(sym, int(count)), true
}

// additiveAlg decomposes the magnitude against a strictly descending
// weight table, Roman-numeral style. Zero renders only if the table
// carries a weight-0 symbol; a table that cannot exhaust the magnitude
// defers to the fallback.
type additiveAlg struct {
	table []AdditiveSymbol
}

func (a additiveAlg) render(m uint64) (string, bool) {
	if m == 0 {
		for _, as := range a.table {
			if as.Weight == 0 {
				return as.Symbol, true
			}
		}
		return "", false
	}
	var b strings.Builder
	rem := m
	for _, as := range a.table {
		if as.Weight <= 0 {
			continue
		}
		w := uint64(as.Weight)
		if w > rem {
			continue
		}
		count := rem / w
		for i := uint64(0); i < count; i++ {
			b.WriteString(as.Symbol)
		}
		rem -= w * count
		if rem == 0 {
			break
		}
	}
	if rem != 0 {
		return "", false
	}
	return b.String(), true
}
