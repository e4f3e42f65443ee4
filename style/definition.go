package style

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultFallback is the style consulted when a style cannot represent
// a value and names no other fallback.
const DefaultFallback = "decimal"

// AdditiveSymbol pairs an integer weight with the symbol that denotes
// it in an additive style. Tables list their pairs in strictly
// descending weight order.
type AdditiveSymbol struct {
	Weight int64
	Symbol string
}

// Config is the entire construction surface of a style. Pointer fields
// distinguish "not set, use the default" from an explicit empty value:
// Negative defaults to "-", Suffix to ". ", Range to the system's
// default, Fallback to "decimal".
type Config struct {
	// Name uniquely identifies the style within a registry.
	Name string

	// System selects the numeral-derivation family.
	System System

	// Symbols is the ordered symbol list used by every system except
	// additive. Minimums: two symbols for numeric and alphabetic, one
	// for cyclic, fixed and symbolic.
	Symbols []string

	// AdditiveSymbols is the descending weight table of an additive
	// style. Ignored by the other systems.
	AdditiveSymbols []AdditiveSymbol

	// Negative is prepended to the representation of negative values.
	Negative *string

	// Prefix and Suffix wrap marker content. Counter content carries
	// neither.
	Prefix string
	Suffix *string

	// Range limits the values the style represents itself; anything
	// outside is delegated to the fallback.
	Range *Range

	// PadLength and PadSymbol left-pad counter content to at least
	// PadLength symbols. The pad symbol counts as one symbol per copy
	// regardless of its rune count; content is never truncated.
	PadLength int
	PadSymbol string

	// Fallback names the style that takes over for values this style
	// cannot represent.
	Fallback string
}

// Validate checks Config against the construction rules. It returns
// all violations, not just the first.
func (c Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "must not be empty"})
	}
	if _, ok := systemNames[c.System]; !ok {
		errs = append(errs, ValidationError{
			Field:   "system",
			Message: fmt.Sprintf("unknown system %d", int(c.System)),
		})
		return errs
	}
	if c.PadLength < 0 {
		errs = append(errs, ValidationError{
			Field:   "pad_length",
			Message: fmt.Sprintf("must not be negative, got %d", c.PadLength),
		})
	}

	if c.System == Additive {
		if len(c.AdditiveSymbols) == 0 {
			errs = append(errs, ValidationError{
				Field:   "additive_symbols",
				Message: "additive styles require a non-empty weight table",
			})
		}
		prev := int64(-1)
		for i, as := range c.AdditiveSymbols {
			if as.Weight < 0 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("additive_symbols[%d].weight", i),
					Message: fmt.Sprintf("must not be negative, got %d", as.Weight),
				})
			}
			if i > 0 && as.Weight >= prev {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("additive_symbols[%d].weight", i),
					Message: fmt.Sprintf("weights must be strictly descending, got %d after %d", as.Weight, prev),
				})
			}
			prev = as.Weight
		}
	} else if min := c.System.minSymbols(); len(c.Symbols) < min {
		errs = append(errs, ValidationError{
			Field:   "symbols",
			Message: fmt.Sprintf("%s styles require at least %d symbol(s), got %d", c.System, min, len(c.Symbols)),
		})
	}

	return errs
}

// Definition is a named, immutable, compiled counter style. Construct
// it with New; a Definition is safe for unsynchronized concurrent
// reads and may be shared across registries.
type Definition struct {
	name     string
	system   System
	negative string
	prefix   string
	suffix   string
	rng      Range
	padLen   int
	padSym   string
	fallback string
	alg      algorithm
}

// New validates cfg, applies defaults, and compiles the style. Name
// and symbol data are NFC-normalized so that registry keys and output
// do not depend on the normalization form of the source text. The
// returned error, if any, is an *InvalidConfigError listing every
// violation.
func New(cfg Config) (*Definition, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &InvalidConfigError{Name: cfg.Name, Errs: errs}
	}

	d := &Definition{
		name:     norm.NFC.String(cfg.Name),
		system:   cfg.System,
		negative: "-",
		prefix:   cfg.Prefix,
		suffix:   ". ",
		rng:      cfg.System.DefaultRange(),
		padLen:   cfg.PadLength,
		padSym:   cfg.PadSymbol,
		fallback: DefaultFallback,
	}
	if cfg.Negative != nil {
		d.negative = *cfg.Negative
	}
	if cfg.Suffix != nil {
		d.suffix = *cfg.Suffix
	}
	if cfg.Range != nil {
		d.rng = *cfg.Range
	}
	if cfg.Fallback != "" {
		d.fallback = norm.NFC.String(cfg.Fallback)
	}

	symbols := make([]string, len(cfg.Symbols))
	for i, s := range cfg.Symbols {
		symbols[i] = norm.NFC.String(s)
	}
	additive := make([]AdditiveSymbol, len(cfg.AdditiveSymbols))
	for i, as := range cfg.AdditiveSymbols {
		additive[i] = AdditiveSymbol{Weight: as.Weight, Symbol: norm.NFC.String(as.Symbol)}
	}
	d.alg = compile(cfg.System, symbols, additive)

	return d, nil
}

// MustNew is New for static style tables; it panics on an invalid
// Config.
func MustNew(cfg Config) *Definition {
	d, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the style's (NFC-normalized) registry key.
func (d *Definition) Name() string { return d.name }

// System returns the style's numbering system.
func (d *Definition) System() System { return d.system }

// Range returns the range of values the style represents itself.
func (d *Definition) Range() Range { return d.rng }

// Fallback returns the name of the style consulted for values this
// style cannot represent.
func (d *Definition) Fallback() string { return d.fallback }

// CounterContent renders v as this style's numeral: the raw derivation
// of |v|, left-padded to the pad length, with the negative sign
// prepended for negative values. reg resolves fallbacks; for a value
// outside the style's range the fallback's raw derivation is returned
// verbatim, with no sign, padding or decoration from any style.
// CounterContent never fails.
func (d *Definition) CounterContent(reg *Registry, v int64) string {
	if !d.rng.Contains(v) {
		seen := map[string]bool{d.name: true}
		return d.fallbackRaw(reg, rawValue{mag: magnitude(v), neg: v < 0}, seen)
	}

	seen := map[string]bool{d.name: true}
	unsigned := d.raw(reg, rawValue{mag: magnitude(v)}, seen)

	if v < 0 {
		target := d.padLen - utf8.RuneCountInString(d.negative)
		return d.negative + leftPad(unsigned, d.padSym, target)
	}
	return leftPad(unsigned, d.padSym, d.padLen)
}

// MarkerContent is CounterContent wrapped in the style's prefix and
// suffix, the form used for list-item markers.
func (d *Definition) MarkerContent(reg *Registry, v int64) string {
	return d.prefix + d.CounterContent(reg, v) + d.suffix
}

// rawValue carries a value through fallback resolution. mag is the
// magnitude the algorithms consume; neg marks inputs that entered the
// chain as a negative out-of-range value, so every range gate on the
// way down still sees the signed value.
type rawValue struct {
	mag uint64
	neg bool
}

// raw is the undecorated derivation: it re-tests the style's range
// against the incoming value (a second gate, independent of the signed
// check in CounterContent) and runs the compiled algorithm, deferring
// to the fallback on either failure.
func (d *Definition) raw(reg *Registry, rv rawValue, seen map[string]bool) string {
	if !d.rawInRange(rv) {
		return d.fallbackRaw(reg, rv, seen)
	}
	s, ok := d.alg.render(rv.mag)
	if !ok {
		return d.fallbackRaw(reg, rv, seen)
	}
	return s
}

func (d *Definition) rawInRange(rv rawValue) bool {
	if rv.neg {
		// mag ≤ 2^63 here, so the negation is exact.
		return d.rng.Contains(-int64(rv.mag))
	}
	return d.rng.containsMagnitude(rv.mag)
}

// fallbackRaw resolves the next style in the chain. A chain that
// revisits a style would never terminate, so it is cut over to the
// builtin decimal algorithm, which represents every magnitude.
func (d *Definition) fallbackRaw(reg *Registry, rv rawValue, seen map[string]bool) string {
	fb := reg.Lookup(d.fallback)
	if seen[fb.name] {
		s, _ := builtinDecimal.alg.render(rv.mag)
		return s
	}
	seen[fb.name] = true
	return fb.raw(reg, rv, seen)
}

// magnitude returns |v| without overflowing on math.MinInt64.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// leftPad prepends copies of pad until s is at least target symbols
// long. Content length is measured in runes; pad counts as one symbol
// per copy. s is never truncated.
func leftPad(s, pad string, target int) string {
	if pad == "" || target <= 0 {
		return s
	}
	missing := target - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return strings.Repeat(pad, missing) + s
}
