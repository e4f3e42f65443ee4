package styleconf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/numeral/style"
)

// Document is the top-level shape of a style configuration file.
type Document struct {
	Styles []Entry `yaml:"styles"`
}

// Entry mirrors style.Config field-for-field. Absent optional fields
// keep style.Config's defaults; an explicitly empty negative or suffix
// is honored.
type Entry struct {
	Name            string        `yaml:"name"`
	System          string        `yaml:"system"`
	Symbols         []string      `yaml:"symbols,omitempty"`
	AdditiveSymbols []WeightEntry `yaml:"additive_symbols,omitempty"`
	Negative        *string       `yaml:"negative,omitempty"`
	Prefix          string        `yaml:"prefix,omitempty"`
	Suffix          *string       `yaml:"suffix,omitempty"`
	Range           *RangeEntry   `yaml:"range,omitempty"`
	PadLength       int           `yaml:"pad_length,omitempty"`
	PadSymbol       string        `yaml:"pad_symbol,omitempty"`
	Fallback        string        `yaml:"fallback,omitempty"`
}

// WeightEntry is one weight/symbol pair of an additive table.
type WeightEntry struct {
	Weight int64  `yaml:"weight"`
	Symbol string `yaml:"symbol"`
}

// RangeEntry bounds a style's range; an absent bound is unbounded in
// that direction.
type RangeEntry struct {
	Min *int64 `yaml:"min"`
	Max *int64 `yaml:"max"`
}

// EntryError reports one invalid field of one document entry.
type EntryError struct {
	Index   int // position in the styles list
	Field   string
	Message string
}

func (e EntryError) Error() string {
	return fmt.Sprintf("styles[%d].%s: %s", e.Index, e.Field, e.Message)
}

// ParseError aggregates every invalid entry of a document. Parsing
// collects all errors rather than stopping at the first.
type ParseError struct {
	Errs []EntryError
}

func (e *ParseError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, ee := range e.Errs {
		msgs[i] = ee.Error()
	}
	return "invalid style document: " + strings.Join(msgs, "; ")
}

// Parse decodes a style document and converts every entry to a
// style.Config. Entry validation beyond the document shape (symbol
// minimums, pad length) is style.New's job; Parse only rejects what
// cannot be expressed as a Config at all.
func Parse(r io.Reader) ([]style.Config, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode style document: %w", err)
	}

	var errs []EntryError
	configs := make([]style.Config, 0, len(doc.Styles))
	for i, e := range doc.Styles {
		cfg, entryErrs := e.toConfig(i)
		if len(entryErrs) > 0 {
			errs = append(errs, entryErrs...)
			continue
		}
		configs = append(configs, cfg)
	}
	if len(errs) > 0 {
		return nil, &ParseError{Errs: errs}
	}
	return configs, nil
}

func (e Entry) toConfig(index int) (style.Config, []EntryError) {
	var errs []EntryError

	system, err := style.ParseSystem(e.System)
	if err != nil {
		errs = append(errs, EntryError{Index: index, Field: "system", Message: err.Error()})
	}
	if e.Range != nil && e.Range.Min != nil && e.Range.Max != nil && *e.Range.Min > *e.Range.Max {
		errs = append(errs, EntryError{
			Index:   index,
			Field:   "range",
			Message: fmt.Sprintf("min %d exceeds max %d", *e.Range.Min, *e.Range.Max),
		})
	}
	if len(errs) > 0 {
		return style.Config{}, errs
	}

	cfg := style.Config{
		Name:      e.Name,
		System:    system,
		Symbols:   e.Symbols,
		Negative:  e.Negative,
		Prefix:    e.Prefix,
		Suffix:    e.Suffix,
		PadLength: e.PadLength,
		PadSymbol: e.PadSymbol,
		Fallback:  e.Fallback,
	}
	for _, w := range e.AdditiveSymbols {
		cfg.AdditiveSymbols = append(cfg.AdditiveSymbols, style.AdditiveSymbol{
			Weight: w.Weight,
			Symbol: w.Symbol,
		})
	}
	if e.Range != nil {
		r := e.Range.toRange()
		cfg.Range = &r
	}
	return cfg, nil
}

func (r RangeEntry) toRange() style.Range {
	switch {
	case r.Min != nil && r.Max != nil:
		return style.Bounded(*r.Min, *r.Max)
	case r.Min != nil:
		return style.AtLeast(*r.Min)
	case r.Max != nil:
		return style.AtMost(*r.Max)
	default:
		return style.All()
	}
}

// ParseFile is Parse over the document at path.
func ParseFile(path string) ([]style.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open style document: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Load parses a document and registers every style it defines into
// reg, in document order; on a name collision the later entry wins.
// Construction errors from individual entries are aggregated, and
// valid entries are still registered.
func Load(reg *style.Registry, r io.Reader) error {
	configs, err := Parse(r)
	if err != nil {
		return err
	}
	var errs []error
	for _, cfg := range configs {
		def, err := style.New(cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reg.Register(def)
	}
	if len(errs) > 0 {
		return fmt.Errorf("load styles: %w", errors.Join(errs...))
	}
	return nil
}

// LoadFile is Load over the document at path.
func LoadFile(reg *style.Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open style document: %w", err)
	}
	defer f.Close()
	return Load(reg, f)
}
