package style

import "golang.org/x/text/unicode/norm"

// Registry maps style names to definitions and resolves fallbacks.
// Lookups are total: an unknown name resolves to the "decimal" entry.
// Keys are NFC-normalized, so a name registers and resolves identically
// in any normalization form.
//
// Registration requires external synchronization against any other
// access; a fully-seeded registry used read-only is safe to share.
type Registry struct {
	styles map[string]*Definition
}

// NewRegistry returns a registry seeded with the predefined baseline
// styles, "decimal" included.
func NewRegistry() *Registry {
	r := &Registry{styles: make(map[string]*Definition, len(predefined))}
	r.RegisterAll(predefined...)
	return r
}

// Lookup returns the definition registered under name, the "decimal"
// entry when name is unknown, and the builtin decimal when even that
// entry is missing. It never fails.
func (r *Registry) Lookup(name string) *Definition {
	if d, ok := r.styles[norm.NFC.String(name)]; ok {
		return d
	}
	if d, ok := r.styles[DefaultFallback]; ok {
		return d
	}
	return builtinDecimal
}

// Register inserts def, overwriting any entry with the same name.
func (r *Registry) Register(def *Definition) {
	r.styles[def.name] = def
}

// RegisterAll registers defs in order; on a name collision the later
// entry wins.
func (r *Registry) RegisterAll(defs ...*Definition) {
	for _, def := range defs {
		r.Register(def)
	}
}

// Len returns the number of registered styles.
func (r *Registry) Len() int {
	return len(r.styles)
}
