// Package style implements the counter-style formatting engine.
//
// A style renders an integer as a textual numeral according to one of
// the six numbering systems of the W3C CSS Counter Styles model:
// cyclic, numeric, fixed, alphabetic, symbolic and additive. Each style
// is a named, immutable Definition combining a system, its symbol data,
// sign/prefix/suffix decoration, optional zero-padding, a supported
// range, and the name of a fallback style.
//
// ARCHITECTURE:
//
// Compile-Then-Render:
// Definitions are validated and compiled once by New. Compilation
// selects a tagged per-system variant carrying only the data that
// system needs (an additive variant holds the weight table and nothing
// else), so an invalid shape cannot reach render time.
//
// Explicit Registry:
// Fallback resolution never touches package-level state. Callers pass a
// Registry to CounterContent/MarkerContent; the registry maps style
// names to definitions and resolves unknown names to its "decimal"
// entry. A fresh registry from NewRegistry is seeded with the
// predefined baseline styles.
//
// Totality:
// CounterContent and MarkerContent never fail. Out-of-range values,
// exhausted fixed tables, additive tables that cannot decompose a
// value, and unknown fallback names all resolve silently through the
// fallback chain, which terminates at a numeric unbounded style. Even a
// registry whose "decimal" entry has been overridden with a partial
// style cannot break this: a fallback chain that revisits a style is
// cut over to the builtin decimal algorithm.
//
// Thread-safety: Definition values are immutable after construction and
// safe for unsynchronized concurrent reads. A Registry requires
// external synchronization between a writer and any other access; a
// fully-seeded registry used read-only needs no locking.
package style
