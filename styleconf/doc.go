// Package styleconf loads counter-style definitions from YAML
// documents. Locale-specific symbol tables are data, not code: a
// document carries the same field set as style.Config, so the long
// tail of predefined styles can ship as configuration and be
// registered at startup.
package styleconf
