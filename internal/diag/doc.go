// Package diag defines the diagnostic model shared by the safety
// checker and its rendering layers.
//
// Diagnostic is the central record: severity, stable code, primary span
// with an optional label, secondary labels, notes, help, structured
// arguments, and fix suggestions. Producers (internal/unsafety) build
// Diagnostics through the constructors here; consumers (internal/diagfmt,
// internal/fix) only read them.
//
// The model is deterministic and data-only. Fixes carry an applicability
// level and a ToolOnly flag; tool-only fixes are meant for editor
// integration and must not be surfaced as plain-text suggestions.
// Argument names within one record are unique by construction: Args.Set
// panics on a duplicate, since a collision is a programming error in the
// producer, not a recoverable condition.
package diag
