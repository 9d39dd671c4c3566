// Package unsafety turns findings of the MIR safety checker into
// diagnostics.
//
// The walker that discovers unsafe operations lives elsewhere; this
// package owns everything after discovery: the closed violation
// taxonomy (ViolationDetail), the decision between hard error, lint
// and permitted (Classify), the unsafe-block fix suggestion, and the
// assembly of the final diag.Diagnostic records (Assembler). Assert
// findings (arithmetic overflow, unconditional panic) and the simple
// single-purpose lints share the Assembler.
//
// Every entry point is a pure function over immutable inputs; the
// package holds no state and is safe to call concurrently across
// independent function bodies.
package unsafety
