// Package lints holds the registry of built-in lints and their
// effective levels.
//
// Lint identifiers are part of the stable, documented surface: external
// tooling matches on them, so the strings here must never change.
package lints

import (
	"fmt"
	"sort"

	"ember/internal/diag"
)

// ID is the stable identifier of a lint.
type ID string

const (
	ArithmeticOverflow ID = "arithmetic_overflow"
	UnconditionalPanic ID = "unconditional_panic"
	UnsafeOpInUnsafeFn ID = "unsafe_op_in_unsafe_fn"
	FfiUnwindCall      ID = "ffi_unwind_call"
	FnItemRef          ID = "fn_item_ref"
	UnusedUnsafe       ID = "unused_unsafe"
	ConstItemMutation  ID = "const_item_mutation"
	MustNotSuspend     ID = "must_not_suspend"
)

// Level is the user-configurable severity of a lint.
type Level uint8

const (
	// LevelAllow suppresses the lint entirely.
	LevelAllow Level = iota
	LevelWarn
	LevelDeny
)

func (l Level) String() string {
	switch l {
	case LevelAllow:
		return "allow"
	case LevelWarn:
		return "warn"
	case LevelDeny:
		return "deny"
	}
	return "unknown"
}

// ParseLevel converts a config string into a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "allow":
		return LevelAllow, nil
	case "warn":
		return LevelWarn, nil
	case "deny":
		return LevelDeny, nil
	}
	return LevelAllow, fmt.Errorf("unknown lint level %q", s)
}

// Severity maps a level onto the diagnostic severity scale. LevelAllow
// has no severity; callers must check for it before emitting.
func (l Level) Severity() diag.Severity {
	if l == LevelDeny {
		return diag.SevError
	}
	return diag.SevWarning
}

// Lint describes one built-in lint.
type Lint struct {
	ID           ID
	DefaultLevel Level
	Summary      string
}

var registry = map[ID]Lint{
	ArithmeticOverflow: {ArithmeticOverflow, LevelDeny, "arithmetic operation that will overflow at runtime"},
	UnconditionalPanic: {UnconditionalPanic, LevelDeny, "operation that will panic at runtime"},
	UnsafeOpInUnsafeFn: {UnsafeOpInUnsafeFn, LevelWarn, "unsafe operation in an unsafe function without an explicit unsafe block"},
	FfiUnwindCall:      {FfiUnwindCall, LevelWarn, "call through an FFI-unwind ABI that may unwind across the boundary"},
	FnItemRef:          {FnItemRef, LevelWarn, "reference taken to a function item instead of a function pointer"},
	UnusedUnsafe:       {UnusedUnsafe, LevelWarn, "unsafe block without unsafe operations inside"},
	ConstItemMutation:  {ConstItemMutation, LevelWarn, "attempt to mutate a const item through a temporary"},
	MustNotSuspend:     {MustNotSuspend, LevelAllow, "value that must not be held across a suspend point"},
}

// Get returns the lint with the given ID.
func Get(id ID) (Lint, bool) {
	l, ok := registry[id]
	return l, ok
}

// All returns every registered lint, sorted by ID.
func All() []Lint {
	out := make([]Lint, 0, len(registry))
	for _, l := range registry {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
