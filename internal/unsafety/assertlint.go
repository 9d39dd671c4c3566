package unsafety

import (
	"ember/internal/diag"
	"ember/internal/lints"
	"ember/internal/msg"
	"ember/internal/source"
)

// PanicPayload is the capability a panic description must expose to be
// attached to an assert finding: a renderable message key and the
// argument bindings that message needs. Any type implementing it plugs
// in without changes here.
type PanicPayload interface {
	MessageKey() msg.Key
	AddArgs(set func(name string, value diag.ArgValue))
}

type assertKind uint8

const (
	assertArithmeticOverflow assertKind = iota
	assertUnconditionalPanic
)

// AssertFinding pairs a span with a panic payload under one of two
// tags: arithmetic overflow or unconditional panic. Span and payload
// always travel together. Whether the finding is reported as a hard
// error or a lint is the caller's decision; the finding only carries
// what that decision needs.
type AssertFinding struct {
	kind    assertKind
	span    source.Span
	payload PanicPayload
}

// ArithmeticOverflow tags a finding for an operation that will
// overflow.
func ArithmeticOverflow(span source.Span, payload PanicPayload) AssertFinding {
	return AssertFinding{kind: assertArithmeticOverflow, span: span, payload: payload}
}

// UnconditionalPanic tags a finding for an operation that will panic
// at runtime.
func UnconditionalPanic(span source.Span, payload PanicPayload) AssertFinding {
	return AssertFinding{kind: assertUnconditionalPanic, span: span, payload: payload}
}

// LintID returns the stable lint identifier for the finding's tag,
// independent of the payload.
func (f AssertFinding) LintID() lints.ID {
	if f.kind == assertArithmeticOverflow {
		return lints.ArithmeticOverflow
	}
	return lints.UnconditionalPanic
}

// MessageKey returns the top-level message key for the finding's tag.
func (f AssertFinding) MessageKey() msg.Key {
	if f.kind == assertArithmeticOverflow {
		return msg.ArithmeticOverflow
	}
	return msg.OperationWillPanic
}

// Span returns the source location of the operation.
func (f AssertFinding) Span() source.Span {
	return f.span
}

// Payload returns the panic description.
func (f AssertFinding) Payload() PanicPayload {
	return f.payload
}

// OverflowPanic describes a binary arithmetic operation that would
// overflow, with pretty-printed operands.
type OverflowPanic struct {
	Op    string
	Left  string
	Right string
}

func (p OverflowPanic) MessageKey() msg.Key { return msg.PanicOverflow }

func (p OverflowPanic) AddArgs(set func(string, diag.ArgValue)) {
	set("op", diag.Str(p.Op))
	set("left", diag.Str(p.Left))
	set("right", diag.Str(p.Right))
}

// NegationOverflowPanic describes a negation that would overflow.
type NegationOverflowPanic struct {
	Operand string
}

func (p NegationOverflowPanic) MessageKey() msg.Key { return msg.PanicOverflowNeg }

func (p NegationOverflowPanic) AddArgs(set func(string, diag.ArgValue)) {
	set("operand", diag.Str(p.Operand))
}

// DivisionByZeroPanic describes a division with a zero divisor.
type DivisionByZeroPanic struct {
	Operand string
}

func (p DivisionByZeroPanic) MessageKey() msg.Key { return msg.PanicDivideByZero }

func (p DivisionByZeroPanic) AddArgs(set func(string, diag.ArgValue)) {
	set("operand", diag.Str(p.Operand))
}

// RemainderByZeroPanic describes a remainder with a zero divisor.
type RemainderByZeroPanic struct {
	Operand string
}

func (p RemainderByZeroPanic) MessageKey() msg.Key { return msg.PanicRemainderZero }

func (p RemainderByZeroPanic) AddArgs(set func(string, diag.ArgValue)) {
	set("operand", diag.Str(p.Operand))
}

// BoundsCheckPanic describes an out-of-bounds index.
type BoundsCheckPanic struct {
	Len   string
	Index string
}

func (p BoundsCheckPanic) MessageKey() msg.Key { return msg.PanicBoundsCheck }

func (p BoundsCheckPanic) AddArgs(set func(string, diag.ArgValue)) {
	set("len", diag.Str(p.Len))
	set("index", diag.Str(p.Index))
}
