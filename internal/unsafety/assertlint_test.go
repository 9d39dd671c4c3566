package unsafety

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/lints"
	"ember/internal/source"
)

func TestAssertFindingProjections(t *testing.T) {
	span := source.Span{File: 1, Start: 7, End: 12}
	payloads := []PanicPayload{
		OverflowPanic{Op: "+", Left: "i32::MAX", Right: "1"},
		DivisionByZeroPanic{Operand: "x"},
	}
	for _, p := range payloads {
		ovf := ArithmeticOverflow(span, p)
		if ovf.LintID() != lints.ArithmeticOverflow {
			t.Errorf("LintID = %s, want arithmetic_overflow regardless of payload", ovf.LintID())
		}
		if ovf.Span() != span {
			t.Errorf("Span = %v, want %v", ovf.Span(), span)
		}

		panics := UnconditionalPanic(span, p)
		if panics.LintID() != lints.UnconditionalPanic {
			t.Errorf("LintID = %s, want unconditional_panic", panics.LintID())
		}
		if panics.Span() != span {
			t.Errorf("Span = %v, want %v", panics.Span(), span)
		}
	}
}

func TestAssertLintOverflow(t *testing.T) {
	a := newAssembler()
	span := source.Span{File: 0, Start: 3, End: 8}
	finding := ArithmeticOverflow(span, OverflowPanic{Op: "+", Left: "255_u8", Right: "1_u8"})

	d, err := a.AssertLint(finding, diag.SevError)
	if err != nil {
		t.Fatalf("AssertLint: %v", err)
	}
	if d.Message != "this arithmetic operation will overflow" {
		t.Errorf("message = %q", d.Message)
	}
	if d.PrimaryLabel != "attempt to compute `255_u8 + 1_u8`, which would overflow" {
		t.Errorf("primary label = %q", d.PrimaryLabel)
	}
	if d.Lint != "arithmetic_overflow" {
		t.Errorf("lint = %q", d.Lint)
	}
	// payload arguments pass through unreinterpreted
	for _, name := range []string{"op", "left", "right"} {
		if _, ok := d.Args.Get(name); !ok {
			t.Errorf("missing pass-through argument %q", name)
		}
	}
}

func TestAssertLintUnconditionalPanic(t *testing.T) {
	a := newAssembler()
	span := source.Span{File: 0, Start: 3, End: 8}
	finding := UnconditionalPanic(span, BoundsCheckPanic{Len: "3", Index: "7"})

	d, err := a.AssertLint(finding, diag.SevWarning)
	if err != nil {
		t.Fatalf("AssertLint: %v", err)
	}
	if d.Message != "this operation will panic at runtime" {
		t.Errorf("message = %q", d.Message)
	}
	if d.PrimaryLabel != "index out of bounds: the length is 3 but the index is 7" {
		t.Errorf("primary label = %q", d.PrimaryLabel)
	}
	if d.Severity != diag.SevWarning {
		t.Errorf("severity = %s", d.Severity)
	}
}

func TestPanicPayloadKeys(t *testing.T) {
	tests := []struct {
		payload PanicPayload
		want    string
	}{
		{OverflowPanic{}, "panic_overflow"},
		{NegationOverflowPanic{}, "panic_overflow_neg"},
		{DivisionByZeroPanic{}, "panic_divide_by_zero"},
		{RemainderByZeroPanic{}, "panic_remainder_zero"},
		{BoundsCheckPanic{}, "panic_bounds_check"},
	}
	for _, tt := range tests {
		if got := string(tt.payload.MessageKey()); got != tt.want {
			t.Errorf("MessageKey = %q, want %q", got, tt.want)
		}
	}
}
