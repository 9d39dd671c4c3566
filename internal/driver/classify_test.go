package driver

import (
	"context"
	"testing"

	"ember/internal/diag"
	"ember/internal/lints"
	"ember/internal/source"
	"ember/internal/unsafety"
)

const testSource = "fn f() { deref(p); }\n"

func testReport(isUnsafeFn bool) *Report {
	return &Report{
		Files: []ReportFile{{Path: "lib.em", Content: []byte(testSource)}},
		Bodies: []BodyRecord{
			{
				Name:       "f",
				Signature:  SpanRecord{File: 0, Start: 0, End: 7},
				BodyStart:  SpanRecord{File: 0, Start: 8, End: 9},
				BodyEnd:    SpanRecord{File: 0, Start: 19, End: 20},
				IsUnsafeFn: isUnsafeFn,
				Violations: []ViolationRecord{
					{
						Span: SpanRecord{File: 0, Start: 9, End: 17},
						Kind: uint8(unsafety.DerefOfRawPointer),
					},
				},
			},
		},
	}
}

func TestClassifyReportHardError(t *testing.T) {
	results, err := ClassifyReport(context.Background(), testReport(false), source.NewFileSet(), Options{})
	if err != nil {
		t.Fatalf("ClassifyReport: %v", err)
	}
	bag := MergeResults(results, 0)
	if bag.Len() != 1 {
		t.Fatalf("want 1 diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.UnsafeRequiresUnsafe || d.Severity != diag.SevError {
		t.Errorf("code/sev = %v/%v", d.Code, d.Severity)
	}
	if d.Message != "dereference of raw pointer is unsafe and requires unsafe block" {
		t.Errorf("message = %q", d.Message)
	}
}

func TestClassifyReportLintInUnsafeFn(t *testing.T) {
	results, err := ClassifyReport(context.Background(), testReport(true), source.NewFileSet(), Options{})
	if err != nil {
		t.Fatalf("ClassifyReport: %v", err)
	}
	bag := MergeResults(results, 0)
	if bag.Len() != 1 {
		t.Fatalf("want 1 diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.LintCode || d.Lint != string(lints.UnsafeOpInUnsafeFn) {
		t.Errorf("code/lint = %v/%q", d.Code, d.Lint)
	}
	if len(d.Fixes) != 1 || !d.Fixes[0].ToolOnly {
		t.Errorf("fixes = %+v", d.Fixes)
	}
}

func TestClassifyReportPermitted(t *testing.T) {
	cfg, err := lints.ParseConfig("[lints]\nunsafe_op_in_unsafe_fn = \"allow\"\n")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	results, err := ClassifyReport(context.Background(), testReport(true), source.NewFileSet(), Options{Config: cfg})
	if err != nil {
		t.Fatalf("ClassifyReport: %v", err)
	}
	if bag := MergeResults(results, 0); bag.Len() != 0 {
		t.Fatalf("permitted operation still reported: %+v", bag.Items())
	}
}

func TestClassifyReportOverflowChecksPromote(t *testing.T) {
	rep := &Report{
		Files: []ReportFile{{Path: "lib.em", Content: []byte("let x = a + b;\n")}},
		Bodies: []BodyRecord{
			{
				Name: "f",
				Asserts: []AssertRecord{
					{
						Span:    SpanRecord{File: 0, Start: 8, End: 13},
						Tag:     AssertTagOverflow,
						Payload: PayloadOverflow,
						Op:      "+", Left: "a", Right: "b",
					},
				},
			},
		},
	}

	run := func(overflowChecks bool) diag.Diagnostic {
		t.Helper()
		cfg := lints.DefaultConfig()
		cfg.OverflowChecks = overflowChecks
		results, err := ClassifyReport(context.Background(), rep, source.NewFileSet(), Options{Config: cfg})
		if err != nil {
			t.Fatalf("ClassifyReport: %v", err)
		}
		bag := MergeResults(results, 0)
		if bag.Len() != 1 {
			t.Fatalf("want 1 diagnostic, got %d", bag.Len())
		}
		return bag.Items()[0]
	}

	// default level for arithmetic_overflow is deny, already an error
	if d := run(false); d.Severity != diag.SevError {
		t.Errorf("severity without overflow-checks = %v", d.Severity)
	}
	d := run(true)
	if d.Severity != diag.SevError {
		t.Errorf("severity with overflow-checks = %v", d.Severity)
	}
	if d.Message != "this arithmetic operation will overflow" {
		t.Errorf("message = %q", d.Message)
	}
}

func TestClassifyReportSimpleLintLevels(t *testing.T) {
	rep := &Report{
		Files: []ReportFile{{Path: "lib.em", Content: []byte("unsafe { }\n")}},
		Bodies: []BodyRecord{
			{
				Name: "f",
				Lints: []SimpleLintRecord{
					{Kind: LintTagUnusedUnsafe, Span: SpanRecord{File: 0, Start: 0, End: 10}},
				},
			},
		},
	}

	results, err := ClassifyReport(context.Background(), rep, source.NewFileSet(), Options{})
	if err != nil {
		t.Fatalf("ClassifyReport: %v", err)
	}
	bag := MergeResults(results, 0)
	if bag.Len() != 1 {
		t.Fatalf("want 1 diagnostic, got %d", bag.Len())
	}
	if got := bag.Items()[0].Message; got != "unnecessary `unsafe` block" {
		t.Errorf("message = %q", got)
	}

	// allow suppresses it
	cfg, err := lints.ParseConfig("[lints]\nunused_unsafe = \"allow\"\n")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	results, err = ClassifyReport(context.Background(), rep, source.NewFileSet(), Options{Config: cfg})
	if err != nil {
		t.Fatalf("ClassifyReport: %v", err)
	}
	if bag := MergeResults(results, 0); bag.Len() != 0 {
		t.Fatalf("allowed lint still reported")
	}
}

func TestClassifyReportDeterministicOrder(t *testing.T) {
	rep := &Report{
		Files: []ReportFile{{Path: "lib.em", Content: []byte(testSource)}},
	}
	for i := 0; i < 8; i++ {
		body := testReport(false).Bodies[0]
		body.Name = string(rune('a' + i))
		rep.Bodies = append(rep.Bodies, body)
	}

	results, err := ClassifyReport(context.Background(), rep, source.NewFileSet(), Options{Jobs: 4})
	if err != nil {
		t.Fatalf("ClassifyReport: %v", err)
	}
	for i, r := range results {
		if want := string(rune('a' + i)); r.Name != want {
			t.Fatalf("result %d = %q, want %q", i, r.Name, want)
		}
	}
}

func TestClassifyReportUnknownKind(t *testing.T) {
	rep := testReport(false)
	rep.Bodies[0].Violations[0].Kind = 99
	if _, err := ClassifyReport(context.Background(), rep, source.NewFileSet(), Options{}); err == nil {
		t.Fatal("unknown violation kind accepted")
	}
}
