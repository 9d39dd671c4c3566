package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
)

func TestJSONRoundTrip(t *testing.T) {
	fs, id := testFileSet(t)
	span := source.Span{File: id, Start: 16, End: 21}
	d := diag.NewError(diag.UnsafeRequiresUnsafe, span, "dereference of raw pointer is unsafe").
		WithKey("unsafety.requires-unsafe").
		WithPrimaryLabel("dereference of raw pointer").
		WithNote(source.Span{}, "unsafety.note.deref", "raw pointers may be null").
		WithArg("details", diag.Str("dereference of raw pointer")).
		WithArg("op_in_unsafe_fn_allowed", diag.Bool(false)).
		WithFix(diag.Fix{
			ID:            "wrap-unsafe",
			Title:         "wrap in an unsafe block",
			Applicability: diag.FixMaybeIncorrect,
			ToolOnly:      true,
		})

	var sb strings.Builder
	err := JSON(&sb, bagOf(d), fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeAuto,
		IncludeNotes:     true,
		IncludeFixes:     true,
		IncludeArgs:      true,
	})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded []DiagnosticJSON
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("want 1 diagnostic, got %d", len(decoded))
	}
	got := decoded[0]
	if got.Code != "E0133" || got.Severity != "error" {
		t.Errorf("code/severity = %s/%s", got.Code, got.Severity)
	}
	if got.Key != "unsafety.requires-unsafe" {
		t.Errorf("key = %q", got.Key)
	}
	if got.Primary.From == nil || got.Primary.From.Line != 2 || got.Primary.From.Col != 5 {
		t.Errorf("primary position = %+v", got.Primary.From)
	}
	if got.Args["op_in_unsafe_fn_allowed"] != "false" {
		t.Errorf("args = %v", got.Args)
	}
	if len(got.Fixes) != 1 || !got.Fixes[0].ToolOnly {
		t.Errorf("fixes = %+v", got.Fixes)
	}
	if got.Fixes[0].Applicability != "maybe-incorrect" {
		t.Errorf("applicability = %q", got.Fixes[0].Applicability)
	}
}

func TestJSONOmitsDisabledSections(t *testing.T) {
	fs, id := testFileSet(t)
	span := source.Span{File: id, Start: 16, End: 21}
	d := diag.NewError(diag.UnsafeRequiresUnsafe, span, "msg").
		WithNote(source.Span{}, "", "a note").
		WithFix(diag.Fix{Title: "f"})

	j := ToJSON(d, fs, JSONOpts{PathMode: PathModeAuto})
	if j.Notes != nil || j.Fixes != nil || j.Args != nil {
		t.Fatalf("disabled sections present: %+v", j)
	}
	if j.Primary.From != nil {
		t.Fatalf("positions present despite IncludePositions=false")
	}
}
