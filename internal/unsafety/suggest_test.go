package unsafety

import (
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/msg"
	"ember/internal/source"
)

func suggestion() *BlockSuggestion {
	return SuggestUnsafeBlock(
		source.Span{File: 0, Start: 20, End: 20},
		source.Span{File: 0, Start: 80, End: 80},
		source.Span{File: 0, Start: 0, End: 19},
	)
}

func TestSuggestionFix(t *testing.T) {
	f := suggestion().Fix("wrap it")

	if !f.ToolOnly {
		t.Error("suggestion fix must be tool-only")
	}
	if f.Applicability != diag.FixMaybeIncorrect {
		t.Errorf("Applicability = %s, want maybe-incorrect", f.Applicability)
	}
	if len(f.Edits) != 2 {
		t.Fatalf("edits = %d, want 2", len(f.Edits))
	}
	if !strings.Contains(f.Edits[0].NewText, "{") {
		t.Errorf("opening edit %q lacks an opening brace", f.Edits[0].NewText)
	}
	if !strings.Contains(f.Edits[1].NewText, "}") {
		t.Errorf("closing edit %q lacks a closing brace", f.Edits[1].NewText)
	}
	if f.Edits[0].Span == f.Edits[1].Span {
		t.Error("the two insertion spans must never be equal")
	}
}

func TestSuggestionAttach(t *testing.T) {
	store := msg.NewCatalog()
	s := suggestion()

	out := s.Attach(diag.Diagnostic{}, store)
	if len(out.Notes) != 1 {
		t.Fatalf("notes = %d, want 1", len(out.Notes))
	}
	if out.Notes[0].Span != s.Signature {
		t.Errorf("note span = %v, want signature span %v", out.Notes[0].Span, s.Signature)
	}
	if len(out.Fixes) != 1 {
		t.Fatalf("fixes = %d, want 1", len(out.Fixes))
	}
	if out.Fixes[0].Title == "" {
		t.Error("fix title must be rendered from the template store")
	}
}
