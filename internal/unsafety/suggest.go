package unsafety

import (
	"ember/internal/diag"
	"ember/internal/fix"
	"ember/internal/msg"
	"ember/internal/source"
)

// BlockSuggestion proposes wrapping a function body in an explicit
// unsafe block. It exists only when the violation was classified as a
// lint inside an unsafe fn: the operation is already permitted, the
// suggestion just makes the permission explicit.
type BlockSuggestion struct {
	// BodyStart points just after the function's opening brace,
	// BodyEnd just before the closing brace. Signature covers the
	// function header the explanatory note anchors to.
	BodyStart source.Span
	BodyEnd   source.Span
	Signature source.Span
}

// SuggestUnsafeBlock computes the minimal insertion pair for the given
// function spans.
func SuggestUnsafeBlock(bodyStart, bodyEnd, signature source.Span) *BlockSuggestion {
	return &BlockSuggestion{
		BodyStart: bodyStart,
		BodyEnd:   bodyEnd,
		Signature: signature,
	}
}

// Fix packages the suggestion as a tool-only edit pair. Blindly
// wrapping the whole body is not always the ideal change (a tighter
// block may be preferable), so the applicability stays MaybeIncorrect
// and the fix never auto-applies.
func (s *BlockSuggestion) Fix(title string) diag.Fix {
	return fix.Wrap(title, s.BodyStart, s.BodyEnd, " unsafe {", "}",
		fix.WithApplicability(diag.FixMaybeIncorrect),
		fix.ToolOnly(),
	)
}

// Attach decorates a lint diagnostic with the signature note and the
// tool-only fix. Both texts are fixed catalog labels without
// placeholders, so a failed render is a programming error.
func (s *BlockSuggestion) Attach(out diag.Diagnostic, store msg.Store) diag.Diagnostic {
	note := msg.MustRender(store, msg.UnsafeFnBodySafeNote, &diag.Args{})
	title := msg.MustRender(store, msg.WrapInUnsafeBlock, &diag.Args{})
	out = out.WithNote(s.Signature, string(msg.UnsafeFnBodySafeNote), note)
	return out.WithFix(s.Fix(title))
}
