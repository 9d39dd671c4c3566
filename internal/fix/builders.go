package fix

import (
	"ember/internal/diag"
	"ember/internal/source"
)

// Option mutates a fix during construction.
type Option func(*diag.Fix)

// WithApplicability overrides the confidence level.
func WithApplicability(app diag.FixApplicability) Option {
	return func(f *diag.Fix) {
		f.Applicability = app
	}
}

// WithKind overrides the fix classification.
func WithKind(kind diag.FixKind) Option {
	return func(f *diag.Fix) {
		f.Kind = kind
	}
}

// Preferred marks the fix as the preferred suggestion.
func Preferred() Option {
	return func(f *diag.Fix) {
		f.IsPreferred = true
	}
}

// WithID sets a stable identifier for the fix.
func WithID(id string) Option {
	return func(f *diag.Fix) {
		f.ID = id
	}
}

// ToolOnly marks the fix for editor consumption only; plain-text
// formatters must not print it.
func ToolOnly() Option {
	return func(f *diag.Fix) {
		f.ToolOnly = true
	}
}

// WithThunk attaches a lazy edit builder.
func WithThunk(thunk diag.FixThunk) Option {
	return func(f *diag.Fix) {
		f.Thunk = thunk
	}
}

func applyOptions(f diag.Fix, opts []Option) diag.Fix {
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

// InsertText creates a fix inserting text at an empty span.
func InsertText(title string, at source.Span, text string, guard string, opts ...Option) diag.Fix {
	f := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixMachineApplicable,
		Edits: []diag.TextEdit{{
			Span:    at,
			NewText: text,
			OldText: guard,
		}},
	}
	return applyOptions(f, opts)
}

// DeleteSpan removes the text covered by span.
func DeleteSpan(title string, span source.Span, expect string, opts ...Option) diag.Fix {
	f := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixMachineApplicable,
		Edits: []diag.TextEdit{{
			Span:    span,
			OldText: expect,
		}},
	}
	return applyOptions(f, opts)
}

// ReplaceSpan replaces the text covered by span with newText.
func ReplaceSpan(title string, span source.Span, newText, expect string, opts ...Option) diag.Fix {
	f := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixMachineApplicable,
		Edits: []diag.TextEdit{{
			Span:    span,
			NewText: newText,
			OldText: expect,
		}},
	}
	return applyOptions(f, opts)
}

// Wrap inserts prefix at the start position and suffix at the end
// position, leaving everything between untouched. Both spans collapse
// to their insertion points.
func Wrap(title string, start, end source.Span, prefix, suffix string, opts ...Option) diag.Fix {
	f := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindRefactorRewrite,
		Applicability: diag.FixMaybeIncorrect,
		Edits: []diag.TextEdit{
			{Span: start.Before(), NewText: prefix},
			{Span: end.After(), NewText: suffix},
		},
	}
	return applyOptions(f, opts)
}
