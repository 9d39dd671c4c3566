package diag

import (
	"fmt"

	"ember/internal/source"
)

// TextEdit replaces the bytes covered by Span with NewText. OldText,
// when set, is a guard: the fix engine refuses the edit if the current
// content differs.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixKind coarsely classifies a fix for UI grouping.
type FixKind uint8

const (
	FixKindQuickFix FixKind = iota
	FixKindRefactorRewrite
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quickfix"
	case FixKindRefactorRewrite:
		return "refactor.rewrite"
	}
	return "unknown"
}

// FixApplicability is the machine-confidence level of a suggestion.
// The values mirror the levels external tooling already understands
// and are part of the stable surface.
type FixApplicability uint8

const (
	// FixMachineApplicable fixes can be applied without review.
	FixMachineApplicable FixApplicability = iota
	// FixMaybeIncorrect fixes are plausible but may not be the ideal
	// change; they need human review.
	FixMaybeIncorrect
	// FixHasPlaceholders fixes contain placeholder text the user must
	// fill in.
	FixHasPlaceholders
	// FixUnspecified is for fixes whose confidence was never assessed.
	FixUnspecified
)

func (a FixApplicability) String() string {
	switch a {
	case FixMachineApplicable:
		return "machine-applicable"
	case FixMaybeIncorrect:
		return "maybe-incorrect"
	case FixHasPlaceholders:
		return "has-placeholders"
	case FixUnspecified:
		return "unspecified"
	}
	return "unknown"
}

// FixBuildContext carries what a lazy fix needs to materialise edits.
type FixBuildContext struct {
	FileSet *source.FileSet
}

// FixThunk lazily builds edits when constructing them eagerly would be
// wasteful.
type FixThunk func(FixBuildContext) ([]TextEdit, error)

// Fix is one proposed correction attached to a diagnostic.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	// ToolOnly fixes target editor integration and must never be
	// rendered as a plain-text suggestion.
	ToolOnly bool
	Edits    []TextEdit
	Thunk    FixThunk
}

// Resolve returns the fix with edits materialised. Fixes without a
// thunk resolve to themselves.
func (f Fix) Resolve(ctx FixBuildContext) (Fix, error) {
	if f.Thunk == nil {
		return f, nil
	}
	edits, err := f.Thunk(ctx)
	if err != nil {
		return f, fmt.Errorf("build fix %q: %w", f.Title, err)
	}
	resolved := f
	resolved.Edits = edits
	resolved.Thunk = nil
	return resolved, nil
}

// MaterializeFixes resolves every fix in order, failing on the first
// thunk error.
func MaterializeFixes(ctx FixBuildContext, fixes []Fix) ([]Fix, error) {
	out := make([]Fix, 0, len(fixes))
	for _, f := range fixes {
		resolved, err := f.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}
