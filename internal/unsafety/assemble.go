package unsafety

import (
	"ember/internal/diag"
	"ember/internal/lints"
	"ember/internal/msg"
	"ember/internal/source"
)

// Assembler composes classified findings into diagnostics. It holds no
// state beyond the template store and is safe for concurrent use.
type Assembler struct {
	Store msg.Store
}

// RequiresUnsafe builds the hard error for a violation in a safe
// context. enclosing, when present, is the span of the nearest
// non-unsafe enclosing function; it gets the "not inherited" label to
// counter the belief that an outer unsafe context reaches through an
// intervening safe function.
//
// The top-level message interpolates the kind's label, so the label is
// rendered eagerly and passed both as the primary label and as the
// `details` argument. A render failure means a missing template, which
// is a packaging defect; the error propagates as session-fatal.
func (a Assembler) RequiresUnsafe(detail ViolationDetail, enclosing *source.Span, opInUnsafeFnAllowed bool) (diag.Diagnostic, error) {
	labelKey := detail.Label()
	label, err := a.Store.Render(labelKey, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}

	var args diag.Args
	args.Set("details", diag.Str(label))
	args.Set("op_in_unsafe_fn_allowed", diag.Bool(opInUnsafeFnAllowed))
	message, err := a.Store.Render(msg.RequiresUnsafe, &args)
	if err != nil {
		return diag.Diagnostic{}, err
	}

	out := diag.NewError(diag.UnsafeRequiresUnsafe, detail.Span, message).
		WithKey(string(msg.RequiresUnsafe)).
		WithPrimaryLabel(label).
		WithArg("details", diag.Str(label)).
		WithArg("op_in_unsafe_fn_allowed", diag.Bool(opInUnsafeFnAllowed))

	out, err = detail.Decorate(out, a.Store)
	if err != nil {
		return diag.Diagnostic{}, err
	}

	if enclosing != nil {
		text, err := a.Store.Render(msg.NotInherited, &diag.Args{})
		if err != nil {
			return diag.Diagnostic{}, err
		}
		out = out.WithLabel(*enclosing, string(msg.NotInherited), text)
	}
	return out, nil
}

// UnsafeOpInUnsafeFn builds the lint diagnostic for a violation inside
// an unsafe fn without an explicit block. The severity comes from the
// effective lint level; suggestion may be nil when the walker could
// not determine the body spans.
func (a Assembler) UnsafeOpInUnsafeFn(detail ViolationDetail, suggestion *BlockSuggestion, sev diag.Severity) (diag.Diagnostic, error) {
	labelKey := detail.Label()
	label, err := a.Store.Render(labelKey, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}

	var args diag.Args
	args.Set("details", diag.Str(label))
	message, err := a.Store.Render(msg.UnsafeOpInUnsafeFn, &args)
	if err != nil {
		return diag.Diagnostic{}, err
	}

	out := diag.NewLint(sev, string(lints.UnsafeOpInUnsafeFn), detail.Span, message).
		WithKey(string(msg.UnsafeOpInUnsafeFn)).
		WithPrimaryLabel(label).
		WithArg("details", diag.Str(label))

	out, err = detail.Decorate(out, a.Store)
	if err != nil {
		return diag.Diagnostic{}, err
	}

	if suggestion != nil {
		out = suggestion.Attach(out, a.Store)
	}
	return out, nil
}

// AssertLint builds the diagnostic for an overflow or panic finding.
// The hard-error-vs-lint decision was already made by the caller and
// arrives as the severity; the payload's message becomes the primary
// label and its arguments pass through unreinterpreted.
func (a Assembler) AssertLint(finding AssertFinding, sev diag.Severity) (diag.Diagnostic, error) {
	var payloadArgs diag.Args
	finding.Payload().AddArgs(func(name string, v diag.ArgValue) {
		payloadArgs.Set(name, v)
	})
	label, err := a.Store.Render(finding.Payload().MessageKey(), &payloadArgs)
	if err != nil {
		return diag.Diagnostic{}, err
	}

	message, err := a.Store.Render(finding.MessageKey(), &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}

	out := diag.NewLint(sev, string(finding.LintID()), finding.Span(), message).
		WithKey(string(finding.MessageKey())).
		WithPrimaryLabel(label)
	for _, name := range payloadArgs.Names() {
		v, _ := payloadArgs.Get(name)
		out = out.WithArg(name, v)
	}
	return out, nil
}
