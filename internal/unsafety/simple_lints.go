package unsafety

import (
	"ember/internal/diag"
	"ember/internal/fix"
	"ember/internal/lints"
	"ember/internal/msg"
	"ember/internal/source"
)

// Single-purpose lints with no classification step: each maps straight
// to one message key and carries its arguments as supplied.

// FfiUnwindCall reports a call that may unwind across the FFI
// boundary. foreign distinguishes direct foreign calls from calls
// through a function pointer.
func (a Assembler) FfiUnwindCall(span source.Span, foreign bool, sev diag.Severity) (diag.Diagnostic, error) {
	var args diag.Args
	args.Set("foreign", diag.Bool(foreign))
	message, err := a.Store.Render(msg.FfiUnwindCall, &args)
	if err != nil {
		return diag.Diagnostic{}, err
	}
	out := diag.NewLint(sev, string(lints.FfiUnwindCall), span, message).
		WithKey(string(msg.FfiUnwindCall)).
		WithPrimaryLabel(message).
		WithArg("foreign", diag.Bool(foreign))
	return out, nil
}

// FnItemRef reports a reference taken to a function item. sugg is the
// replacement text the walker computed for the cast; it becomes a
// direct text-replacement fix at the primary span, applicability
// Unspecified unless a caller overrides it on the returned record.
func (a Assembler) FnItemRef(span source.Span, ident, sugg string, sev diag.Severity) (diag.Diagnostic, error) {
	message, err := a.Store.Render(msg.FnItemRef, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	var args diag.Args
	args.Set("ident", diag.Str(ident))
	title, err := a.Store.Render(msg.FnItemRefSugg, &args)
	if err != nil {
		return diag.Diagnostic{}, err
	}
	out := diag.NewLint(sev, string(lints.FnItemRef), span, message).
		WithKey(string(msg.FnItemRef)).
		WithArg("ident", diag.Str(ident)).
		WithArg("sugg", diag.Str(sugg)).
		WithFix(fix.ReplaceSpan(title, span, sugg, "",
			fix.WithApplicability(diag.FixUnspecified)))
	return out, nil
}

// UnusedUnsafe reports an unsafe block containing no unsafe
// operations. nestedParent, when present, points at the enclosing
// unsafe block that already grants permission.
func (a Assembler) UnusedUnsafe(span source.Span, nestedParent *source.Span, sev diag.Severity) (diag.Diagnostic, error) {
	message, err := a.Store.Render(msg.UnusedUnsafe, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	out := diag.NewLint(sev, string(lints.UnusedUnsafe), span, message).
		WithKey(string(msg.UnusedUnsafe)).
		WithPrimaryLabel(message)
	if nestedParent != nil {
		text, err := a.Store.Render(msg.UnusedUnsafeEnc, &diag.Args{})
		if err != nil {
			return diag.Diagnostic{}, err
		}
		out = out.WithLabel(*nestedParent, string(msg.UnusedUnsafeEnc), text)
	}
	return out, nil
}

// ConstModify reports an attempt to modify a const item through the
// temporary its use creates.
func (a Assembler) ConstModify(span, constDef source.Span, sev diag.Severity) (diag.Diagnostic, error) {
	message, err := a.Store.Render(msg.ConstModify, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	note, err := a.Store.Render(msg.ConstModifyNote, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	defined, err := a.Store.Render(msg.ConstDefinedHere, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	out := diag.NewLint(sev, string(lints.ConstItemMutation), span, message).
		WithKey(string(msg.ConstModify)).
		WithNote(source.Span{}, string(msg.ConstModifyNote), note).
		WithNote(constDef, string(msg.ConstDefinedHere), defined)
	return out, nil
}

// ConstMutBorrow reports a mutable borrow of a const item. methodCall,
// when present, points at the method call that created the reference.
func (a Assembler) ConstMutBorrow(span source.Span, methodCall *source.Span, constDef source.Span, sev diag.Severity) (diag.Diagnostic, error) {
	message, err := a.Store.Render(msg.ConstMutBorrow, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	out := diag.NewLint(sev, string(lints.ConstItemMutation), span, message).
		WithKey(string(msg.ConstMutBorrow))

	for _, part := range []struct {
		key  msg.Key
		span source.Span
		skip bool
	}{
		{msg.ConstMutBorrowNote, source.Span{}, false},
		{msg.ConstMutBorrowNote2, source.Span{}, false},
		{msg.ConstMutBorrowMethod, spanOrZero(methodCall), methodCall == nil},
		{msg.ConstDefinedHere, constDef, false},
	} {
		if part.skip {
			continue
		}
		text, err := a.Store.Render(part.key, &diag.Args{})
		if err != nil {
			return diag.Diagnostic{}, err
		}
		out = out.WithNote(part.span, string(part.key), text)
	}
	return out, nil
}

func spanOrZero(sp *source.Span) source.Span {
	if sp == nil {
		return source.Span{}
	}
	return *sp
}

// UnalignedPackedRef reports a reference to a field of a packed type.
// Unlike the lints above this is always a hard error and carries the
// stable E0793 code.
func (a Assembler) UnalignedPackedRef(span source.Span) (diag.Diagnostic, error) {
	message, err := a.Store.Render(msg.UnalignedPackedRef, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	note, err := a.Store.Render(msg.UnalignedPackedRefNote, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	ub, err := a.Store.Render(msg.UnalignedPackedRefUB, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	help, err := a.Store.Render(msg.UnalignedPackedRefHelp, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	out := diag.NewError(diag.UnalignedPackedRef, span, message).
		WithKey(string(msg.UnalignedPackedRef)).
		WithNote(source.Span{}, string(msg.UnalignedPackedRefNote), note).
		WithNote(source.Span{}, string(msg.UnalignedPackedRefUB), ub).
		WithHelp(help)
	return out, nil
}

// MustNotSuspend reports a value held across a suspend point. pre and
// post wrap the displayed path, reason is an optional attribute-
// provided explanation.
func (a Assembler) MustNotSuspend(yieldSpan, srcSpan source.Span, pre, defPath, post, reason string, sev diag.Severity) (diag.Diagnostic, error) {
	var args diag.Args
	args.Set("pre", diag.Str(pre))
	args.Set("def_path", diag.Str(defPath))
	args.Set("post", diag.Str(post))
	message, err := a.Store.Render(msg.MustNotSuspend, &args)
	if err != nil {
		return diag.Diagnostic{}, err
	}
	label, err := a.Store.Render(msg.MustNotSuspendLabel, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	help, err := a.Store.Render(msg.MustNotSuspendHelp, &diag.Args{})
	if err != nil {
		return diag.Diagnostic{}, err
	}
	out := diag.NewLint(sev, string(lints.MustNotSuspend), yieldSpan, message).
		WithKey(string(msg.MustNotSuspend)).
		WithPrimaryLabel(label).
		WithArg("pre", diag.Str(pre)).
		WithArg("def_path", diag.Str(defPath)).
		WithArg("post", diag.Str(post)).
		WithNote(srcSpan, string(msg.MustNotSuspendHelp), help)
	if reason != "" {
		out = out.WithNote(source.Span{}, string(msg.MustNotSuspendReason), reason)
	}
	return out, nil
}
