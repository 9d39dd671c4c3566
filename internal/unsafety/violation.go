package unsafety

import (
	"fmt"

	"ember/internal/diag"
	"ember/internal/msg"
	"ember/internal/source"
)

// ViolationKind is the closed taxonomy of unsafe operations. The
// switches over it are exhaustive on purpose: adding a kind must break
// every dispatch site until it is handled.
type ViolationKind uint8

const (
	CallToUnsafeFunction ViolationKind = iota
	UseOfInlineAssembly
	InitializingTypeWith
	CastOfPointerToInt
	UseOfMutableStatic
	UseOfExternStatic
	DerefOfRawPointer
	AccessToUnionField
	MutationOfLayoutConstrainedField
	BorrowOfLayoutConstrainedField
	// CallToFunctionWith is the only kind carrying structured data:
	// the target features the call requires but the context lacks.
	CallToFunctionWith
)

func (k ViolationKind) String() string {
	switch k {
	case CallToUnsafeFunction:
		return "call_to_unsafe_function"
	case UseOfInlineAssembly:
		return "use_of_inline_assembly"
	case InitializingTypeWith:
		return "initializing_type_with"
	case CastOfPointerToInt:
		return "cast_of_pointer_to_int"
	case UseOfMutableStatic:
		return "use_of_mutable_static"
	case UseOfExternStatic:
		return "use_of_extern_static"
	case DerefOfRawPointer:
		return "deref_of_raw_pointer"
	case AccessToUnionField:
		return "access_to_union_field"
	case MutationOfLayoutConstrainedField:
		return "mutation_of_layout_constrained_field"
	case BorrowOfLayoutConstrainedField:
		return "borrow_of_layout_constrained_field"
	case CallToFunctionWith:
		return "call_to_function_with"
	}
	return "unknown"
}

// ViolationDetail describes one detected unsafe operation. It is
// immutable once constructed; the classifier and assembler only read
// it.
type ViolationDetail struct {
	Span source.Span
	Kind ViolationKind

	// Set only for CallToFunctionWith.
	MissingFeatures      []string
	BuildEnabledFeatures []string
}

// NewViolation constructs a detail for any unit kind. Passing
// CallToFunctionWith is a caller bug: that kind needs its feature
// lists and goes through NewTargetFeatureViolation.
func NewViolation(span source.Span, kind ViolationKind) ViolationDetail {
	if kind == CallToFunctionWith {
		panic("unsafety: CallToFunctionWith requires NewTargetFeatureViolation")
	}
	return ViolationDetail{Span: span, Kind: kind}
}

// NewTargetFeatureViolation constructs a CallToFunctionWith detail.
// An empty missing list would mean no violation was detected at all,
// so it is rejected at construction.
func NewTargetFeatureViolation(span source.Span, missing, buildEnabled []string) ViolationDetail {
	if len(missing) == 0 {
		panic("unsafety: CallToFunctionWith with no missing features")
	}
	return ViolationDetail{
		Span:                 span,
		Kind:                 CallToFunctionWith,
		MissingFeatures:      append([]string(nil), missing...),
		BuildEnabledFeatures: append([]string(nil), buildEnabled...),
	}
}

// Label returns the message key for the kind's span label.
func (d ViolationDetail) Label() msg.Key {
	switch d.Kind {
	case CallToUnsafeFunction:
		return msg.CallToUnsafeLabel
	case UseOfInlineAssembly:
		return msg.UseOfAsmLabel
	case InitializingTypeWith:
		return msg.InitializingInvalidLabel
	case CastOfPointerToInt:
		return msg.ConstPtr2IntLabel
	case UseOfMutableStatic:
		return msg.UseOfStaticMutLabel
	case UseOfExternStatic:
		return msg.UseOfExternStaticLabel
	case DerefOfRawPointer:
		return msg.DerefPtrLabel
	case AccessToUnionField:
		return msg.UnionAccessLabel
	case MutationOfLayoutConstrainedField:
		return msg.MutationLayoutConstrainedLabel
	case BorrowOfLayoutConstrainedField:
		return msg.BorrowLayoutConstrainedLabel
	case CallToFunctionWith:
		return msg.TargetFeatureCallLabel
	}
	panic(fmt.Sprintf("unsafety: unhandled violation kind %d", d.Kind))
}

// Decorate attaches the kind's notes, help and structured arguments to
// a diagnostic under assembly.
//
// CallToFunctionWith is deliberately asymmetric: help is always
// attached, while the note (and the build_target_features arguments)
// appear only when the build configuration enables some of the
// features. A build with none of them enabled has no remedy to point
// at.
func (d ViolationDetail) Decorate(out diag.Diagnostic, store msg.Store) (diag.Diagnostic, error) {
	var noteKey msg.Key
	switch d.Kind {
	case CallToUnsafeFunction:
		noteKey = msg.CallToUnsafeNote
	case UseOfInlineAssembly:
		noteKey = msg.UseOfAsmNote
	case InitializingTypeWith:
		noteKey = msg.InitializingInvalidNote
	case CastOfPointerToInt:
		noteKey = msg.ConstPtr2IntNote
	case UseOfMutableStatic:
		noteKey = msg.UseOfStaticMutNote
	case UseOfExternStatic:
		noteKey = msg.UseOfExternStaticNote
	case DerefOfRawPointer:
		noteKey = msg.DerefPtrNote
	case AccessToUnionField:
		noteKey = msg.UnionAccessNote
	case MutationOfLayoutConstrainedField:
		noteKey = msg.MutationLayoutConstrainedNote
	case BorrowOfLayoutConstrainedField:
		noteKey = msg.BorrowLayoutConstrainedNote
	case CallToFunctionWith:
		return d.decorateTargetFeatures(out, store)
	default:
		panic(fmt.Sprintf("unsafety: unhandled violation kind %d", d.Kind))
	}

	text, err := store.Render(noteKey, &diag.Args{})
	if err != nil {
		return out, err
	}
	return out.WithNote(source.Span{}, string(noteKey), text), nil
}

func (d ViolationDetail) decorateTargetFeatures(out diag.Diagnostic, store msg.Store) (diag.Diagnostic, error) {
	out = out.
		WithArg("missing_target_features", diag.StrList(d.MissingFeatures)).
		WithArg("missing_target_features_count", diag.Count(len(d.MissingFeatures)))

	if len(d.BuildEnabledFeatures) > 0 {
		out = out.
			WithArg("build_target_features", diag.StrList(d.BuildEnabledFeatures)).
			WithArg("build_target_features_count", diag.Count(len(d.BuildEnabledFeatures)))
		note, err := store.Render(msg.TargetFeatureCallNote, &out.Args)
		if err != nil {
			return out, err
		}
		out = out.WithNote(source.Span{}, string(msg.TargetFeatureCallNote), note)
	}

	help, err := store.Render(msg.TargetFeatureCallHelp, &out.Args)
	if err != nil {
		return out, err
	}
	return out.WithHelp(help), nil
}
