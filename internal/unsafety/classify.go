package unsafety

// Outcome is the report decision for one violation.
type Outcome uint8

const (
	// OutcomeHardError rejects the compilation: the operation sits in
	// a safe context.
	OutcomeHardError Outcome = iota
	// OutcomeLint reports the unsafe_op_in_unsafe_fn lint: the
	// operation relies on the enclosing unsafe fn's implicit
	// permission instead of an explicit block.
	OutcomeLint
	// OutcomePermitted produces no diagnostic.
	OutcomePermitted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHardError:
		return "hard-error"
	case OutcomeLint:
		return "lint"
	case OutcomePermitted:
		return "permitted"
	}
	return "unknown"
}

// Classify decides how a violation is reported. The decision is
// context-driven, never kind-driven: enclosingIsUnsafeFn says whether
// the innermost function containing the operation is itself declared
// unsafe, and unsafeOpInUnsafeFnAllowed is the active lint policy for
// the scope. Operations already inside an explicit unsafe block are
// filtered out by the walker and never reach this function.
func Classify(enclosingIsUnsafeFn, unsafeOpInUnsafeFnAllowed bool) Outcome {
	switch {
	case !enclosingIsUnsafeFn:
		return OutcomeHardError
	case !unsafeOpInUnsafeFnAllowed:
		return OutcomeLint
	default:
		return OutcomePermitted
	}
}
