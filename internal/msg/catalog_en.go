package msg

var templatesEN = map[Key]string{
	RequiresUnsafe:     "{$details} is unsafe and requires unsafe {$op_in_unsafe_fn_allowed ? function or block | block}",
	UnsafeOpInUnsafeFn: "{$details} is unsafe and requires unsafe block",
	NotInherited:       "items do not inherit unsafety from separate enclosing items",

	CallToUnsafeLabel:              "call to unsafe function",
	UseOfAsmLabel:                  "use of inline assembly",
	InitializingInvalidLabel:       "initializing type with an invalid value",
	ConstPtr2IntLabel:              "cast of pointer to int in constant context",
	UseOfStaticMutLabel:            "use of mutable static",
	UseOfExternStaticLabel:         "use of extern static",
	DerefPtrLabel:                  "dereference of raw pointer",
	UnionAccessLabel:               "access to union field",
	MutationLayoutConstrainedLabel: "mutation of layout constrained field",
	BorrowLayoutConstrainedLabel:   "borrow of layout constrained field with interior mutability",
	TargetFeatureCallLabel:         "call to function requiring target features",

	CallToUnsafeNote:              "consult the function's documentation for information on how to avoid undefined behaviour",
	UseOfAsmNote:                  "inline assembly is entirely unchecked and can cause undefined behaviour",
	InitializingInvalidNote:       "initializing a layout constrained type with a value outside the valid range is undefined behaviour",
	ConstPtr2IntNote:              "casting pointers to integers in constants is not deterministic and cannot be verified",
	UseOfStaticMutNote:            "mutable statics can be mutated by multiple threads: aliasing violations or data races will cause undefined behaviour",
	UseOfExternStaticNote:         "extern statics are not controlled by the ember type system: invalid data, aliasing violations or data races will cause undefined behaviour",
	DerefPtrNote:                  "raw pointers may be null, dangling or unaligned; they can violate aliasing rules and cause data races: all of these are undefined behaviour",
	UnionAccessNote:               "the field may not be properly initialized: using uninitialized data will cause undefined behaviour",
	MutationLayoutConstrainedNote: "mutating layout constrained fields cannot statically be checked for valid values",
	BorrowLayoutConstrainedNote:   "references to fields of layout constrained types lose the constraints; coupled with interior mutability, the field can be changed to invalid values",
	TargetFeatureCallNote:         "the {$build_target_features} target {$build_target_features_count # feature is | features are} enabled in the build configuration, which does not make the call safe",
	TargetFeatureCallHelp:         "in order for the call to be safe, the context requires the following additional target {$missing_target_features_count # feature | features}: {$missing_target_features}",

	UnsafeFnBodySafeNote: "an unsafe function restricts its caller, but its body is safe by default",
	WrapInUnsafeBlock:    "consider wrapping the operation in an unsafe block",

	ArithmeticOverflow: "this arithmetic operation will overflow",
	OperationWillPanic: "this operation will panic at runtime",
	PanicOverflow:      "attempt to compute `{$left} {$op} {$right}`, which would overflow",
	PanicOverflowNeg:   "attempt to negate `{$operand}`, which would overflow",
	PanicDivideByZero:  "attempt to divide `{$operand}` by zero",
	PanicRemainderZero: "attempt to calculate the remainder of `{$operand}` with a divisor of zero",
	PanicBoundsCheck:   "index out of bounds: the length is {$len} but the index is {$index}",

	FfiUnwindCall:   "call to {$foreign ? foreign function | function pointer} with FFI-unwind ABI may unwind across the FFI boundary",
	FnItemRef:       "taking a reference to a function item does not give a function pointer",
	FnItemRefSugg:   "cast `{$ident}` to obtain a function pointer",
	UnusedUnsafe:    "unnecessary `unsafe` block",
	UnusedUnsafeEnc: "because it's nested under this `unsafe` block",

	ConstModify:          "attempting to modify a `const` item",
	ConstModifyNote:      "each usage of a `const` item creates a new temporary; the original `const` item will not be modified",
	ConstMutBorrow:       "taking a mutable reference to a `const` item",
	ConstMutBorrowNote:   "each usage of a `const` item creates a new temporary",
	ConstMutBorrowNote2:  "the mutable reference will refer to this temporary, not the original `const` item",
	ConstMutBorrowMethod: "mutable reference created due to call to this method",
	ConstDefinedHere:     "`const` item defined here",

	UnalignedPackedRef:     "reference to packed field is unaligned",
	UnalignedPackedRefNote: "packed structs are only aligned by one byte, and many modern architectures penalize unaligned field accesses",
	UnalignedPackedRefUB:   "creating a misaligned reference is undefined behaviour, even if the reference is never dereferenced",
	UnalignedPackedRefHelp: "copy the field contents to a local variable, or replace the reference with a raw pointer and use unaligned reads and writes",

	MustNotSuspend:       "{$pre}`{$def_path}`{$post} held across a suspend point, but should not be",
	MustNotSuspendLabel:  "the value is held across this suspend point",
	MustNotSuspendHelp:   "consider using a block to shrink the value's scope, ending before the suspend point",
	MustNotSuspendReason: "{$reason}",
}
