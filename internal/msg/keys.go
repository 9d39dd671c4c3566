package msg

// Message keys for the unsafety checker. The key strings are stable:
// machine-readable output carries them verbatim.
const (
	// Top-level messages.
	RequiresUnsafe     Key = "requires_unsafe"
	UnsafeOpInUnsafeFn Key = "unsafe_op_in_unsafe_fn"
	NotInherited       Key = "not_inherited"

	// Per-violation-kind labels.
	CallToUnsafeLabel              Key = "call_to_unsafe_label"
	UseOfAsmLabel                  Key = "use_of_asm_label"
	InitializingInvalidLabel       Key = "initializing_invalid_label"
	ConstPtr2IntLabel              Key = "const_ptr2int_label"
	UseOfStaticMutLabel            Key = "use_of_static_mut_label"
	UseOfExternStaticLabel         Key = "use_of_extern_static_label"
	DerefPtrLabel                  Key = "deref_ptr_label"
	UnionAccessLabel               Key = "union_access_label"
	MutationLayoutConstrainedLabel Key = "mutation_layout_constrained_label"
	BorrowLayoutConstrainedLabel   Key = "borrow_layout_constrained_label"
	TargetFeatureCallLabel         Key = "target_feature_call_label"

	// Per-violation-kind notes and help.
	CallToUnsafeNote              Key = "call_to_unsafe_note"
	UseOfAsmNote                  Key = "use_of_asm_note"
	InitializingInvalidNote       Key = "initializing_invalid_note"
	ConstPtr2IntNote              Key = "const_ptr2int_note"
	UseOfStaticMutNote            Key = "use_of_static_mut_note"
	UseOfExternStaticNote         Key = "use_of_extern_static_note"
	DerefPtrNote                  Key = "deref_ptr_note"
	UnionAccessNote               Key = "union_access_note"
	MutationLayoutConstrainedNote Key = "mutation_layout_constrained_note"
	BorrowLayoutConstrainedNote   Key = "borrow_layout_constrained_note"
	TargetFeatureCallNote         Key = "target_feature_call_note"
	TargetFeatureCallHelp         Key = "target_feature_call_help"

	// Unsafe-block suggestion.
	UnsafeFnBodySafeNote Key = "unsafe_fn_body_safe_note"
	WrapInUnsafeBlock    Key = "wrap_in_unsafe_block"

	// Assert lints and their panic payloads.
	ArithmeticOverflow Key = "arithmetic_overflow"
	OperationWillPanic Key = "operation_will_panic"
	PanicOverflow      Key = "panic_overflow"
	PanicOverflowNeg   Key = "panic_overflow_neg"
	PanicDivideByZero  Key = "panic_divide_by_zero"
	PanicRemainderZero Key = "panic_remainder_zero"
	PanicBoundsCheck   Key = "panic_bounds_check"

	// Simple lints.
	FfiUnwindCall   Key = "ffi_unwind_call"
	FnItemRef       Key = "fn_item_ref"
	FnItemRefSugg   Key = "fn_item_ref_sugg"
	UnusedUnsafe    Key = "unused_unsafe"
	UnusedUnsafeEnc Key = "unused_unsafe_enclosing"

	// Const item mutation.
	ConstModify          Key = "const_modify"
	ConstModifyNote      Key = "const_modify_note"
	ConstMutBorrow       Key = "const_mut_borrow"
	ConstMutBorrowNote   Key = "const_mut_borrow_note"
	ConstMutBorrowNote2  Key = "const_mut_borrow_note2"
	ConstMutBorrowMethod Key = "const_mut_borrow_method"
	ConstDefinedHere     Key = "const_defined_here"

	// Unaligned packed reference (hard error E0793).
	UnalignedPackedRef     Key = "unaligned_packed_ref"
	UnalignedPackedRefNote Key = "unaligned_packed_ref_note"
	UnalignedPackedRefUB   Key = "unaligned_packed_ref_ub"
	UnalignedPackedRefHelp Key = "unaligned_packed_ref_help"

	// Must-not-suspend.
	MustNotSuspend       Key = "must_not_suspend"
	MustNotSuspendLabel  Key = "must_not_suspend_label"
	MustNotSuspendHelp   Key = "must_not_suspend_help"
	MustNotSuspendReason Key = "must_not_suspend_reason"
)
