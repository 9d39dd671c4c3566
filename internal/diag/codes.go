package diag

import "fmt"

// Code is a compact numeric identifier for a diagnostic class.
// The ID() string form is part of the stable, documented surface:
// external tooling matches on it, so values here must never be reused
// or renumbered.
type Code uint16

const (
	// UnknownCode covers diagnostics without an assigned class.
	UnknownCode Code = 0

	// Hard errors of the unsafety checker. The numeric value doubles
	// as the stable error number in ID().
	UnsafeRequiresUnsafe Code = 133 // E0133: operation requires unsafe
	UnalignedPackedRef   Code = 793 // E0793: reference to packed field

	// LintCode marks diagnostics produced by a lint; their stable
	// identifier is the lint ID carried on the Diagnostic, not an
	// error number.
	LintCode Code = 9000
)

var codeDescription = map[Code]string{
	UnknownCode:          "unknown diagnostic",
	UnsafeRequiresUnsafe: "unsafe operation outside unsafe context",
	UnalignedPackedRef:   "reference to field of packed type",
	LintCode:             "lint",
}

// ID returns the stable string form of the code.
func (c Code) ID() string {
	switch {
	case c == LintCode:
		return "LINT"
	case c == UnknownCode:
		return "E0000"
	default:
		return fmt.Sprintf("E%04d", uint16(c))
	}
}

// Title returns a short human description of the code class.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
