package diag

import (
	"ember/internal/source"
)

// Label is a secondary span annotation rendered inline with the source.
type Label struct {
	Span source.Span
	Key  string // message key the text was rendered from, for tooling
	Msg  string
}

// Note is additional context attached below the diagnostic. A zero
// span means the note is not anchored to source.
type Note struct {
	Span source.Span
	Key  string
	Msg  string
}

// Diagnostic is one fully assembled finding. It is immutable by
// convention: producers build it once and hand it to a sink.
type Diagnostic struct {
	Severity Severity
	Code     Code
	// Lint is the stable lint identifier when Code == LintCode.
	Lint string
	// Key is the message key the top-level Message was rendered from.
	Key     string
	Message string
	Primary source.Span
	// PrimaryLabel annotates the primary span; empty means no label.
	PrimaryLabel string
	Labels       []Label
	Notes        []Note
	Help         string
	Args         Args
	Fixes        []Fix
}
