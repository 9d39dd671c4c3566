package diag

import "ember/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewLint builds a lint-backed diagnostic carrying its stable lint ID.
func NewLint(sev Severity, lintID string, primary source.Span, msg string) Diagnostic {
	d := New(sev, LintCode, primary, msg)
	d.Lint = lintID
	return d
}

// WithKey records the message key the top-level message was rendered from.
func (d Diagnostic) WithKey(key string) Diagnostic {
	d.Key = key
	return d
}

// WithPrimaryLabel annotates the primary span.
func (d Diagnostic) WithPrimaryLabel(msg string) Diagnostic {
	d.PrimaryLabel = msg
	return d
}

// WithLabel attaches a secondary span label.
func (d Diagnostic) WithLabel(sp source.Span, key, msg string) Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Key: key, Msg: msg})
	return d
}

// WithNote attaches a note; pass a zero span for an unanchored note.
func (d Diagnostic) WithNote(sp source.Span, key, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Key: key, Msg: msg})
	return d
}

// WithHelp sets the help text.
func (d Diagnostic) WithHelp(msg string) Diagnostic {
	d.Help = msg
	return d
}

// WithArg adds one structured argument; duplicate names panic.
// The receiver's arguments are left untouched, so several chains may
// branch off one base diagnostic.
func (d Diagnostic) WithArg(name string, v ArgValue) Diagnostic {
	d.Args = d.Args.clone()
	d.Args.Set(name, v)
	return d
}

// WithFix attaches a fix suggestion.
func (d Diagnostic) WithFix(f Fix) Diagnostic {
	d.Fixes = append(d.Fixes, f)
	return d
}
