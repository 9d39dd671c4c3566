package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"ember/internal/diag"
	"ember/internal/source"
)

// PositionJSON is a 1-based line/column pair.
type PositionJSON struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// SpanJSON carries byte offsets and, optionally, resolved positions.
type SpanJSON struct {
	File  string        `json:"file"`
	Start uint32        `json:"start"`
	End   uint32        `json:"end"`
	From  *PositionJSON `json:"from,omitempty"`
	To    *PositionJSON `json:"to,omitempty"`
}

type LabelJSON struct {
	Span SpanJSON `json:"span"`
	Key  string   `json:"key,omitempty"`
	Msg  string   `json:"msg"`
}

type NoteJSON struct {
	Span *SpanJSON `json:"span,omitempty"`
	Key  string    `json:"key,omitempty"`
	Msg  string    `json:"msg"`
}

type EditJSON struct {
	Span    SpanJSON `json:"span"`
	NewText string   `json:"new_text"`
	OldText string   `json:"old_text,omitempty"`
}

type FixJSON struct {
	ID            string     `json:"id,omitempty"`
	Title         string     `json:"title"`
	Kind          string     `json:"kind"`
	Applicability string     `json:"applicability"`
	IsPreferred   bool       `json:"is_preferred,omitempty"`
	ToolOnly      bool       `json:"tool_only,omitempty"`
	Edits         []EditJSON `json:"edits,omitempty"`
}

// DiagnosticJSON is the machine-readable projection of a diagnostic.
// The schema is append-only: fields may be added but never renamed.
type DiagnosticJSON struct {
	Severity     string            `json:"severity"`
	Code         string            `json:"code"`
	Lint         string            `json:"lint,omitempty"`
	Key          string            `json:"key,omitempty"`
	Message      string            `json:"message"`
	Primary      SpanJSON          `json:"primary"`
	PrimaryLabel string            `json:"primary_label,omitempty"`
	Labels       []LabelJSON       `json:"labels,omitempty"`
	Notes        []NoteJSON        `json:"notes,omitempty"`
	Help         string            `json:"help,omitempty"`
	Args         map[string]string `json:"args,omitempty"`
	Fixes        []FixJSON         `json:"fixes,omitempty"`
}

// JSON writes the bag as a JSON array, one element per diagnostic.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]DiagnosticJSON, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, ToJSON(d, fs, opts))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ToJSON converts a single diagnostic.
func ToJSON(d diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticJSON {
	j := DiagnosticJSON{
		Severity:     strings.ToLower(d.Severity.String()),
		Code:         d.Code.ID(),
		Lint:         d.Lint,
		Key:          string(d.Key),
		Message:      d.Message,
		Primary:      spanJSON(d.Primary, fs, opts),
		PrimaryLabel: d.PrimaryLabel,
		Help:         d.Help,
	}
	for _, l := range d.Labels {
		j.Labels = append(j.Labels, LabelJSON{
			Span: spanJSON(l.Span, fs, opts),
			Key:  string(l.Key),
			Msg:  l.Msg,
		})
	}
	if opts.IncludeNotes {
		for _, n := range d.Notes {
			nj := NoteJSON{Key: string(n.Key), Msg: n.Msg}
			if n.Span != (source.Span{}) {
				sp := spanJSON(n.Span, fs, opts)
				nj.Span = &sp
			}
			j.Notes = append(j.Notes, nj)
		}
	}
	if opts.IncludeArgs {
		j.Args = make(map[string]string, d.Args.Len())
		for _, name := range d.Args.Names() {
			v, _ := d.Args.Get(name)
			j.Args[name] = v.Render()
		}
	}
	if opts.IncludeFixes {
		for _, f := range d.Fixes {
			fj := FixJSON{
				ID:            f.ID,
				Title:         f.Title,
				Kind:          f.Kind.String(),
				Applicability: f.Applicability.String(),
				IsPreferred:   f.IsPreferred,
				ToolOnly:      f.ToolOnly,
			}
			for _, e := range f.Edits {
				fj.Edits = append(fj.Edits, EditJSON{
					Span:    spanJSON(e.Span, fs, opts),
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			j.Fixes = append(j.Fixes, fj)
		}
	}
	return j
}

func spanJSON(span source.Span, fs *source.FileSet, opts JSONOpts) SpanJSON {
	file := fs.Get(span.File)
	j := SpanJSON{
		File:  file.FormatPath(opts.PathMode.mode(), fs.BaseDir()),
		Start: span.Start,
		End:   span.End,
	}
	if opts.IncludePositions {
		start, end := fs.Resolve(span)
		j.From = &PositionJSON{Line: start.Line, Col: start.Col}
		j.To = &PositionJSON{Line: end.Line, Col: end.Col}
	}
	return j
}
