package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ember/internal/diag"
	"ember/internal/source"
)

// Pretty renders diagnostics in a human-readable form. The bag is
// expected to be sorted already. For each diagnostic it prints:
//
//	<path>:<line>:<col>: <SEVERITY> [<code>] <message>
//
// followed by the source line with a caret underline and the primary
// label, then secondary labels, notes and help. Tool-only fixes are
// never printed here; they exist for editor integration only.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityPainter(d.Severity, opts.Color)
	code := d.Code.ID()
	if d.Code == diag.LintCode && d.Lint != "" {
		code = d.Lint
	}

	fmt.Fprintf(w, "%s: %s [%s] %s\n",
		location(fs, d.Primary, opts.PathMode),
		sev.Sprint(d.Severity.String()),
		code,
		d.Message,
	)
	printSnippet(w, fs, d.Primary, d.PrimaryLabel, sev)

	for _, label := range d.Labels {
		fmt.Fprintf(w, "  %s: %s\n", location(fs, label.Span, opts.PathMode), label.Msg)
		printSnippet(w, fs, label.Span, "", sev)
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			if note.Span == (source.Span{}) {
				fmt.Fprintf(w, "  note: %s\n", note.Msg)
				continue
			}
			fmt.Fprintf(w, "  note[%s]: %s\n", location(fs, note.Span, opts.PathMode), note.Msg)
		}
		if d.Help != "" {
			fmt.Fprintf(w, "  help: %s\n", d.Help)
		}
	}

	if opts.ShowFixes {
		for _, f := range d.Fixes {
			if f.ToolOnly {
				continue
			}
			fmt.Fprintf(w, "  fix (%s): %s\n", f.Applicability, f.Title)
		}
	}
}

// printSnippet prints the source line under the span with a caret
// underline sized by display width, not byte count.
func printSnippet(w io.Writer, fs *source.FileSet, span source.Span, label string, sev *color.Color) {
	if span == (source.Span{}) {
		return
	}
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line := file.Line(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	prefix := line[:min(int(start.Col)-1, len(line))]
	underlined := int(span.Len())
	if end.Line != start.Line {
		underlined = len(line) - len(prefix)
	}
	if underlined < 1 {
		underlined = 1
	}
	stop := min(len(prefix)+underlined, len(line))
	carets := strings.Repeat("^", max(runewidth.StringWidth(line[len(prefix):stop]), 1))
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))

	if label != "" {
		fmt.Fprintf(w, "    %s%s %s\n", pad, sev.Sprint(carets), label)
		return
	}
	fmt.Fprintf(w, "    %s%s\n", pad, sev.Sprint(carets))
}

func location(fs *source.FileSet, span source.Span, mode PathMode) string {
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", file.FormatPath(mode.mode(), fs.BaseDir()), start.Line, start.Col)
}

func severityPainter(sev diag.Severity, enabled bool) *color.Color {
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	if !enabled {
		c.DisableColor()
	}
	return c
}
