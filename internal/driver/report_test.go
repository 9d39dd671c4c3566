package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/source"
)

func TestReportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "findings.mp")

	in := &Report{
		Files: []ReportFile{
			{Path: "lib.em", Content: []byte("fn f() { deref(p); }\n")},
		},
		Bodies: []BodyRecord{
			{
				Name:      "f",
				Signature: SpanRecord{File: 0, Start: 0, End: 7},
				BodyStart: SpanRecord{File: 0, Start: 8, End: 9},
				BodyEnd:   SpanRecord{File: 0, Start: 19, End: 20},
				Violations: []ViolationRecord{
					{Span: SpanRecord{File: 0, Start: 9, End: 17}, Kind: 6},
				},
			},
		},
	}
	if err := WriteReport(path, in); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	out, err := LoadReport(path)
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if out.Schema != reportSchemaVersion {
		t.Errorf("schema = %d", out.Schema)
	}
	if len(out.Bodies) != 1 || out.Bodies[0].Name != "f" {
		t.Fatalf("bodies = %+v", out.Bodies)
	}
	if got := out.Bodies[0].Violations[0].Span; got != in.Bodies[0].Violations[0].Span {
		t.Errorf("violation span = %+v", got)
	}
}

func TestLoadReportSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "findings.mp")

	stale := &Report{Schema: reportSchemaVersion + 1}
	data, err := msgpack.Marshal(stale)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadReport(path); !errors.Is(err, ErrReportSchema) {
		t.Fatalf("want ErrReportSchema, got %v", err)
	}
}

func TestMaterializeAndResolve(t *testing.T) {
	rep := &Report{
		Files: []ReportFile{
			{Path: "a.em", Content: []byte("aa\n")},
			{Path: "b.em", Content: []byte("bb\n")},
		},
	}
	fs := source.NewFileSet()
	ids, err := rep.Materialize(fs)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if len(ids) != 2 || fs.Len() != 2 {
		t.Fatalf("ids = %v, files = %d", ids, fs.Len())
	}

	span, err := SpanRecord{File: 1, Start: 0, End: 2}.Resolve(ids)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if fs.Get(span.File).Path != "b.em" {
		t.Errorf("span resolved to %q", fs.Get(span.File).Path)
	}

	if _, err := (SpanRecord{File: 2}).Resolve(ids); err == nil {
		t.Error("out-of-range file index accepted")
	}
}

func TestMaterializeRejectsUnnamedFile(t *testing.T) {
	rep := &Report{Files: []ReportFile{{Content: []byte("x")}}}
	if _, err := rep.Materialize(source.NewFileSet()); err == nil {
		t.Fatal("unnamed file accepted")
	}
}
