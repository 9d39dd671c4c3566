package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/source"
)

// Schema version for the findings report. Increment when the record
// format changes; readers refuse mismatched reports.
const reportSchemaVersion uint16 = 1

// ErrReportSchema is returned when a report was written with a
// different schema version.
var ErrReportSchema = errors.New("driver: findings report schema mismatch")

// Report is the serialized hand-off from the body walker: the source
// files it visited plus, per function body, every unsafety finding it
// collected. The walker runs in a separate process; this package only
// consumes its output.
type Report struct {
	Schema uint16
	Files  []ReportFile
	Bodies []BodyRecord
}

// ReportFile carries a source file by value so diagnostics can be
// rendered without re-reading the tree the walker saw.
type ReportFile struct {
	Path    string
	Content []byte
}

// SpanRecord is a span whose file is an index into Report.Files.
type SpanRecord struct {
	File  uint32
	Start uint32
	End   uint32
}

// ViolationRecord is one unsafe operation the walker found.
// Kind is the wire form of unsafety.ViolationKind.
type ViolationRecord struct {
	Span                 SpanRecord
	Kind                 uint8
	MissingFeatures      []string
	BuildEnabledFeatures []string
}

// Assert lint tags and payload shapes on the wire.
const (
	AssertTagOverflow uint8 = iota
	AssertTagUnconditionalPanic
)

const (
	PayloadOverflow uint8 = iota
	PayloadNegationOverflow
	PayloadDivisionByZero
	PayloadRemainderByZero
	PayloadBoundsCheck
)

// AssertRecord is one compile-time-provable panic site.
type AssertRecord struct {
	Span    SpanRecord
	Tag     uint8
	Payload uint8

	// Payload operands; which are set depends on Payload.
	Op    string
	Left  string
	Right string
	Len   string
	Index string
}

// Simple lint kinds on the wire.
const (
	LintTagUnusedUnsafe uint8 = iota
	LintTagConstModify
	LintTagConstMutBorrow
	LintTagUnalignedPackedRef
	LintTagFfiUnwindCall
	LintTagFnItemRef
	LintTagMustNotSuspend
)

// SimpleLintRecord is one finding outside the violation taxonomy.
// Which optional fields are set depends on Kind.
type SimpleLintRecord struct {
	Kind uint8
	Span SpanRecord

	NestedParent *SpanRecord // unused_unsafe: enclosing unsafe block
	ConstDef     *SpanRecord // const_item_mutation: the const definition
	MethodCall   *SpanRecord // const_item_mutation: mutating method call
	Source       *SpanRecord // must_not_suspend: where the value lives

	Foreign    bool   // ffi_unwind_call: callee is a foreign item
	Ident      string // fn_item_ref
	Suggestion string // fn_item_ref: replacement text
	Pre        string // must_not_suspend
	Def        string // must_not_suspend
	Post       string // must_not_suspend
	Reason     string // must_not_suspend, empty when the type gave none
}

// BodyRecord is everything the walker knows about one function body.
type BodyRecord struct {
	Name       string
	Scope      string // lint-config scope key, "" for the global scope
	Signature  SpanRecord
	BodyStart  SpanRecord
	BodyEnd    SpanRecord
	IsUnsafeFn bool
	// Enclosing is the span of a surrounding unsafe context that does
	// NOT cover this body (unsafety is not inherited across items).
	Enclosing *SpanRecord

	Violations []ViolationRecord
	Asserts    []AssertRecord
	Lints      []SimpleLintRecord
}

// WriteReport serializes the report next to the target path and renames
// it into place, so readers never see a half-written file.
func WriteReport(path string, rep *Report) error {
	rep.Schema = reportSchemaVersion
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(rep); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// LoadReport reads and validates a findings report.
func LoadReport(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var rep Report
	if err := msgpack.NewDecoder(f).Decode(&rep); err != nil {
		return nil, fmt.Errorf("%s: failed to decode findings report: %w", path, err)
	}
	if rep.Schema != reportSchemaVersion {
		return nil, fmt.Errorf("%s: version %d, want %d: %w",
			path, rep.Schema, reportSchemaVersion, ErrReportSchema)
	}
	return &rep, nil
}

// Materialize loads the report's files into the set and returns the
// index-to-FileID mapping used to resolve SpanRecords.
func (r *Report) Materialize(fs *source.FileSet) ([]source.FileID, error) {
	ids := make([]source.FileID, len(r.Files))
	for i, file := range r.Files {
		if file.Path == "" {
			return nil, fmt.Errorf("driver: report file %d has no path", i)
		}
		// added as regular files: fixes write back to these paths
		ids[i] = fs.Add(file.Path, file.Content, 0)
	}
	return ids, nil
}

// Span resolves a wire span against the materialized file IDs.
func (r SpanRecord) Resolve(ids []source.FileID) (source.Span, error) {
	if int(r.File) >= len(ids) {
		return source.Span{}, fmt.Errorf("driver: span references file %d of %d", r.File, len(ids))
	}
	return source.Span{File: ids[r.File], Start: r.Start, End: r.End}, nil
}

func resolveOptional(sp *SpanRecord, ids []source.FileID) (*source.Span, error) {
	if sp == nil {
		return nil, nil
	}
	resolved, err := sp.Resolve(ids)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}
