package unsafety

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/msg"
	"ember/internal/source"
)

var unitKinds = []ViolationKind{
	CallToUnsafeFunction,
	UseOfInlineAssembly,
	InitializingTypeWith,
	CastOfPointerToInt,
	UseOfMutableStatic,
	UseOfExternStatic,
	DerefOfRawPointer,
	AccessToUnionField,
	MutationOfLayoutConstrainedField,
	BorrowOfLayoutConstrainedField,
}

func testSpan() source.Span {
	return source.Span{File: 0, Start: 10, End: 20}
}

func TestLabelTotalOverAllKinds(t *testing.T) {
	store := msg.NewCatalog()
	details := make([]ViolationDetail, 0, 11)
	for _, kind := range unitKinds {
		details = append(details, NewViolation(testSpan(), kind))
	}
	details = append(details, NewTargetFeatureViolation(testSpan(), []string{"avx2"}, nil))

	for _, d := range details {
		key := d.Label()
		text, err := store.Render(key, &diag.Args{})
		if err != nil {
			t.Errorf("kind %s: label render failed: %v", d.Kind, err)
		}
		if text == "" {
			t.Errorf("kind %s: empty label", d.Kind)
		}
	}
}

func TestDecorateAttachesOneNotePerUnitKind(t *testing.T) {
	store := msg.NewCatalog()
	for _, kind := range unitKinds {
		d := NewViolation(testSpan(), kind)
		out, err := d.Decorate(diag.Diagnostic{}, store)
		if err != nil {
			t.Fatalf("kind %s: Decorate: %v", kind, err)
		}
		if len(out.Notes) != 1 {
			t.Errorf("kind %s: %d notes, want 1", kind, len(out.Notes))
		}
		if out.Help != "" {
			t.Errorf("kind %s: unexpected help %q", kind, out.Help)
		}
		if out.Args.Len() != 0 {
			t.Errorf("kind %s: unexpected args %v", kind, out.Args.Names())
		}
	}
}

func TestDecorateTargetFeaturesNoBuildEnabled(t *testing.T) {
	store := msg.NewCatalog()
	d := NewTargetFeatureViolation(testSpan(), []string{"avx2"}, nil)

	out, err := d.Decorate(diag.Diagnostic{}, store)
	if err != nil {
		t.Fatalf("Decorate: %v", err)
	}
	if len(out.Notes) != 0 {
		t.Errorf("notes = %d, want 0 when no build features are enabled", len(out.Notes))
	}
	if out.Help == "" {
		t.Error("help must always be present for CallToFunctionWith")
	}
	if _, ok := out.Args.Get("build_target_features"); ok {
		t.Error("build_target_features must be absent when build list is empty")
	}
	if v, ok := out.Args.Get("missing_target_features"); !ok || v.Render() != "avx2" {
		t.Errorf("missing_target_features = %v, %v", v, ok)
	}
	if v, ok := out.Args.Get("missing_target_features_count"); !ok || v.AsCount() != 1 {
		t.Errorf("missing_target_features_count = %v, %v", v, ok)
	}
}

func TestDecorateTargetFeaturesWithBuildEnabled(t *testing.T) {
	store := msg.NewCatalog()
	d := NewTargetFeatureViolation(testSpan(), []string{"avx2"}, []string{"sse4.2"})

	out, err := d.Decorate(diag.Diagnostic{}, store)
	if err != nil {
		t.Fatalf("Decorate: %v", err)
	}
	if len(out.Notes) != 1 {
		t.Fatalf("notes = %d, want 1 when build features are enabled", len(out.Notes))
	}
	if out.Help == "" {
		t.Error("help must be present")
	}
	v, ok := out.Args.Get("build_target_features")
	if !ok || v.Render() != "sse4.2" {
		t.Errorf("build_target_features = %v, %v", v, ok)
	}
}

func TestNewViolationRejectsTargetFeatureKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for CallToFunctionWith via NewViolation")
		}
	}()
	NewViolation(testSpan(), CallToFunctionWith)
}

func TestNewTargetFeatureViolationRejectsEmptyMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty missing feature list")
		}
	}()
	NewTargetFeatureViolation(testSpan(), nil, []string{"sse4.2"})
}

func TestViolationDetailIsDetachedFromInput(t *testing.T) {
	missing := []string{"avx2"}
	d := NewTargetFeatureViolation(testSpan(), missing, nil)
	missing[0] = "mutated"
	if d.MissingFeatures[0] != "avx2" {
		t.Error("detail must copy its feature lists")
	}
}
