package diag

import "testing"

func TestWithArgBranches(t *testing.T) {
	base := NewError(UnsafeRequiresUnsafe, span(0, 0, 1), "base").
		WithArg("details", Str("deref"))

	left := base.WithArg("branch", Str("left"))
	right := base.WithArg("branch", Str("right"))

	if _, ok := base.Args.Get("branch"); ok {
		t.Error("base gained an argument from a branched chain")
	}
	if v, _ := left.Args.Get("branch"); v.Render() != "left" {
		t.Errorf("left branch = %q, want %q", v.Render(), "left")
	}
	if v, _ := right.Args.Get("branch"); v.Render() != "right" {
		t.Errorf("right branch = %q, want %q", v.Render(), "right")
	}
	if base.Args.Len() != 1 || left.Args.Len() != 2 || right.Args.Len() != 2 {
		t.Errorf("lens = %d/%d/%d, want 1/2/2", base.Args.Len(), left.Args.Len(), right.Args.Len())
	}
}
