package diag

import "testing"

func TestBagReporter(t *testing.T) {
	bag := NewBag(0)
	rep := BagReporter{Bag: bag}
	rep.Report(NewError(UnsafeRequiresUnsafe, span(0, 0, 1), "one"))
	rep.Report(NewLint(SevWarning, "unused_unsafe", span(0, 1, 2), "two"))
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagReporterNilBag(t *testing.T) {
	var rep BagReporter
	rep.Report(NewError(UnsafeRequiresUnsafe, span(0, 0, 1), "dropped"))
}

func TestNopReporter(t *testing.T) {
	var rep Reporter = NopReporter{}
	rep.Report(NewError(UnsafeRequiresUnsafe, span(0, 0, 1), "dropped"))
}
