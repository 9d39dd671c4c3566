package diag

// Reporter is the minimal contract for handing a finished diagnostic
// to a sink. Implementations: BagReporter (collects into a Bag),
// NopReporter (drops everything).
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter writes diagnostics into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
