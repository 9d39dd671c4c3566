package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ember/internal/diag"
	"ember/internal/lints"
	"ember/internal/msg"
	"ember/internal/source"
	"ember/internal/unsafety"
)

// Options configures a classification run.
type Options struct {
	// Jobs caps worker goroutines; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics bounds each body's bag; 0 means unbounded.
	MaxDiagnostics int
	Config         *lints.Config
	Store          msg.Store
}

// BodyResult is the classified output for one function body, in the
// report's body order.
type BodyResult struct {
	Name string
	Bag  *diag.Bag
}

// ClassifyReport materializes the report's files into fs and classifies
// every body in parallel. Results keep the report's body order so
// output is deterministic regardless of scheduling. A returned error
// means the run itself failed (malformed record, unknown message key);
// per-operation findings land in the bags.
func ClassifyReport(ctx context.Context, rep *Report, fs *source.FileSet, opts Options) ([]BodyResult, error) {
	ids, err := rep.Materialize(fs)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = lints.DefaultConfig()
	}
	if opts.Store == nil {
		opts.Store = msg.NewCatalog()
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]BodyResult, len(rep.Bodies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(rep.Bodies), 1)))

	for i, body := range rep.Bodies {
		i, body := i, body
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			if err := classifyBody(body, ids, cfg, opts.Store, diag.BagReporter{Bag: bag}); err != nil {
				return fmt.Errorf("body %q: %w", body.Name, err)
			}
			// index i is unique per goroutine, no mutex needed
			results[i] = BodyResult{Name: body.Name, Bag: bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MergeResults folds per-body bags into one, preserving body order.
func MergeResults(results []BodyResult, maxDiagnostics int) *diag.Bag {
	out := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		out.Merge(r.Bag)
	}
	return out
}

func classifyBody(body BodyRecord, ids []source.FileID, cfg *lints.Config, store msg.Store, rep diag.Reporter) error {
	asm := unsafety.Assembler{Store: store}
	allowed := cfg.UnsafeOpInUnsafeFnAllowed(body.Scope)

	for _, v := range body.Violations {
		if err := classifyViolation(body, v, ids, cfg, asm, allowed, rep); err != nil {
			return err
		}
	}
	for _, a := range body.Asserts {
		if err := classifyAssert(body, a, ids, cfg, asm, rep); err != nil {
			return err
		}
	}
	for _, l := range body.Lints {
		if err := classifySimpleLint(body, l, ids, cfg, asm, rep); err != nil {
			return err
		}
	}
	return nil
}

func classifyViolation(body BodyRecord, v ViolationRecord, ids []source.FileID, cfg *lints.Config, asm unsafety.Assembler, allowed bool, rep diag.Reporter) error {
	detail, err := decodeViolation(v, ids)
	if err != nil {
		return err
	}

	switch unsafety.Classify(body.IsUnsafeFn, allowed) {
	case unsafety.OutcomeHardError:
		enclosing, err := resolveOptional(body.Enclosing, ids)
		if err != nil {
			return err
		}
		d, err := asm.RequiresUnsafe(detail, enclosing, allowed)
		if err != nil {
			return err
		}
		rep.Report(d)

	case unsafety.OutcomeLint:
		level := cfg.Level(lints.UnsafeOpInUnsafeFn, body.Scope)
		if level == lints.LevelAllow {
			return nil
		}
		sugg, err := suggestion(body, ids)
		if err != nil {
			return err
		}
		d, err := asm.UnsafeOpInUnsafeFn(detail, sugg, level.Severity())
		if err != nil {
			return err
		}
		rep.Report(d)

	case unsafety.OutcomePermitted:
		// the policy explicitly allows the operation, nothing to report
	}
	return nil
}

func suggestion(body BodyRecord, ids []source.FileID) (*unsafety.BlockSuggestion, error) {
	bodyStart, err := body.BodyStart.Resolve(ids)
	if err != nil {
		return nil, err
	}
	bodyEnd, err := body.BodyEnd.Resolve(ids)
	if err != nil {
		return nil, err
	}
	sig, err := body.Signature.Resolve(ids)
	if err != nil {
		return nil, err
	}
	return unsafety.SuggestUnsafeBlock(bodyStart, bodyEnd, sig), nil
}

func decodeViolation(v ViolationRecord, ids []source.FileID) (unsafety.ViolationDetail, error) {
	span, err := v.Span.Resolve(ids)
	if err != nil {
		return unsafety.ViolationDetail{}, err
	}
	if v.Kind > uint8(unsafety.CallToFunctionWith) {
		return unsafety.ViolationDetail{}, fmt.Errorf("driver: unknown violation kind %d", v.Kind)
	}
	kind := unsafety.ViolationKind(v.Kind)
	if kind == unsafety.CallToFunctionWith {
		if len(v.MissingFeatures) == 0 {
			return unsafety.ViolationDetail{}, fmt.Errorf("driver: target-feature violation with no missing features")
		}
		return unsafety.NewTargetFeatureViolation(span, v.MissingFeatures, v.BuildEnabledFeatures), nil
	}
	return unsafety.NewViolation(span, kind), nil
}

func classifyAssert(body BodyRecord, a AssertRecord, ids []source.FileID, cfg *lints.Config, asm unsafety.Assembler, rep diag.Reporter) error {
	span, err := a.Span.Resolve(ids)
	if err != nil {
		return err
	}
	finding, err := decodeAssert(a, span)
	if err != nil {
		return err
	}

	level := cfg.Level(finding.LintID(), body.Scope)
	if level == lints.LevelAllow {
		return nil
	}
	sev := level.Severity()
	if cfg.OverflowChecks && finding.LintID() == lints.ArithmeticOverflow {
		sev = diag.SevError
	}

	d, err := asm.AssertLint(finding, sev)
	if err != nil {
		return err
	}
	rep.Report(d)
	return nil
}

func decodeAssert(a AssertRecord, span source.Span) (unsafety.AssertFinding, error) {
	var payload unsafety.PanicPayload
	switch a.Payload {
	case PayloadOverflow:
		payload = unsafety.OverflowPanic{Op: a.Op, Left: a.Left, Right: a.Right}
	case PayloadNegationOverflow:
		payload = unsafety.NegationOverflowPanic{Operand: a.Left}
	case PayloadDivisionByZero:
		payload = unsafety.DivisionByZeroPanic{Operand: a.Left}
	case PayloadRemainderByZero:
		payload = unsafety.RemainderByZeroPanic{Operand: a.Left}
	case PayloadBoundsCheck:
		payload = unsafety.BoundsCheckPanic{Len: a.Len, Index: a.Index}
	default:
		return unsafety.AssertFinding{}, fmt.Errorf("driver: unknown assert payload %d", a.Payload)
	}

	switch a.Tag {
	case AssertTagOverflow:
		return unsafety.ArithmeticOverflow(span, payload), nil
	case AssertTagUnconditionalPanic:
		return unsafety.UnconditionalPanic(span, payload), nil
	default:
		return unsafety.AssertFinding{}, fmt.Errorf("driver: unknown assert tag %d", a.Tag)
	}
}

func classifySimpleLint(body BodyRecord, l SimpleLintRecord, ids []source.FileID, cfg *lints.Config, asm unsafety.Assembler, rep diag.Reporter) error {
	span, err := l.Span.Resolve(ids)
	if err != nil {
		return err
	}

	assemble := func(lintID lints.ID, build func(sev diag.Severity) (diag.Diagnostic, error)) error {
		level := cfg.Level(lintID, body.Scope)
		if level == lints.LevelAllow {
			return nil
		}
		d, err := build(level.Severity())
		if err != nil {
			return err
		}
		rep.Report(d)
		return nil
	}

	switch l.Kind {
	case LintTagUnalignedPackedRef:
		// hard error, no lint level applies
		d, err := asm.UnalignedPackedRef(span)
		if err != nil {
			return err
		}
		rep.Report(d)
		return nil

	case LintTagUnusedUnsafe:
		parent, err := resolveOptional(l.NestedParent, ids)
		if err != nil {
			return err
		}
		return assemble(lints.UnusedUnsafe, func(sev diag.Severity) (diag.Diagnostic, error) {
			return asm.UnusedUnsafe(span, parent, sev)
		})

	case LintTagConstModify:
		if l.ConstDef == nil {
			return fmt.Errorf("driver: const mutation record without definition span")
		}
		constDef, err := l.ConstDef.Resolve(ids)
		if err != nil {
			return err
		}
		return assemble(lints.ConstItemMutation, func(sev diag.Severity) (diag.Diagnostic, error) {
			return asm.ConstModify(span, constDef, sev)
		})

	case LintTagConstMutBorrow:
		if l.ConstDef == nil {
			return fmt.Errorf("driver: const mutation record without definition span")
		}
		constDef, err := l.ConstDef.Resolve(ids)
		if err != nil {
			return err
		}
		method, err := resolveOptional(l.MethodCall, ids)
		if err != nil {
			return err
		}
		return assemble(lints.ConstItemMutation, func(sev diag.Severity) (diag.Diagnostic, error) {
			return asm.ConstMutBorrow(span, method, constDef, sev)
		})

	case LintTagFfiUnwindCall:
		return assemble(lints.FfiUnwindCall, func(sev diag.Severity) (diag.Diagnostic, error) {
			return asm.FfiUnwindCall(span, l.Foreign, sev)
		})

	case LintTagFnItemRef:
		return assemble(lints.FnItemRef, func(sev diag.Severity) (diag.Diagnostic, error) {
			return asm.FnItemRef(span, l.Ident, l.Suggestion, sev)
		})

	case LintTagMustNotSuspend:
		if l.Source == nil {
			return fmt.Errorf("driver: suspend record without source span")
		}
		src, err := l.Source.Resolve(ids)
		if err != nil {
			return err
		}
		return assemble(lints.MustNotSuspend, func(sev diag.Severity) (diag.Diagnostic, error) {
			return asm.MustNotSuspend(span, src, l.Pre, l.Def, l.Post, l.Reason, sev)
		})

	default:
		return fmt.Errorf("driver: unknown lint record kind %d", l.Kind)
	}
}
