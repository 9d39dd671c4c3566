package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"ember/internal/diag"
	"ember/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines the selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first machine-applicable fix.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every machine-applicable fix.
	ApplyModeAll
	// ApplyModeID applies the fix with a specific identifier.
	ApplyModeID
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
	// IncludeToolOnly also considers fixes marked for editor
	// consumption. Off by default: the CLI is a plain-text surface.
	IncludeToolOnly bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID            string
	Title         string
	Code          diag.Code
	Message       string
	Applicability diag.FixApplicability
	Path          string
	EditCount     int
}

// SkippedFix captures a skipped or failed fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises modifications performed on one file.
type FileChange struct {
	Path      string
	EditCount int
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to
// opts, applies the edits, and writes changed files back to disk.
// Virtual files are never written.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates, skips := gather(diag.FixBuildContext{FileSet: fs}, diagnostics, opts)
	result.Skipped = append(result.Skipped, skips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}

	sortCandidates(candidates)

	selected, skips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, skips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	if err := applySelected(fs, selected, result); err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

func gather(ctx diag.FixBuildContext, diagnostics []diag.Diagnostic, opts ApplyOptions) ([]candidate, []SkippedFix) {
	var cands []candidate
	var skips []SkippedFix

	order := 0
	for _, d := range diagnostics {
		if len(d.Fixes) == 0 {
			continue
		}
		resolved, err := diag.MaterializeFixes(ctx, d.Fixes)
		if err != nil {
			skips = append(skips, SkippedFix{
				Title:  d.Message,
				Reason: fmt.Sprintf("failed to build fixes: %v", err),
			})
			continue
		}
		for idx, f := range resolved {
			if f.ToolOnly && !opts.IncludeToolOnly {
				skips = append(skips, SkippedFix{
					ID:     f.ID,
					Title:  f.Title,
					Reason: "fix is tool-only",
				})
				continue
			}
			if len(f.Edits) == 0 {
				skips = append(skips, SkippedFix{
					ID:     f.ID,
					Title:  f.Title,
					Reason: "fix has no edits",
				})
				continue
			}
			if f.ID == "" {
				f.ID = fmt.Sprintf("%s-%d-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start, idx)
			}
			cands = append(cands, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return cands, skips
}

// sortCandidates orders candidates by file, span, insertion order,
// preference, then ID for a deterministic apply order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if candidates[i].order != candidates[j].order {
			return candidates[i].order < candidates[j].order
		}
		if candidates[i].fix.IsPreferred != candidates[j].fix.IsPreferred {
			return candidates[i].fix.IsPreferred
		}
		return candidates[i].fix.ID < candidates[j].fix.ID
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range candidates {
			if cand.fix.ID == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{ID: opts.TargetID, Reason: "fix id not found"}}
	case ApplyModeAll:
		var selected []candidate
		var skipped []SkippedFix
		for _, cand := range candidates {
			if cand.fix.Applicability == diag.FixMachineApplicable {
				selected = append(selected, cand)
				continue
			}
			skipped = append(skipped, SkippedFix{
				ID:     cand.fix.ID,
				Title:  cand.fix.Title,
				Reason: fmt.Sprintf("applicability is %s", cand.fix.Applicability),
			})
		}
		return selected, skipped
	case ApplyModeOnce:
		for _, cand := range candidates {
			if cand.fix.Applicability == diag.FixMachineApplicable {
				return []candidate{cand}, nil
			}
		}
		// no safe fix: fall back to the first candidate for review
		return candidates[:1], nil
	}
	return nil, nil
}

func applySelected(fs *source.FileSet, selected []candidate, result *ApplyResult) error {
	buffers := make(map[source.FileID][]byte)
	applied := make(map[source.FileID][]diag.TextEdit)
	editCount := make(map[source.FileID]int)

	for _, cand := range selected {
		reason := stageFix(fs, cand.fix, buffers, applied, editCount)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{
				ID:     cand.fix.ID,
				Title:  cand.fix.Title,
				Reason: reason,
			})
			continue
		}
		result.Applied = append(result.Applied, AppliedFix{
			ID:            cand.fix.ID,
			Title:         cand.fix.Title,
			Code:          cand.diag.Code,
			Message:       cand.diag.Message,
			Applicability: cand.fix.Applicability,
			Path:          fs.Get(cand.diag.Primary.File).FormatPath("auto", fs.BaseDir()),
			EditCount:     len(cand.fix.Edits),
		})
	}

	if len(result.Applied) == 0 {
		return nil
	}
	return flush(fs, buffers, editCount, result)
}

// stageFix validates one fix against the staged buffers and applies
// its edits. It returns a skip reason, or "" on success.
func stageFix(fs *source.FileSet, f diag.Fix, buffers map[source.FileID][]byte, appliedEdits map[source.FileID][]diag.TextEdit, editCount map[source.FileID]int) string {
	for _, edit := range f.Edits {
		file := fs.Get(edit.Span.File)
		if file.Flags&source.FileVirtual != 0 {
			return "target file is virtual"
		}
		for _, prev := range appliedEdits[edit.Span.File] {
			if spansConflict(prev, edit) {
				return fmt.Sprintf("conflicts with previously applied edits in %s", file.Path)
			}
		}
	}

	// apply per file in descending start order so earlier offsets stay valid
	edits := append([]diag.TextEdit(nil), f.Edits...)
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Span.File != edits[j].Span.File {
			return edits[i].Span.File < edits[j].Span.File
		}
		return edits[i].Span.Start > edits[j].Span.Start
	})

	staged := make(map[source.FileID][]byte)
	for _, edit := range edits {
		fileID := edit.Span.File
		buf, ok := staged[fileID]
		if !ok {
			buf, ok = buffers[fileID]
			if !ok {
				buf = append([]byte(nil), fs.Get(fileID).Content...)
			}
		}
		// adjust for edits from earlier fixes in the same file
		start := int(edit.Span.Start) + delta(appliedEdits[fileID], int(edit.Span.Start))
		end := int(edit.Span.End) + delta(appliedEdits[fileID], int(edit.Span.End))
		if start < 0 || end < start || end > len(buf) {
			return "edit span out of range"
		}
		if edit.OldText != "" && string(buf[start:end]) != edit.OldText {
			return "existing text does not match expected content"
		}
		next := make([]byte, 0, len(buf)+len(edit.NewText)-(end-start))
		next = append(next, buf[:start]...)
		next = append(next, edit.NewText...)
		next = append(next, buf[end:]...)
		staged[fileID] = next
	}

	for fileID, buf := range staged {
		buffers[fileID] = buf
	}
	for _, edit := range f.Edits {
		fileID := edit.Span.File
		appliedEdits[fileID] = append(appliedEdits[fileID], edit)
		sort.SliceStable(appliedEdits[fileID], func(i, j int) bool {
			return appliedEdits[fileID][i].Span.Start < appliedEdits[fileID][j].Span.Start
		})
		editCount[fileID]++
	}
	return ""
}

func flush(fs *source.FileSet, buffers map[source.FileID][]byte, editCount map[source.FileID]int, result *ApplyResult) error {
	for fileID, buf := range buffers {
		file := fs.Get(fileID)
		mode := os.FileMode(0o644)
		if info, err := os.Stat(file.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file.Path, buf, mode); err != nil {
			return fmt.Errorf("write %s: %w", file.Path, err)
		}
		result.FileChanges = append(result.FileChanges, FileChange{
			Path:      file.FormatPath("relative", fs.BaseDir()),
			EditCount: editCount[fileID],
		})
	}
	sort.SliceStable(result.FileChanges, func(i, j int) bool {
		return result.FileChanges[i].Path < result.FileChanges[j].Path
	})
	return nil
}

// delta shifts a byte position by the net length change of all edits
// that finished before it.
func delta(edits []diag.TextEdit, pos int) int {
	d := 0
	for _, e := range edits {
		if int(e.Span.Start) > pos {
			break
		}
		if int(e.Span.End) <= pos {
			d += len(e.NewText) - int(e.Span.Len())
		}
	}
	return d
}

// spansConflict reports whether two edits overlap. Spans are half-open
// [Start, End); two insertions at the same point do not conflict, an
// insertion inside a replaced range does.
func spansConflict(a, b diag.TextEdit) bool {
	if a.Span.File != b.Span.File {
		return false
	}
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End
	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}
