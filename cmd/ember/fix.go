package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/diag"
	"ember/internal/driver"
	"ember/internal/fix"
	"ember/internal/lints"
	"ember/internal/source"
	"ember/internal/ui"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <findings.mp>",
	Short: "Apply available fixes from a findings report",
	Long:  "Classify the findings, surface available fixes, and apply them according to the chosen strategy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply all safe fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply fix with a specific identifier")
	fixCmd.Flags().Bool("tool-fixes", false, "also consider fixes marked for editor tooling")
	fixCmd.Flags().Bool("interactive", false, "pick fixes in an interactive terminal UI")
	fixCmd.Flags().String("config", "", "path to a TOML lint configuration")
}

func runFix(cmd *cobra.Command, args []string) error {
	reportPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnceFlag, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	toolFixes, err := cmd.Flags().GetBool("tool-fixes")
	if err != nil {
		return err
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	if targetID != "" && (applyAll || applyOnceFlag) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnceFlag {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}
	if interactive && (applyAll || applyOnceFlag || targetID != "") {
		return fmt.Errorf("--interactive cannot be combined with a selection strategy")
	}
	if interactive && !isTerminal(os.Stdout) {
		return fmt.Errorf("--interactive requires a terminal")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	cfg := lints.DefaultConfig()
	if configPath != "" {
		cfg, err = lints.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	rep, err := driver.LoadReport(reportPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	fs := source.NewFileSet()
	results, err := driver.ClassifyReport(cmd.Context(), rep, fs, driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Config:         cfg,
	})
	if err != nil {
		return fmt.Errorf("fix: classification failed: %w", err)
	}

	bag := driver.MergeResults(results, maxDiagnostics)
	bag.Sort()
	diagnostics := bag.Items()

	if interactive {
		return runFixInteractive(fs, diagnostics)
	}

	mode := fix.ApplyModeOnce
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyAll {
		mode = fix.ApplyModeAll
	}
	res, applyErr := fix.Apply(fs, diagnostics, fix.ApplyOptions{
		Mode:            mode,
		TargetID:        targetID,
		IncludeToolOnly: toolFixes,
	})
	return handleApplyResult(res, applyErr)
}

// runFixInteractive lets the user choose fixes in a terminal UI, then
// applies each selected fix by its identifier.
func runFixInteractive(fs *source.FileSet, diagnostics []diag.Diagnostic) error {
	type candidate struct {
		id   string
		item ui.PickItem
	}
	var candidates []candidate
	for _, d := range diagnostics {
		for idx, f := range d.Fixes {
			id := f.ID
			if id == "" {
				id = fmt.Sprintf("%s-%d-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start, idx)
			}
			candidates = append(candidates, candidate{
				id: id,
				item: ui.PickItem{
					Title:    f.Title,
					Location: spanLocation(fs, d.Primary),
					Detail:   d.Message,
				},
			})
		}
	}
	if len(candidates) == 0 {
		fmt.Fprintln(os.Stdout, "No applicable fixes found.")
		return nil
	}

	items := make([]ui.PickItem, len(candidates))
	for i, c := range candidates {
		items[i] = c.item
	}
	picked, err := ui.RunPicker("select fixes to apply", items)
	if err != nil {
		return err
	}
	if picked.Aborted || len(picked.Selected) == 0 {
		fmt.Fprintln(os.Stdout, "No fixes applied.")
		return nil
	}

	for _, idx := range picked.Selected {
		res, applyErr := fix.Apply(fs, diagnostics, fix.ApplyOptions{
			Mode:            fix.ApplyModeID,
			TargetID:        candidates[idx].id,
			IncludeToolOnly: true,
		})
		if err := handleApplyResult(res, applyErr); err != nil {
			return err
		}
	}
	return nil
}

func spanLocation(fs *source.FileSet, span source.Span) string {
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", file.FormatPath("auto", fs.BaseDir()), start.Line, start.Col)
}

func handleApplyResult(res *fix.ApplyResult, applyErr error) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		fmt.Fprintf(os.Stdout, "Applied %d fix(es):\n", len(res.Applied))
		for _, item := range res.Applied {
			location := item.Path
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(os.Stdout, "  %s [%s] at %s (%d edits, %s)\n",
				item.Title, item.ID, location, item.EditCount, item.Applicability)
		}
	}

	if len(res.FileChanges) > 0 {
		fmt.Fprintln(os.Stdout, "Updated files:")
		for _, change := range res.FileChanges {
			fmt.Fprintf(os.Stdout, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(os.Stdout, "Skipped fixes:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(os.Stdout, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(os.Stdout, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			fmt.Fprintln(os.Stdout, "No applicable fixes found.")
			return nil
		}
		return applyErr
	}

	if len(res.Applied) == 0 {
		fmt.Fprintln(os.Stdout, "No fixes applied.")
	}
	return nil
}
