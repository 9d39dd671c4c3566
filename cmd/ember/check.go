package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
	"ember/internal/lints"
	"ember/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <findings.mp>",
	Short: "Classify unsafety findings and report diagnostics",
	Long:  `Read a findings report produced by the body walker, classify every finding against the lint configuration, and print the resulting diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().String("config", "", "path to a TOML lint configuration")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("overflow-checks", false, "report arithmetic overflow findings as hard errors")
}

func runCheck(cmd *cobra.Command, args []string) error {
	reportPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}
	overflowChecks, err := cmd.Flags().GetBool("overflow-checks")
	if err != nil {
		return err
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
	if overflowChecks {
		cfg.OverflowChecks = true
	}

	rep, err := driver.LoadReport(reportPath)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	fs := source.NewFileSet()
	results, err := driver.ClassifyReport(cmd.Context(), rep, fs, driver.Options{
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Config:         cfg,
	})
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	bag := driver.MergeResults(results, maxDiagnostics)
	bag.Sort()
	bag.Dedup()

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "pretty":
		color, err := useColor(cmd)
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stdout, bag, fs, diagfmt.PrettyOpts{
			Color:     color,
			PathMode:  pathMode,
			ShowNotes: withNotes,
			ShowFixes: suggest,
		})
	case "json":
		err := diagfmt.JSON(os.Stdout, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
			IncludeFixes:     suggest,
			IncludeArgs:      true,
		})
		if err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bag.HasErrors() {
		// diagnostics already printed, keep cobra quiet
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}
