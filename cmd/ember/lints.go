package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ember/internal/lints"
)

var lintsCmd = &cobra.Command{
	Use:   "lints",
	Short: "List built-in lints and their default levels",
	RunE:  runLints,
}

func runLints(cmd *cobra.Command, args []string) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	enabled, err := useColor(cmd)
	if err != nil {
		return err
	}

	idColor := color.New(color.FgCyan, color.Bold)
	if !enabled {
		idColor.DisableColor()
	}

	for _, l := range lints.All() {
		if quiet {
			fmt.Fprintln(os.Stdout, l.ID)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s  %s (default: %s)\n",
			idColor.Sprintf("%-24s", string(l.ID)), l.Summary, l.DefaultLevel)
	}
	return nil
}
