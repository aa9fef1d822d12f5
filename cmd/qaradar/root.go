// Package main provides the entry point for the QA Radar CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for QA Radar.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qaradar",
		Short: "Discovery-level trust and risk radar for public websites",
		Long: `QA Radar crawls a website origin within strict same-origin bounds and
produces a discovery brief: evidence-backed risk signals grouped by
trust domain, with confidence-capped attention bands.

The output supports senior QA judgment. QA Radar does not issue final
assessments, severity ratings, or remediation directives.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewDiscoverCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
