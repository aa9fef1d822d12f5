package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qa-radar/qaradar/internal/config"
	"github.com/qa-radar/qaradar/internal/database"
	"github.com/qa-radar/qaradar/internal/report"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [origin]",
		Short: "List past discovery runs",
		Long: `History lists discovery runs recorded in the local database.

Without an origin argument all runs are listed. Use --show with a run
ID to render a stored brief again.

Examples:
  # List recent runs for every origin
  qaradar history

  # List runs for one origin
  qaradar history https://example.com

  # Render a stored brief
  qaradar history --show 42`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to list")
	cmd.Flags().Int64("show", 0, "Render the stored brief for the given run ID")
	cmd.Flags().BoolP("json", "j", false, "Render the stored brief as JSON (with --show)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	db, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("no discovery history found (run a discovery first): %w", err)
	}
	defer db.Close() //nolint:errcheck // Read-only session

	showID, err := cmd.Flags().GetInt64("show")
	if err != nil {
		return err
	}
	if showID > 0 {
		return showStoredBrief(cmd, db, showID)
	}

	origin := ""
	if len(args) == 1 {
		origin = args[0]
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	runs, err := db.RecentRuns(cmd.Context(), origin, limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No discovery runs recorded.")
		return nil
	}

	writeRunTable(cmd, runs)
	return nil
}

// showStoredBrief renders one stored brief by run ID.
func showStoredBrief(cmd *cobra.Command, db *database.HistoryDB, id int64) error {
	brief, err := db.GetBrief(cmd.Context(), id)
	if err != nil {
		return err
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	var w report.Writer
	if asJSON {
		w = report.NewJSONWriter(cmd.OutOrStdout(), report.WithPrettyPrint(), report.WithVersion(getVersion()))
	} else {
		w = report.NewTextWriter(cmd.OutOrStdout())
	}

	_, err = w.Write(brief)
	return err
}

// writeRunTable prints runs as an aligned text table.
func writeRunTable(cmd *cobra.Command, runs []database.RunSummary) {
	out := cmd.OutOrStdout()
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%-5s %-40s %-17s %-8s %-6s %-6s %-7s\n",
		"ID", "ORIGIN", "DATE", "HEALTH", "PAGES", "HIGH+", "ERRORS")
	fmt.Fprintln(out, strings.Repeat("-", 95))

	for _, r := range runs {
		origin := r.Origin
		if len(origin) > 40 {
			origin = origin[:37] + "..."
		}
		fmt.Fprintf(out, "%-5d %-40s %-17s %-8s %-6d %-6d %-7d\n",
			r.ID,
			origin,
			r.Timestamp.Format("2006-01-02 15:04"),
			r.DiscoveryHealth,
			r.PageCount,
			r.CriticalCount+r.HighCount,
			r.FetchErrorCount,
		)
	}
}
