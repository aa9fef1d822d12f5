package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qa-radar/qaradar/internal/config"
	"github.com/qa-radar/qaradar/internal/crawler"
	"github.com/qa-radar/qaradar/internal/database"
	"github.com/qa-radar/qaradar/internal/log"
	"github.com/qa-radar/qaradar/internal/model"
	"github.com/qa-radar/qaradar/internal/pipeline"
	"github.com/qa-radar/qaradar/internal/report"
)

// NewDiscoverCmd creates the discover command.
func NewDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover [origin]...",
		Short: "Discover trust and risk signals on a website origin",
		Long: `Discover crawls a website origin within strict same-origin bounds and
produces a discovery brief for senior QA review.

For each reachable page it:
- classifies the page into a trust domain (brand, transaction, support)
- detects evidence-backed risk signals from page markup
- proposes a confidence-capped attention band

The homepage must be reachable; any other page failing to load is
recorded as a fetch error, never retried.

Examples:
  # Discover a single origin
  qaradar discover example.com

  # Multiple origins with strict severity thresholds
  qaradar discover --strict shop.example.com blog.example.com

  # Output a Markdown brief to a file
  qaradar discover --markdown -o brief.md example.com

  # Use a custom configuration file
  qaradar discover -c myconfig.yaml example.com

Configuration file (.qaradar) example:
  defaults:
    max_pages: 10
  origins:
    shop.example.com:
      max_pages: 25
      strict: true`,
		Args: cobra.ArbitraryArgs,
		RunE: runDiscoverCmd,
	}

	// Discovery behavior flags
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum number of pages to analyze per origin")
	cmd.Flags().BoolP("strict", "s", false,
		"Enable strict severity thresholds")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each page fetch")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of concurrent page fetches per origin")
	cmd.Flags().Float64("rps", config.DefaultRequestsPerSecond,
		"Politeness rate limit in requests per second (0 disables)")
	cmd.Flags().String("user-agent", "",
		"Override the User-Agent header")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .qaradar in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON brief (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown brief (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write brief to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().Bool("no-save", false,
		"Do not record the run in the history database")

	return cmd
}

// runDiscoverCmd executes the discover command.
func runDiscoverCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Handle interrupt signals for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Warn("received shutdown signal, cancelling...")
		cancel()
	}()

	return runDiscover(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.MaxPages, err = cmd.Flags().GetInt("max-pages")
	if err != nil {
		return nil, err
	}

	cfg.StrictMode, err = cmd.Flags().GetBool("strict")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.RequestsPerSecond, err = cmd.Flags().GetFloat64("rps")
	if err != nil {
		return nil, err
	}

	cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load per-origin configurations. An explicitly given path must
	// exist; the default search may come up empty.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.OriginConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.OriginConfigs = &config.File{
			Origins: make(map[string]config.OriginConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noSave
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Origins = args

	return cfg, nil
}

// runDiscover executes the discovery for all configured origins.
func runDiscover(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Debug("starting discovery",
		"origins", cfg.Origins,
		"max_pages", cfg.MaxPages,
		"strict", cfg.StrictMode,
		"save_history", cfg.SaveHistory,
	)

	var db *database.HistoryDB
	if cfg.SaveHistory {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close() //nolint:errcheck // Best-effort close on exit
		logger.Debug("history database opened", "dir", cfg.DBDir)
	}

	discover := func(ctx context.Context, origin string) (*model.DiscoveryBrief, error) {
		maxPages, strict, userAgent := cfg.ForOrigin(origin)

		fetcherOpts := []crawler.FetcherOption{
			crawler.WithRequestsPerSecond(cfg.RequestsPerSecond),
			crawler.WithMaxBodySize(cfg.MaxBodySize),
		}
		if userAgent != "" {
			fetcherOpts = append(fetcherOpts, crawler.WithUserAgent(userAgent))
		}

		d := pipeline.NewDiscovery(model.DefaultDoctrine(),
			pipeline.WithFetcher(crawler.NewFetcher(cfg.Timeout, fetcherOpts...)),
			pipeline.WithMaxPages(maxPages),
			pipeline.WithStrict(strict),
			pipeline.WithConcurrency(cfg.Concurrency),
			pipeline.WithDiscoveryLogger(logger),
		)
		return d.Run(ctx, origin)
	}

	if len(cfg.Origins) > 1 {
		return runBatchDiscover(ctx, cfg, db, discover, logger)
	}
	return runSingleDiscover(ctx, cfg, db, discover, logger)
}

// runSingleDiscover discovers one origin and reports its brief.
func runSingleDiscover(ctx context.Context, cfg *config.Config, db *database.HistoryDB, discover pipeline.DiscoverFunc, logger *slog.Logger) error {
	origin := cfg.Origins[0]

	fmt.Fprintf(os.Stderr, "Discovering %s...\n", origin)
	startTime := time.Now()

	brief, err := discover(ctx, origin)
	if err != nil {
		return fmt.Errorf("discovery failed for %s: %w", origin, err)
	}

	fmt.Fprintf(os.Stderr, "Discovery completed in %s\n\n", time.Since(startTime).Round(time.Millisecond))

	if err := outputBrief(cfg, brief); err != nil {
		return fmt.Errorf("failed to write brief: %w", err)
	}

	saveBrief(ctx, db, brief, logger)
	return nil
}

// runBatchDiscover discovers multiple origins concurrently.
func runBatchDiscover(ctx context.Context, cfg *config.Config, db *database.HistoryDB, discover pipeline.DiscoverFunc, logger *slog.Logger) error {
	fmt.Fprintf(os.Stderr, "Discovering %d origins...\n\n", len(cfg.Origins))

	bp := pipeline.NewBatchProcessor(discover,
		pipeline.WithBatchConcurrency(2),
		pipeline.WithBatchLogger(logger),
	)

	results, err := bp.Process(ctx, cfg.Origins)
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Discovery error for %s: %v\n", res.Origin, res.Err)
			continue
		}

		if err := outputBrief(cfg, res.Brief); err != nil {
			logger.Error("failed to write brief", "origin", res.Origin, "error", err)
		}
		saveBrief(ctx, db, res.Brief, logger)
	}

	if failed == len(results) {
		return fmt.Errorf("all %d discoveries failed", failed)
	}
	return nil
}

// outputBrief writes the brief in the configured format and destination.
func outputBrief(cfg *config.Config, brief *model.DiscoveryBrief) error {
	out := os.Stdout
	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Write errors surface from the writer
		out = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(out, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(out)
	default:
		w = report.NewTextWriter(out, report.WithVerbose(cfg.Verbose))
	}

	_, err := w.Write(brief)
	return err
}

// saveBrief records the brief in the history database when enabled.
// Persistence failures are logged, never fatal; the brief was already
// delivered to the user.
func saveBrief(ctx context.Context, db *database.HistoryDB, brief *model.DiscoveryBrief, logger *slog.Logger) {
	if db == nil {
		return
	}

	id, err := db.SaveBrief(ctx, brief)
	if err != nil {
		logger.Error("failed to save brief", "origin", brief.Origin, "error", err)
		return
	}
	logger.Debug("brief saved", "origin", brief.Origin, "run_id", id)
}
