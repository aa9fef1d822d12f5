package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qa-radar/qaradar/internal/config"
	"github.com/qa-radar/qaradar/internal/model"
)

// TestNewDiscoverCmd tests the discover command creation.
func TestNewDiscoverCmd(t *testing.T) {
	t.Parallel()

	cmd := NewDiscoverCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "discover [origin]..." {
			t.Errorf("expected use 'discover [origin]...', got %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{
			"max-pages", "strict", "timeout", "concurrency", "rps",
			"user-agent", "config", "json", "markdown", "output", "no-save",
		} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q", name)
			}
		}
	})

	t.Run("max-pages default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("max-pages")
		if flag.DefValue != "10" {
			t.Errorf("max-pages default = %q, want 10", flag.DefValue)
		}
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults with origins", func(t *testing.T) {
		t.Parallel()

		cmd := NewDiscoverCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"example.com"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if len(cfg.Origins) != 1 || cfg.Origins[0] != "example.com" {
			t.Errorf("Origins = %v", cfg.Origins)
		}
		if cfg.MaxPages != config.DefaultMaxPages {
			t.Errorf("MaxPages = %d", cfg.MaxPages)
		}
		if cfg.Timeout != config.DefaultTimeout {
			t.Errorf("Timeout = %v", cfg.Timeout)
		}
		if !cfg.SaveHistory {
			t.Error("history saving should default to on")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewDiscoverCmd()
		if err := cmd.ParseFlags([]string{
			"--max-pages", "25", "--strict", "--timeout", "3s", "--no-save", "--json",
		}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"example.com"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}

		if cfg.MaxPages != 25 {
			t.Errorf("MaxPages = %d, want 25", cfg.MaxPages)
		}
		if !cfg.StrictMode {
			t.Error("StrictMode should be set")
		}
		if cfg.Timeout != 3*time.Second {
			t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
		}
		if cfg.SaveHistory {
			t.Error("--no-save should disable history")
		}
		if !cfg.JSONReport {
			t.Error("JSONReport should be set")
		}
	})

	t.Run("missing explicit config file fails", func(t *testing.T) {
		t.Parallel()

		cmd := NewDiscoverCmd()
		if err := cmd.ParseFlags([]string{"--config", "/nonexistent/qaradar.yml"}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd, []string{"example.com"}); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("conflicting formats fail validation", func(t *testing.T) {
		t.Parallel()

		cmd := NewDiscoverCmd()
		if err := cmd.ParseFlags([]string{"--json", "--markdown"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"example.com"})
		if err != nil {
			t.Fatalf("buildConfig() error = %v", err)
		}
		if !errors.Is(cfg.Validate(), config.ErrConflictingReportFormats) {
			t.Error("expected ErrConflictingReportFormats")
		}
	})
}

func TestOutputBriefToFile(t *testing.T) {
	t.Parallel()

	brief := &model.DiscoveryBrief{
		Origin:    "https://example.com",
		Groups:    []model.DomainGroup{},
		Timestamp: time.Now(),
		Doctrine:  model.DefaultDoctrine(),
	}

	t.Run("creates nested output path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports", "brief.md")
		cfg := config.NewConfig()
		cfg.MarkdownReport = true
		cfg.ReportFile = path

		if err := outputBrief(cfg, brief); err != nil {
			t.Fatalf("outputBrief() error = %v", err)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-owned path
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if len(data) == 0 {
			t.Error("output file should not be empty")
		}
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "brief.json")
		cfg := config.NewConfig()
		cfg.JSONReport = true
		cfg.ReportFile = path

		if err := outputBrief(cfg, brief); err != nil {
			t.Fatalf("outputBrief() error = %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file missing: %v", err)
		}
	})
}
