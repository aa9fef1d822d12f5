package database

import (
	"context"
	"testing"
	"time"

	"github.com/qa-radar/qaradar/internal/model"
)

func openTestDB(t *testing.T) *HistoryDB {
	t.Helper()

	hdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := hdb.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return hdb
}

func testBrief(origin string, ts time.Time) *model.DiscoveryBrief {
	return &model.DiscoveryBrief{
		Origin:          origin,
		DiscoveryHealth: model.HealthMedium,
		Archetype:       "general",
		Groups: []model.DomainGroup{
			{
				Domain: model.DomainBrandCredibility,
				Pages: []model.PageRecord{
					{
						URL:         origin,
						TrustDomain: model.DomainBrandCredibility,
						Signals: []model.Signal{
							{
								Description:  "Superlative or guarantee-style marketing claims",
								EvidenceType: model.EvidencePatternConsistency,
								Rationale:    "Guarantee language raises the evidence bar for the page",
								Confidence:   model.ConfidenceModerate,
							},
						},
						AttentionBand: model.BandLow,
						Confidence:    model.ConfidenceModerate,
						ReviewPrompt:  model.ReviewPrompt(model.DomainBrandCredibility),
					},
					{
						URL:           origin + "/about",
						TrustDomain:   model.DomainBrandCredibility,
						Signals:       []model.Signal{},
						AttentionBand: model.BandLow,
						Confidence:    model.ConfidenceHigh,
						ReviewPrompt:  model.ReviewPrompt(model.DomainBrandCredibility),
					},
				},
			},
		},
		FetchErrors: []model.FetchError{
			{URL: origin + "/missing", Status: 404, Error: "status 404"},
		},
		Timestamp: ts,
	}
}

func TestOpenRequiresExistingDatabase(t *testing.T) {
	t.Parallel()

	_, err := Open(t.TempDir(), Options{CreateIfNotExists: false})
	if err == nil {
		t.Error("Open() should fail when the database does not exist")
	}
}

func TestSaveAndListRuns(t *testing.T) {
	t.Parallel()

	hdb := openTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	for i := range 3 {
		brief := testBrief("https://a.example.com", base.Add(time.Duration(i)*time.Hour))
		if _, err := hdb.SaveBrief(ctx, brief); err != nil {
			t.Fatalf("SaveBrief() error = %v", err)
		}
	}
	if _, err := hdb.SaveBrief(ctx, testBrief("https://b.example.com", base)); err != nil {
		t.Fatalf("SaveBrief() error = %v", err)
	}

	t.Run("filter by origin", func(t *testing.T) {
		runs, err := hdb.RecentRuns(ctx, "https://a.example.com", 10)
		if err != nil {
			t.Fatalf("RecentRuns() error = %v", err)
		}
		if len(runs) != 3 {
			t.Fatalf("got %d runs, want 3", len(runs))
		}
		// Newest first.
		for i := 1; i < len(runs); i++ {
			if runs[i].Timestamp.After(runs[i-1].Timestamp) {
				t.Error("runs should be ordered newest first")
			}
		}
		if runs[0].PageCount != 2 {
			t.Errorf("PageCount = %d, want 2", runs[0].PageCount)
		}
		if runs[0].LowCount != 2 {
			t.Errorf("LowCount = %d, want 2", runs[0].LowCount)
		}
		if runs[0].FetchErrorCount != 1 {
			t.Errorf("FetchErrorCount = %d, want 1", runs[0].FetchErrorCount)
		}
		if runs[0].DiscoveryHealth != "Medium" {
			t.Errorf("DiscoveryHealth = %q, want Medium", runs[0].DiscoveryHealth)
		}
	})

	t.Run("all origins", func(t *testing.T) {
		runs, err := hdb.RecentRuns(ctx, "", 10)
		if err != nil {
			t.Fatalf("RecentRuns() error = %v", err)
		}
		if len(runs) != 4 {
			t.Errorf("got %d runs, want 4", len(runs))
		}
	})

	t.Run("limit applies", func(t *testing.T) {
		runs, err := hdb.RecentRuns(ctx, "", 2)
		if err != nil {
			t.Fatalf("RecentRuns() error = %v", err)
		}
		if len(runs) != 2 {
			t.Errorf("got %d runs, want 2", len(runs))
		}
	})
}

func TestGetBriefRoundTrip(t *testing.T) {
	t.Parallel()

	hdb := openTestDB(t)
	ctx := context.Background()

	original := testBrief("https://example.com", time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	id, err := hdb.SaveBrief(ctx, original)
	if err != nil {
		t.Fatalf("SaveBrief() error = %v", err)
	}

	loaded, err := hdb.GetBrief(ctx, id)
	if err != nil {
		t.Fatalf("GetBrief() error = %v", err)
	}

	if loaded.Origin != original.Origin {
		t.Errorf("Origin = %q, want %q", loaded.Origin, original.Origin)
	}
	if loaded.DiscoveryHealth != model.HealthMedium {
		t.Errorf("DiscoveryHealth = %v, want Medium", loaded.DiscoveryHealth)
	}
	if loaded.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", loaded.PageCount())
	}

	page := loaded.Groups[0].Pages[0]
	if page.TrustDomain != model.DomainBrandCredibility {
		t.Errorf("TrustDomain = %v", page.TrustDomain)
	}
	if page.Confidence != model.ConfidenceModerate {
		t.Errorf("Confidence = %v, want Moderate", page.Confidence)
	}
	if page.Signals[0].EvidenceType != model.EvidencePatternConsistency {
		t.Errorf("EvidenceType = %v, want Pattern Consistency", page.Signals[0].EvidenceType)
	}
}

func TestGetBriefNotFound(t *testing.T) {
	t.Parallel()

	hdb := openTestDB(t)

	if _, err := hdb.GetBrief(context.Background(), 9999); err == nil {
		t.Error("GetBrief() should fail for a missing run")
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	first, err := Open(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := first.SaveBrief(ctx, testBrief("https://example.com", time.Now())); err != nil {
		t.Fatalf("SaveBrief() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := Open(dir, Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close() //nolint:errcheck // Test cleanup

	runs, err := second.RecentRuns(ctx, "", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}
