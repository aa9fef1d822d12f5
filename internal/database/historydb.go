package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/qa-radar/qaradar/internal/model"
)

// HistoryDB provides SQLite-based storage for discovery run history.
//
// Design decision: one database file for all origins rather than a file
// per origin. Cross-origin listing is a single query, and backup is one
// file.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended for most use
	// cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the given directory.
// With CreateIfNotExists the directory and database file are created;
// without it, a missing database is an error.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "qaradar.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite DSN: mode=rw prevents creating new files,
	// mode=rwc allows creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports only one writer; a single connection avoids
	// SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Discovery runs store one row per completed brief
	CREATE TABLE IF NOT EXISTS discovery_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		origin TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		discovery_health TEXT NOT NULL,
		archetype TEXT NOT NULL,
		page_count INTEGER NOT NULL,
		critical_count INTEGER NOT NULL DEFAULT 0,
		high_count INTEGER NOT NULL DEFAULT 0,
		medium_count INTEGER NOT NULL DEFAULT 0,
		low_count INTEGER NOT NULL DEFAULT 0,
		fetch_error_count INTEGER NOT NULL DEFAULT 0,
		brief_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_origin ON discovery_runs(origin);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON discovery_runs(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// RunSummary is one stored run's summary columns, without the full brief.
type RunSummary struct {
	// ID is the run's database identifier.
	ID int64

	// Origin is the canonical origin the run discovered.
	Origin string

	// Timestamp is when the brief was assembled.
	Timestamp time.Time

	// DiscoveryHealth is the stored health name.
	DiscoveryHealth string

	// Archetype is the advisory site archetype.
	Archetype string

	// PageCount is the number of analyzed pages.
	PageCount int

	// CriticalCount through LowCount tally pages per attention band.
	CriticalCount int
	HighCount     int
	MediumCount   int
	LowCount      int

	// FetchErrorCount is the number of unusable page fetches.
	FetchErrorCount int
}

// SaveBrief stores a completed brief and returns its row ID.
func (hdb *HistoryDB) SaveBrief(ctx context.Context, brief *model.DiscoveryBrief) (int64, error) {
	briefJSON, err := json.Marshal(brief)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize brief: %w", err)
	}

	counts := brief.BandCounts()

	query := `
	INSERT INTO discovery_runs (
		origin, timestamp, discovery_health, archetype, page_count,
		critical_count, high_count, medium_count, low_count,
		fetch_error_count, brief_json
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := hdb.db.ExecContext(ctx, query,
		brief.Origin,
		brief.Timestamp.UTC(),
		brief.DiscoveryHealth.String(),
		brief.Archetype,
		brief.PageCount(),
		counts[model.BandCritical],
		counts[model.BandHigh],
		counts[model.BandMedium],
		counts[model.BandLow],
		len(brief.FetchErrors),
		string(briefJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return result.LastInsertId()
}

// RecentRuns lists stored runs newest first. An empty origin lists runs
// for every origin. limit caps the result; values below one default to 20.
func (hdb *HistoryDB) RecentRuns(ctx context.Context, origin string, limit int) ([]RunSummary, error) {
	if limit < 1 {
		limit = 20
	}

	query := `
	SELECT id, origin, timestamp, discovery_health, archetype, page_count,
	       critical_count, high_count, medium_count, low_count, fetch_error_count
	FROM discovery_runs`
	args := []any{}
	if origin != "" {
		query += " WHERE origin = ?"
		args = append(args, origin)
	}
	query += " ORDER BY timestamp DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	var summaries []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(
			&s.ID, &s.Origin, &s.Timestamp, &s.DiscoveryHealth, &s.Archetype,
			&s.PageCount, &s.CriticalCount, &s.HighCount, &s.MediumCount,
			&s.LowCount, &s.FetchErrorCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// GetBrief loads the full stored brief for a run ID.
func (hdb *HistoryDB) GetBrief(ctx context.Context, id int64) (*model.DiscoveryBrief, error) {
	var briefJSON string
	err := hdb.db.QueryRowContext(ctx,
		"SELECT brief_json FROM discovery_runs WHERE id = ?", id,
	).Scan(&briefJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %d: %w", id, err)
	}

	var brief model.DiscoveryBrief
	if err := json.Unmarshal([]byte(briefJSON), &brief); err != nil {
		return nil, fmt.Errorf("failed to decode stored brief: %w", err)
	}

	return &brief, nil
}
