package report

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	// Registers the pure-Go "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"github.com/oshokin/solar-cycle/internal/domain/cycle"
	"github.com/oshokin/solar-cycle/internal/domain/tick"
)

const (
	createReadingsTable = `CREATE TABLE IF NOT EXISTS readings (
	run_id   TEXT    NOT NULL,
	tick     INTEGER NOT NULL,
	hour     INTEGER NOT NULL,
	angle    REAL    NOT NULL,
	daylight INTEGER NOT NULL,
	PRIMARY KEY (run_id, tick)
)`

	insertReading = `INSERT INTO readings (run_id, tick, hour, angle, daylight) VALUES (?, ?, ?, ?, ?)`

	selectRun = `SELECT tick, hour, angle, daylight FROM readings WHERE run_id = ? ORDER BY tick`
)

// SQLiteSink appends readings to the readings table of an SQLite file.
// Rows of one run share its run ID; earlier runs are kept.
type SQLiteSink struct {
	db    *sql.DB
	runID string
}

// OpenSQLite opens or creates the database at path and ensures the schema.
func OpenSQLite(path, runID string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite report: %w", err)
	}

	// SQLite has a single writer.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(createReadingsTable); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("create readings table: %w", err)
	}

	return &SQLiteSink{
		db:    db,
		runID: runID,
	}, nil
}

// Write inserts reading under the sink's run ID.
func (s *SQLiteSink) Write(ctx context.Context, reading tick.Reading) error {
	_, err := s.db.ExecContext(
		ctx,
		insertReading,
		s.runID,
		reading.Tick,
		reading.Hour.Int(),
		reading.Angle,
		reading.Daylight,
	)
	if err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}

	return nil
}

// Run returns the readings stored for runID in tick order.
func (s *SQLiteSink) Run(ctx context.Context, runID string) ([]tick.Reading, error) {
	rows, err := s.db.QueryContext(ctx, selectRun, runID)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	var readings []tick.Reading

	for rows.Next() {
		var (
			r    tick.Reading
			hour int
		)

		if err = rows.Scan(&r.Tick, &hour, &r.Angle, &r.Daylight); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}

		r.Hour = cycle.Hour(hour)
		readings = append(readings, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings: %w", err)
	}

	return readings, nil
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
