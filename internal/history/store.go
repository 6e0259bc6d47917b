// Package history provides a SQLite-backed record of dispatched alerts.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Alert is one dispatched alert.
type Alert struct {
	ID      string
	FiredAt time.Time
	Source  string
	Muted   bool
}

// Store persists alert history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the history database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one dispatched alert.
func (s *Store) Record(a Alert) error {
	muted := 0
	if a.Muted {
		muted = 1
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO alerts (id, fired_at, source, muted) VALUES (?, ?, ?, ?)",
		a.ID, a.FiredAt.UTC().Format(time.RFC3339Nano), a.Source, muted,
	)
	return err
}

// Recent returns up to n alerts, newest first.
func (s *Store) Recent(n int) ([]Alert, error) {
	rows, err := s.db.Query(
		"SELECT id, fired_at, source, muted FROM alerts ORDER BY fired_at DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var alerts []Alert
	for rows.Next() {
		var (
			a       Alert
			firedAt string
			muted   int
		)
		if err := rows.Scan(&a.ID, &firedAt, &a.Source, &muted); err != nil {
			return nil, err
		}
		a.FiredAt, _ = time.Parse(time.RFC3339Nano, firedAt)
		a.Muted = muted != 0
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// Last returns the most recent alert, if any.
func (s *Store) Last() (Alert, bool, error) {
	alerts, err := s.Recent(1)
	if err != nil {
		return Alert{}, false, err
	}
	if len(alerts) == 0 {
		return Alert{}, false, nil
	}
	return alerts[0], true, nil
}

// Count returns the number of recorded alerts.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM alerts").Scan(&count)
	return count, err
}
