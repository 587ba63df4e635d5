// Package journal keeps an audit log of mirror runs in a SQLite
// database. It is write-mostly: past runs are listed for inspection but
// never consulted to skip or diff downloads.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL DEFAULT '',
	total       INTEGER NOT NULL,
	succeeded   INTEGER NOT NULL DEFAULT 0,
	failed      INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS files (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id  INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	label   TEXT NOT NULL,
	url     TEXT NOT NULL,
	status  TEXT NOT NULL,
	reason  TEXT NOT NULL DEFAULT '',
	bytes   INTEGER NOT NULL DEFAULT 0
);
`

// Run is one recorded mirror run.
type Run struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	Total      int
	Succeeded  int
	Failed     int
}

// FileRecord is one recorded file outcome.
type FileRecord struct {
	RunID  int64
	Label  string
	URL    string
	Status string
	Reason string
	Bytes  int64
}

// File outcome statuses.
const (
	StatusOK   = "ok"
	StatusFail = "fail"
)

// Journal wraps the SQLite database holding run history.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open journal database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error: cannot initialize journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the underlying database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

// BeginRun inserts a run row and returns its id.
func (j *Journal) BeginRun(total int) (int64, error) {
	res, err := j.db.Exec(
		`INSERT INTO runs (started_at, total) VALUES (?, ?)`,
		time.Now().UTC().Format(time.RFC3339), total,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RecordFile appends one file outcome to a run.
func (j *Journal) RecordFile(rec FileRecord) error {
	_, err := j.db.Exec(
		`INSERT INTO files (run_id, label, url, status, reason, bytes) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Label, rec.URL, rec.Status, rec.Reason, rec.Bytes,
	)
	return err
}

// FinishRun closes a run row with its final tallies.
func (j *Journal) FinishRun(runID int64, succeeded, failed int) error {
	_, err := j.db.Exec(
		`UPDATE runs SET finished_at = ?, succeeded = ?, failed = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), succeeded, failed, runID,
	)
	return err
}

// ListRuns returns the most recent runs, newest first.
func (j *Journal) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := j.db.Query(
		`SELECT id, started_at, finished_at, total, succeeded, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r                     Run
			startedAt, finishedAt string
		)
		if err := rows.Scan(&r.ID, &startedAt, &finishedAt, &r.Total, &r.Succeeded, &r.Failed); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		if finishedAt != "" {
			r.FinishedAt, _ = time.Parse(time.RFC3339, finishedAt)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunFiles returns the file outcomes of one run, in insertion order.
func (j *Journal) RunFiles(runID int64) ([]FileRecord, error) {
	rows, err := j.db.Query(
		`SELECT run_id, label, url, status, reason, bytes
		 FROM files WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []FileRecord
	for rows.Next() {
		var rec FileRecord
		if err := rows.Scan(&rec.RunID, &rec.Label, &rec.URL, &rec.Status, &rec.Reason, &rec.Bytes); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Flush deletes all recorded runs and file outcomes.
func (j *Journal) Flush() error {
	if _, err := j.db.Exec(`DELETE FROM files`); err != nil {
		return err
	}
	_, err := j.db.Exec(`DELETE FROM runs`)
	return err
}
