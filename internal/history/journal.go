package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// dsnEscaper percent-encodes the characters that would otherwise end the
// file part of a SQLite URI filename.
var dsnEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// Entry is one journaled rename.
type Entry struct {
	ID        int64
	RunID     string
	Source    string
	Target    string
	Bank      string
	Account   string
	StartDate string
	EndDate   string
	RenamedAt time.Time
}

// Journal appends rename records to a SQLite database. Every Journal gets a
// fresh run id, stamped on each row it records.
type Journal struct {
	db    *sql.DB
	path  string
	runID string
}

// Open opens (creating if needed) the journal database at path and applies
// the schema.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_journal_mode=WAL", dsnEscaper.Replace(path))
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Journal{db: db, path: path, runID: uuid.NewString()}, nil
}

// RunID returns the id stamped on rows recorded through this Journal.
func (j *Journal) RunID() string { return j.runID }

// Path returns the database file path.
func (j *Journal) Path() string { return j.path }

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record inserts one rename. e.RunID and e.RenamedAt are filled in by the
// journal when empty.
func (j *Journal) Record(e Entry) error {
	if e.RunID == "" {
		e.RunID = j.runID
	}
	if e.RenamedAt.IsZero() {
		e.RenamedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO renames (run_id, source, target, bank, account, start_date, end_date, renamed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := j.db.Exec(query,
		e.RunID,
		e.Source,
		e.Target,
		e.Bank,
		e.Account,
		e.StartDate,
		e.EndDate,
		e.RenamedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record rename: %w", err)
	}
	return nil
}

// Count returns the total number of journaled renames.
func (j *Journal) Count() (int, error) {
	var n int
	if err := j.db.QueryRow(`SELECT COUNT(*) FROM renames`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count renames: %w", err)
	}
	return n, nil
}

// ByRun returns the renames recorded under runID, oldest first.
func (j *Journal) ByRun(runID string) ([]Entry, error) {
	query := `
		SELECT id, run_id, source, target, bank, account, start_date, end_date, renamed_at
		FROM renames
		WHERE run_id = ?
		ORDER BY id
	`
	rows, err := j.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query renames: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Source, &e.Target, &e.Bank, &e.Account,
			&e.StartDate, &e.EndDate, &e.RenamedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rename: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate renames: %w", err)
	}
	return entries, nil
}
