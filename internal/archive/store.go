// Package archive journals finalized transcript entries to a local SQLite
// database, one local session per assessment conversation. The running UI
// never reads from it; it exists so past runs survive backend resets and can
// be inspected offline.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/NishchayBhardwaj/English-Communication-System/internal/transcript"
)

// Store wraps the journal database.
type Store struct {
	db *sql.DB
}

// Row is one journaled transcript entry.
type Row struct {
	Seq       int
	Role      string
	Text      string
	Class     string
	CreatedAt time.Time
}

// DefaultPath returns the default journal location under the user's home.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".assess", "archive.sqlite")
}

const schema = `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		startedAt REAL NOT NULL,
		chatId TEXT,
		report TEXT
	);

	CREATE TABLE IF NOT EXISTS entries (
		sessionId TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		role TEXT NOT NULL,
		text TEXT NOT NULL,
		class TEXT,
		createdAt REAL NOT NULL,
		PRIMARY KEY (sessionId, seq)
	);
`

// Open opens (creating if needed) the journal at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create archive schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the journal.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginSession registers a new local session and returns its id.
func (s *Store) BeginSession() (string, error) {
	id := fmt.Sprintf("local-%d", time.Now().UnixNano())
	now := unixFloat(time.Now())

	if _, err := s.db.Exec(
		`INSERT INTO sessions (id, startedAt) VALUES (?, ?)`, id, now); err != nil {
		return "", fmt.Errorf("begin session: %w", err)
	}
	return id, nil
}

// AppendEntries journals entries for a session, numbering them from
// startSeq in the given order.
func (s *Store) AppendEntries(sessionID string, startSeq int, entries []transcript.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("append entries: %w", err)
	}
	defer tx.Rollback()

	now := unixFloat(time.Now())
	for i, e := range entries {
		if _, err := tx.Exec(
			`INSERT INTO entries (sessionId, seq, role, text, class, createdAt)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			sessionID, startSeq+i, string(e.Role), e.Text, e.Class, now); err != nil {
			return fmt.Errorf("append entry %d: %w", startSeq+i, err)
		}
	}
	return tx.Commit()
}

// SetReport records the session's latest report text.
func (s *Store) SetReport(sessionID, report string) error {
	if _, err := s.db.Exec(
		`UPDATE sessions SET report = ? WHERE id = ?`, report, sessionID); err != nil {
		return fmt.Errorf("set report: %w", err)
	}
	return nil
}

// SetChatID links a local session to its backend-persisted id.
func (s *Store) SetChatID(sessionID, chatID string) error {
	if _, err := s.db.Exec(
		`UPDATE sessions SET chatId = ? WHERE id = ?`, chatID, sessionID); err != nil {
		return fmt.Errorf("set chat id: %w", err)
	}
	return nil
}

// EntriesForSession returns a session's journaled entries in sequence order.
func (s *Store) EntriesForSession(sessionID string) ([]Row, error) {
	rows, err := s.db.Query(`
		SELECT seq, role, text, class, createdAt
		FROM entries
		WHERE sessionId = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var class sql.NullString
		var createdAt float64
		if err := rows.Scan(&r.Seq, &r.Role, &r.Text, &class, &createdAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if class.Valid {
			r.Class = class.String
		}
		r.CreatedAt = timeFromUnix(createdAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func unixFloat(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
