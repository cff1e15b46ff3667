package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/ports"
)

// SQLiteStore persists run records in a SQLite database.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path. When SQLite cannot
// be opened the store falls back to a jsonl file beside it.
func NewSQLiteStore(path string) *SQLiteStore {
	fallback := NewFileStore(fallbackPath(path))
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path, fallback: fallback}
	}
	store := &SQLiteStore{db: db, path: path, fallback: fallback}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path, fallback: fallback}
	}
	return store
}

func fallbackPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl"
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		kind TEXT,
		timestamp TEXT,
		target TEXT,
		passed INTEGER,
		total INTEGER,
		failures TEXT
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.RunRecord) error {
	if s.db == nil {
		return s.fallback.Save(record)
	}
	failures, err := json.Marshal(record.Failures)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(`INSERT INTO runs
		(id, kind, timestamp, target, passed, total, failures)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		string(record.Kind),
		record.Timestamp.UTC().Format(domain.TimestampFormat),
		record.Target,
		record.Passed,
		record.Total,
		string(failures),
	)
	return err
}

// Records returns the newest records first. limit <= 0 returns all.
func (s *SQLiteStore) Records(limit int) ([]domain.RunRecord, error) {
	if s.db == nil {
		return s.fallback.Records(limit)
	}
	query := "SELECT id, kind, timestamp, target, passed, total, failures FROM runs ORDER BY datetime(timestamp) DESC, rowid DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var kind, ts, failures string
		if err := rows.Scan(&rec.ID, &kind, &ts, &rec.Target, &rec.Passed, &rec.Total, &failures); err != nil {
			return nil, err
		}
		rec.Kind = domain.RunKind(kind)
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		_ = json.Unmarshal([]byte(failures), &rec.Failures)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all records.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	_, err := s.db.Exec("DELETE FROM runs")
	return err
}

// Path returns the backing store path.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return s.fallback.Path()
	}
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
