package history

import (
	"os"
	"sync"

	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/ports"
)

// LazyStore defers opening the SQLite ledger until a record is saved. Reads
// and clears against a ledger that was never written touch nothing on disk.
type LazyStore struct {
	path  string
	mu    sync.Mutex
	store *SQLiteStore
}

// NewLazyStore returns a store for path without opening it.
func NewLazyStore(path string) *LazyStore {
	return &LazyStore{path: path}
}

func (l *LazyStore) get(create bool) *SQLiteStore {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store == nil && (create || l.persisted()) {
		l.store = NewSQLiteStore(l.path)
	}
	return l.store
}

func (l *LazyStore) persisted() bool {
	for _, p := range []string{l.path, fallbackPath(l.path)} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

// Save implements ports.RunRecorder.
func (l *LazyStore) Save(record domain.RunRecord) error {
	return l.get(true).Save(record)
}

// Records returns the newest records first. limit <= 0 returns all.
func (l *LazyStore) Records(limit int) ([]domain.RunRecord, error) {
	store := l.get(false)
	if store == nil {
		return nil, nil
	}
	return store.Records(limit)
}

// Clear deletes all records.
func (l *LazyStore) Clear() error {
	store := l.get(false)
	if store == nil {
		return nil
	}
	return store.Clear()
}

// Path returns the backing store path.
func (l *LazyStore) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store == nil {
		return l.path
	}
	return l.store.Path()
}

// Close releases the database handle if one was opened.
func (l *LazyStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}

var _ ports.HistoryRepository = (*LazyStore)(nil)
