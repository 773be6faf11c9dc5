// Package history records robocheck runs in a SQLite database.
// Each run is stored as a JSON document keyed by a generated ID.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/chazu/robocheck/pkg/report"
)

// ErrRunNotFound indicates the requested run doesn't exist in the database.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded check of a file.
type Run struct {
	ID        string        `json:"-"`          // Run ID (not serialized, used as DB key)
	CreatedAt string        `json:"created_at"` // RFC3339 timestamp
	Report    report.Report `json:"report"`
}

// OK returns true if the recorded run found no problems.
func (r *Run) OK() bool {
	return r.Report.OK()
}

// Store manages recorded runs.
type Store struct {
	db      *sql.DB
	dbPath  string
	cache   map[string]*Run
	cacheMu sync.RWMutex
	now     func() time.Time
}

// Config holds store configuration options.
type Config struct {
	DBPath string // Path to the database (defaults to ~/.robocheck/history.db)
}

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	data JSON NOT NULL
)`

// Open creates a Store with the given configuration, creating the database
// and its table if needed. If cfg is nil, defaults are used.
func Open(cfg *Config) (*Store, error) {
	s := &Store{
		cache: make(map[string]*Run),
		now:   time.Now,
	}

	if cfg != nil && cfg.DBPath != "" {
		s.dbPath = cfg.DBPath
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home dir: %w", err)
		}
		s.dbPath = filepath.Join(home, ".robocheck", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database dir: %w", err)
	}

	db, err := sql.Open("sqlite3", s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s.db = db

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating runs table: %w", err)
	}

	return s, nil
}

// Path returns the database file.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection. Later calls fail with the
// database's error.
func (s *Store) Close() error {
	s.cacheMu.Lock()
	s.cache = make(map[string]*Run)
	s.cacheMu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores rep as a new run and returns its ID.
func (s *Store) Record(rep *report.Report) (string, error) {
	run := &Run{
		ID:        uuid.New().String(),
		CreatedAt: s.now().UTC().Format(time.RFC3339),
		Report:    *rep,
	}

	data, err := json.Marshal(run)
	if err != nil {
		return "", fmt.Errorf("marshaling run: %w", err)
	}
	_, err = s.db.Exec("INSERT INTO runs (id, data) VALUES (?, json(?))", run.ID, string(data))
	if err != nil {
		return "", fmt.Errorf("saving run: %w", err)
	}

	s.cacheMu.Lock()
	s.cache[run.ID] = run
	s.cacheMu.Unlock()
	return run.ID, nil
}

// Load returns a run from cache or database.
func (s *Store) Load(id string) (*Run, error) {
	s.cacheMu.RLock()
	if run, ok := s.cache[id]; ok {
		s.cacheMu.RUnlock()
		return run, nil
	}
	s.cacheMu.RUnlock()

	var data string
	err := s.db.QueryRow("SELECT data FROM runs WHERE id = ?", id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("querying run: %w", err)
	}

	run, err := decode(id, data)
	if err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	s.cache[id] = run
	s.cacheMu.Unlock()
	return run, nil
}

// List returns the most recent runs, newest first. A limit <= 0 returns
// every run.
func (s *Store) List(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		"SELECT id, data FROM runs ORDER BY rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return scanRuns(rows)
}

// FindByFile returns every run of the named file, newest first.
func (s *Store) FindByFile(file string) ([]*Run, error) {
	rows, err := s.db.Query(
		"SELECT id, data FROM runs WHERE json_extract(data, '$.report.file') = ? ORDER BY rowid DESC",
		file,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs by file: %w", err)
	}
	return scanRuns(rows)
}

// Delete removes a run from the database and cache.
func (s *Store) Delete(id string) error {
	s.cacheMu.Lock()
	delete(s.cache, id)
	s.cacheMu.Unlock()

	res, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrRunNotFound
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]*Run, error) {
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run, err := decode(id, data)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func decode(id, data string) (*Run, error) {
	var run Run
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("unmarshaling run %s: %w", id, err)
	}
	run.ID = id
	return &run, nil
}
