// Package history keeps a local audit log of engine activity: every
// diagnostic submitted and every phase transition applied. The remote
// backend owns the truth; this log only powers the history command, so
// its write failures are logged and never fail the triggering operation.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS diagnostics (
	id TEXT PRIMARY KEY,
	user_id INTEGER NOT NULL,
	trail_id INTEGER NOT NULL,
	administracao INTEGER NOT NULL,
	tecnologia INTEGER NOT NULL,
	rh INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS transitions (
	id TEXT PRIMARY KEY,
	user_id INTEGER NOT NULL,
	trail_course_id INTEGER NOT NULL,
	from_status TEXT NOT NULL,
	to_status TEXT NOT NULL,
	at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_diagnostics_user ON diagnostics(user_id);
CREATE INDEX IF NOT EXISTS idx_transitions_user ON transitions(user_id);
`

// Store is the SQLite-backed history log.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open creates a Store at the given path, applying pragmas and creating
// the schema as needed.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if err := EnsureDir(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir histórico: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("criar schema do histórico: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultPath returns the default history database location under the
// user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolver diretório de configuração: %w", err)
	}
	path := filepath.Join(dir, "trilha", "history.db")
	return path, EnsureDir(path)
}

// EnsureDir creates the parent directory of path if missing.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
