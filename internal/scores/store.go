package scores

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"       // Postgres driver (Supabase-style DATABASE_URL).
	_ "modernc.org/sqlite"      // SQLite driver for the local fallback.
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know about.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Store persists leaderboard entries. Backed by Postgres when a DATABASE_URL
// is configured, otherwise by a local SQLite file.
type Store struct {
	db *sqlx.DB
}

// OpenStore connects to the leaderboard database and applies migrations.
func OpenStore(databaseURL, sqlitePath string) (*Store, error) {
	var db *sqlx.DB
	var err error
	if databaseURL != "" {
		db, err = sqlx.Connect("postgres", databaseURL)
	} else {
		if mkerr := os.MkdirAll(filepath.Dir(sqlitePath), 0o755); mkerr != nil {
			return nil, mkerr
		}
		db, err = sqlx.Connect("sqlite", sqlitePath)
	}
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	id := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.db.DriverName() == "postgres" {
		id = "BIGSERIAL PRIMARY KEY"
	}
	stmt := `CREATE TABLE IF NOT EXISTS scores (
		id ` + id + `,
		username TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL,
		accuracy INTEGER NOT NULL,
		verb_type TEXT NOT NULL,
		total_attempts INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);`
	if _, err := s.db.Exec(stmt); err != nil {
		return err
	}
	_, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score);`)
	return err
}

// ListTop returns the highest n scores, descending. Ties break on recency.
func (s *Store) ListTop(ctx context.Context, n int) ([]Score, error) {
	query := s.db.Rebind(`SELECT id, username, email, score, accuracy, verb_type, total_attempts, created_at
		FROM scores
		ORDER BY score DESC, created_at DESC
		LIMIT ?`)
	var out []Score
	if err := s.db.SelectContext(ctx, &out, query, n); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert validates and stores a submission.
func (s *Store) Insert(ctx context.Context, n NewScore) error {
	if err := n.Validate(); err != nil {
		return err
	}
	query := s.db.Rebind(`INSERT INTO scores (username, email, score, accuracy, verb_type, total_attempts, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := s.db.ExecContext(ctx, query,
		strings.TrimSpace(n.Username),
		strings.TrimSpace(n.Email),
		n.Score,
		n.Accuracy,
		n.VerbType,
		n.TotalAttempts,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Displaced returns the best existing entry strictly below newScore whose
// owner left an e-mail, i.e. the player pushed down by the new submission.
func (s *Store) Displaced(ctx context.Context, newScore int) (Score, bool, error) {
	query := s.db.Rebind(`SELECT id, username, email, score, accuracy, verb_type, total_attempts, created_at
		FROM scores
		WHERE score < ? AND email != ''
		ORDER BY score DESC, created_at DESC
		LIMIT 1`)
	var out []Score
	if err := s.db.SelectContext(ctx, &out, query, newScore); err != nil {
		return Score{}, false, err
	}
	if len(out) == 0 {
		return Score{}, false, nil
	}
	return out[0], true, nil
}
