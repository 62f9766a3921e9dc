// Package results persists policy-vs-greedy comparison rows to SQLite so
// batch runs can be compared across invocations. Persistence is optional;
// the pipeline never depends on it.
package results

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Comparison is one solved policy's simulated outcome next to the greedy
// baseline over the same order stream.
type Comparison struct {
	Algorithm      string
	Discount       float64
	States         int
	PolicyDistance float64
	GreedyDistance float64
	GreedyNoops    int
	CreatedAt      time.Time
}

// Store wraps the SQLite database holding comparison history.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database and initializes the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS comparisons (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		algorithm       TEXT NOT NULL,
		discount        REAL NOT NULL,
		states          INTEGER NOT NULL,
		policy_distance REAL NOT NULL,
		greedy_distance REAL NOT NULL,
		greedy_noops    INTEGER NOT NULL,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_comparisons_algo ON comparisons(algorithm, discount);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record appends one comparison row.
func (s *Store) Record(c Comparison) error {
	_, err := s.db.Exec(
		`INSERT INTO comparisons (algorithm, discount, states, policy_distance, greedy_distance, greedy_noops, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.Algorithm, c.Discount, c.States, c.PolicyDistance, c.GreedyDistance, c.GreedyNoops,
		c.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record comparison: %w", err)
	}
	return nil
}

// Comparisons returns all recorded rows, oldest first.
func (s *Store) Comparisons() ([]Comparison, error) {
	rows, err := s.db.Query(
		`SELECT algorithm, discount, states, policy_distance, greedy_distance, greedy_noops, created_at
		 FROM comparisons ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query comparisons: %w", err)
	}
	defer rows.Close()

	var out []Comparison
	for rows.Next() {
		var c Comparison
		var created string
		if err := rows.Scan(&c.Algorithm, &c.Discount, &c.States, &c.PolicyDistance, &c.GreedyDistance, &c.GreedyNoops, &created); err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
