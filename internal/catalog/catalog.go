// Package catalog persists named, solved curves in SQLite so hosts can load
// constants without running the solver.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/wobbly/internal/harmonic"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when no curve has the requested name.
var ErrNotFound = errors.New("catalog: curve not found")

// Entry is a named curve with its request and solved constants.
type Entry struct {
	Name      string    `json:"name"`
	Wobbles   float64   `json:"wobbles"`
	Overshoot float64   `json:"overshoot"`
	Reverse   bool      `json:"reverse"`
	Omega     float64   `json:"omega"`
	Gamma     float64   `json:"gamma"`
	Policy    string    `json:"policy"`
	CreatedAt time.Time `json:"created_at"`
}

// Curve rebuilds the evaluator for the entry.
func (e Entry) Curve() harmonic.Curve {
	return harmonic.Curve{
		Params:  harmonic.Params{Omega: e.Omega, Gamma: e.Gamma},
		Reverse: e.Reverse,
	}
}

// Catalog wraps SQLite access for named curves.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the database and applies migrations.
func Open(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	c := &Catalog{db: db}
	if err := c.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return c, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS curves (
			name TEXT PRIMARY KEY,
			wobbles REAL NOT NULL,
			overshoot REAL NOT NULL,
			reverse INTEGER NOT NULL,
			omega REAL NOT NULL,
			gamma REAL NOT NULL,
			policy TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_curves_request ON curves(wobbles, overshoot);`,
	}
	for _, stmt := range stmts {
		if _, err := c.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Put inserts or replaces the entry with the same name.
func (c *Catalog) Put(ctx context.Context, e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("catalog: entry name is empty")
	}
	if !(harmonic.Params{Omega: e.Omega, Gamma: e.Gamma}).Valid() {
		return fmt.Errorf("catalog: entry %q has invalid constants (omega=%g, gamma=%g)", e.Name, e.Omega, e.Gamma)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO curves (name, wobbles, overshoot, reverse, omega, gamma, policy, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Wobbles, e.Overshoot, e.Reverse, e.Omega, e.Gamma, e.Policy,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Get returns the named entry or ErrNotFound.
func (c *Catalog) Get(ctx context.Context, name string) (Entry, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT name, wobbles, overshoot, reverse, omega, gamma, policy, created_at
		 FROM curves WHERE name = ?`, name)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return e, err
}

// List returns all entries ordered by name.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT name, wobbles, overshoot, reverse, omega, gamma, policy, created_at
		 FROM curves ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the named entry. Deleting a missing entry returns ErrNotFound.
func (c *Catalog) Delete(ctx context.Context, name string) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM curves WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		e       Entry
		created string
	)
	if err := s.Scan(&e.Name, &e.Wobbles, &e.Overshoot, &e.Reverse, &e.Omega, &e.Gamma, &e.Policy, &created); err != nil {
		return Entry{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at: %w", err)
	}
	e.CreatedAt = t
	return e, nil
}
