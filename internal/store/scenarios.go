// Package store provides a SQLite-backed library of named scenarios.
// Only input documents are stored; results are recomputed on every run.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/theirongolddev/creditsim/internal/export"
	"github.com/theirongolddev/creditsim/internal/pipeline"
)

var (
	// ErrNotFound is returned when no scenario has the requested name.
	ErrNotFound = errors.New("scenario not found")
	// ErrEmptyName is returned when saving a scenario without a name.
	ErrEmptyName = errors.New("scenario name is empty")
)

// Scenario is a named, saved input document.
type Scenario struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Document  export.Document `json:"document"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Store provides SQLite-backed scenario storage.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores doc under name, replacing any scenario with the same name.
// The id and creation time of a replaced scenario are kept.
func (s *Store) Save(ctx context.Context, name string, doc export.Document) (Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Scenario{}, ErrEmptyName
	}

	// non-numeric bands cannot be encoded and would be dropped on every run anyway
	doc.Bands = pipeline.ValidateBands(doc.Bands)

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return Scenario{}, fmt.Errorf("encoding scenario %q: %w", name, err)
	}

	now := s.now().UTC().Format(time.RFC3339Nano)
	advanced := 0
	if doc.AdvancedMode {
		advanced = 1
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO scenarios
		(id, name, starting_balance, apr, months, band_count, advanced_mode, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			starting_balance = excluded.starting_balance,
			apr              = excluded.apr,
			months           = excluded.months,
			band_count       = excluded.band_count,
			advanced_mode    = excluded.advanced_mode,
			document         = excluded.document,
			updated_at       = excluded.updated_at`,
		uuid.NewString(), name, doc.StartingBalance, doc.APR, doc.Months, len(doc.Bands),
		advanced, buf.String(), now, now,
	)
	if err != nil {
		return Scenario{}, fmt.Errorf("saving scenario %q: %w", name, err)
	}

	return s.Get(ctx, name)
}

// Get returns the scenario called name.
func (s *Store) Get(ctx context.Context, name string) (Scenario, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, document, created_at, updated_at
		FROM scenarios WHERE name = ?`, strings.TrimSpace(name))

	sc, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Scenario{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("loading scenario %q: %w", name, err)
	}
	return sc, nil
}

// List returns every scenario ordered by name.
func (s *Store) List(ctx context.Context) ([]Scenario, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, document, created_at, updated_at
		FROM scenarios ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// Delete removes the scenario called name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM scenarios WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("deleting scenario %q: %w", name, err)
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

// Count returns the number of stored scenarios.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scenarios").Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScenario(sc scanner) (Scenario, error) {
	var (
		out                  Scenario
		doc                  string
		createdAt, updatedAt string
	)
	if err := sc.Scan(&out.ID, &out.Name, &doc, &createdAt, &updatedAt); err != nil {
		return Scenario{}, err
	}

	d, err := export.Decode(strings.NewReader(doc))
	if err != nil {
		return Scenario{}, fmt.Errorf("decoding scenario %q: %w", out.Name, err)
	}
	out.Document = d
	out.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	out.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return out, nil
}
