// Package store persists material property records in a local SQLite
// database and serves them to the simulation engine.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/labterial/labterial/internal/mechsim"
)

// ErrNotFound is returned when no material matches the requested name.
var ErrNotFound = errors.New("store: material not found")

// Material is one row of the materials table. UltimateStrength and
// PoissonRatio are nullable: many handbook entries carry neither.
type Material struct {
	ID               int64
	Name             string
	Category         string
	ElasticModulus   float64
	YieldStrength    float64
	UltimateStrength sql.NullFloat64
	PoissonRatio     sql.NullFloat64
}

// Properties converts the record into the engine's input type. Null
// columns become zero values, which the engine defaults internally.
func (m Material) Properties() mechsim.MaterialProperties {
	return mechsim.MaterialProperties{
		Name:             m.Name,
		Category:         mechsim.ParseCategory(m.Category),
		ElasticModulus:   m.ElasticModulus,
		YieldStrength:    m.YieldStrength,
		UltimateStrength: m.UltimateStrength.Float64,
		PoissonRatio:     m.PoissonRatio.Float64,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS materials (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	category TEXT NOT NULL,
	elastic_modulus REAL NOT NULL,
	yield_strength REAL NOT NULL,
	ultimate_strength REAL,
	poisson_ratio REAL
);`

// seedMaterials are inserted on first open so a fresh install has
// something to simulate.
var seedMaterials = []Material{
	{
		Name: "Steel A36", Category: "Metal",
		ElasticModulus: 200000, YieldStrength: 250,
		UltimateStrength: sql.NullFloat64{Float64: 400, Valid: true},
		PoissonRatio:     sql.NullFloat64{Float64: 0.26, Valid: true},
	},
	{
		Name: "Aluminum 6061", Category: "Metal",
		ElasticModulus: 68900, YieldStrength: 276,
		UltimateStrength: sql.NullFloat64{Float64: 310, Valid: true},
		PoissonRatio:     sql.NullFloat64{Float64: 0.33, Valid: true},
	},
}

// Store wraps the SQLite database holding the material inventory.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens (creating if needed) the material database at path,
// initializes the schema, and seeds reference materials into an empty
// table. The parent directory is created if missing.
func Open(path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite works best with a single writer

	s := &Store{db: db, log: log}
	if err := s.init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM materials`).Scan(&count); err != nil {
		return fmt.Errorf("counting materials: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, m := range seedMaterials {
		if err := s.Insert(ctx, m); err != nil {
			return fmt.Errorf("seeding materials: %w", err)
		}
	}
	s.log.Debug("seeded material database", "count", len(seedMaterials))
	return nil
}

// All returns every material, ordered by name.
func (s *Store) All(ctx context.Context) ([]Material, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, elastic_modulus, yield_strength, ultimate_strength, poisson_ratio
		FROM materials ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()

	var out []Material
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.ElasticModulus,
			&m.YieldStrength, &m.UltimateStrength, &m.PoissonRatio); err != nil {
			return nil, fmt.Errorf("scanning material: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Get returns the material with the given name.
func (s *Store) Get(ctx context.Context, name string) (Material, error) {
	var m Material
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, elastic_modulus, yield_strength, ultimate_strength, poisson_ratio
		FROM materials WHERE name = ?`, name).
		Scan(&m.ID, &m.Name, &m.Category, &m.ElasticModulus,
			&m.YieldStrength, &m.UltimateStrength, &m.PoissonRatio)
	if errors.Is(err, sql.ErrNoRows) {
		return Material{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Material{}, fmt.Errorf("looking up %q: %w", name, err)
	}
	return m, nil
}

// Insert adds one material. Names are unique; inserting a duplicate
// fails with the driver's constraint error.
func (s *Store) Insert(ctx context.Context, m Material) error {
	if m.Name == "" {
		return fmt.Errorf("store: material name is required")
	}
	if m.ElasticModulus <= 0 || m.YieldStrength <= 0 {
		return fmt.Errorf("store: %q: elastic modulus and yield strength must be positive", m.Name)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO materials (name, category, elastic_modulus, yield_strength, ultimate_strength, poisson_ratio)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.Name, m.Category, m.ElasticModulus, m.YieldStrength, m.UltimateStrength, m.PoissonRatio)
	if err != nil {
		return fmt.Errorf("inserting %q: %w", m.Name, err)
	}
	return nil
}
