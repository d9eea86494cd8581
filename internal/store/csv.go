package store

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Columns a material CSV must carry. Optional columns may be absent or
// left empty per row.
var (
	requiredColumns = []string{"name", "category", "elastic_modulus", "yield_strength"}
	optionalColumns = []string{"ultimate_strength", "poisson_ratio"}
)

// ImportCSV bulk-loads materials from a headered CSV stream. Rows whose
// name already exists are skipped, not overwritten; a malformed row
// aborts the import with the counts accumulated so far.
func (s *Store) ImportCSV(ctx context.Context, r io.Reader) (added, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("reading CSV header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return 0, 0, fmt.Errorf("store: CSV missing required column %q", col)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return added, skipped, fmt.Errorf("reading CSV: %w", err)
		}
		line++

		m, err := materialFromRecord(record, idx)
		if err != nil {
			return added, skipped, fmt.Errorf("line %d: %w", line, err)
		}

		exists, err := s.exists(ctx, m.Name)
		if err != nil {
			return added, skipped, err
		}
		if exists {
			skipped++
			s.log.Debug("skipping duplicate material", "name", m.Name)
			continue
		}
		if err := s.Insert(ctx, m); err != nil {
			return added, skipped, err
		}
		added++
	}
	s.log.Info("imported materials", "added", added, "skipped", skipped)
	return added, skipped, nil
}

func (s *Store) exists(ctx context.Context, name string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM materials WHERE name = ?`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking for %q: %w", name, err)
	}
	return true, nil
}

func materialFromRecord(record []string, idx map[string]int) (Material, error) {
	field := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	m := Material{Name: field("name"), Category: field("category")}
	if m.Name == "" {
		return Material{}, fmt.Errorf("empty material name")
	}

	var err error
	if m.ElasticModulus, err = strconv.ParseFloat(field("elastic_modulus"), 64); err != nil {
		return Material{}, fmt.Errorf("bad elastic_modulus: %w", err)
	}
	if m.YieldStrength, err = strconv.ParseFloat(field("yield_strength"), 64); err != nil {
		return Material{}, fmt.Errorf("bad yield_strength: %w", err)
	}

	if v := field("ultimate_strength"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Material{}, fmt.Errorf("bad ultimate_strength: %w", err)
		}
		m.UltimateStrength = sql.NullFloat64{Float64: f, Valid: true}
	}
	if v := field("poisson_ratio"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Material{}, fmt.Errorf("bad poisson_ratio: %w", err)
		}
		m.PoissonRatio = sql.NullFloat64{Float64: f, Valid: true}
	}
	return m, nil
}
