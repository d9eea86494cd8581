// Package report renders material property tables and simulated curve
// data as CSV or LaTeX for inclusion in lab documents.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/labterial/labterial/internal/mechsim"
	"github.com/labterial/labterial/internal/store"
	"github.com/labterial/labterial/internal/units"
)

// Column identifiers for property tables, matching the store's schema
// names so CLI flags and CSV headers line up.
var propertyColumns = map[string]string{
	"name":              "Material",
	"category":          "Category",
	"elastic_modulus":   "Elastic Modulus (E)",
	"yield_strength":    "Yield Strength (Sy)",
	"ultimate_strength": "Ultimate Strength (Su)",
	"poisson_ratio":     "Poisson Ratio (ν)",
}

// stressColumns carry MPa values and get unit-converted for display.
var stressColumns = map[string]bool{
	"elastic_modulus":   true,
	"yield_strength":    true,
	"ultimate_strength": true,
}

// PropertyTable is a rendered selection of materials and columns.
type PropertyTable struct {
	Header []string
	Rows   [][]string
}

// BuildPropertyTable selects the named columns from the materials,
// converting stress-like values into the requested unit system.
// Unknown column names are rejected.
func BuildPropertyTable(mats []store.Material, columns []string, sys units.System) (PropertyTable, error) {
	if len(columns) == 0 {
		columns = []string{"name", "category", "elastic_modulus", "yield_strength"}
	}
	header := make([]string, len(columns))
	for i, col := range columns {
		label, ok := propertyColumns[col]
		if !ok {
			return PropertyTable{}, fmt.Errorf("report: unknown column %q", col)
		}
		if stressColumns[col] {
			label += " [" + sys.StressLabel() + "]"
		}
		header[i] = label
	}

	rows := make([][]string, 0, len(mats))
	for _, m := range mats {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = propertyCell(m, col, sys)
		}
		rows = append(rows, row)
	}
	return PropertyTable{Header: header, Rows: rows}, nil
}

func propertyCell(m store.Material, col string, sys units.System) string {
	switch col {
	case "name":
		return m.Name
	case "category":
		return m.Category
	case "elastic_modulus":
		return formatFloat(sys.Stress(m.ElasticModulus))
	case "yield_strength":
		return formatFloat(sys.Stress(m.YieldStrength))
	case "ultimate_strength":
		if !m.UltimateStrength.Valid {
			return ""
		}
		return formatFloat(sys.Stress(m.UltimateStrength.Float64))
	case "poisson_ratio":
		if !m.PoissonRatio.Valid {
			return ""
		}
		return formatFloat(m.PoissonRatio.Float64)
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteCSV renders the table as CSV.
func (t PropertyTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLaTeX renders the table as a LaTeX tabular suitable for pasting
// into a report or paper.
func (t PropertyTable) WriteLaTeX(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("\\begin{tabular}{" + strings.Repeat("l", len(t.Header)) + "}\n")
	sb.WriteString("\\hline\n")
	sb.WriteString(latexRow(t.Header))
	sb.WriteString("\\hline\n")
	for _, row := range t.Rows {
		sb.WriteString(latexRow(row))
	}
	sb.WriteString("\\hline\n")
	sb.WriteString("\\end{tabular}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func latexRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = latexEscape(c)
	}
	return strings.Join(escaped, " & ") + " \\\\\n"
}

var latexEscaper = strings.NewReplacer(
	"&", "\\&", "%", "\\%", "$", "\\$", "#", "\\#", "_", "\\_",
	"{", "\\{", "}", "\\}",
)

func latexEscape(s string) string {
	return latexEscaper.Replace(s)
}

// WriteCurveCSV exports a simulated curve: strain, stress and the
// percent-strain convenience column, unit-converted for display.
// Ruptured samples emit an empty stress cell.
func WriteCurveCSV(w io.Writer, c mechsim.Curve, mode mechsim.TestMode, sys units.System) error {
	strainLabel := "strain"
	percentLabel := "strain_percent"
	if mode == mechsim.Torsion {
		strainLabel = "angular_strain_rad"
		percentLabel = "angular_strain_rad"
	}

	cw := csv.NewWriter(w)
	header := []string{strainLabel, "stress_" + strings.ToLower(sys.StressLabel()), percentLabel}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing curve header: %w", err)
	}

	percent := c.StrainPercent(mode)
	for i, s := range c {
		stress := ""
		if !s.Ruptured {
			stress = strconv.FormatFloat(sys.Stress(s.Stress), 'g', 8, 64)
		}
		row := []string{
			strconv.FormatFloat(s.Strain, 'g', 8, 64),
			stress,
			strconv.FormatFloat(percent[i], 'g', 8, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing curve row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDerivedCSV exports a machine-frame curve (force/displacement,
// torque/angle or force/deflection) with the given axis labels.
func WriteDerivedCSV(w io.Writer, pts []mechsim.DerivedPoint, xLabel, yLabel string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{xLabel, yLabel}); err != nil {
		return fmt.Errorf("writing derived header: %w", err)
	}
	for _, p := range pts {
		y := ""
		if !p.Ruptured {
			y = strconv.FormatFloat(p.Y, 'g', 8, 64)
		}
		if err := cw.Write([]string{strconv.FormatFloat(p.X, 'g', 8, 64), y}); err != nil {
			return fmt.Errorf("writing derived row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
