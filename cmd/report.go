package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labterial/labterial/internal/report"
	"github.com/labterial/labterial/internal/store"
	"github.com/spf13/cobra"
)

var (
	reportMaterials []string
	reportColumns   []string
	reportFormat    string
	reportUnits     string
	reportOut       string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a material property table",
	Long: `Export a property table for stored materials as CSV or LaTeX.

Without --material the table covers the whole inventory. Columns are
selected by their snake_case keys: name, category, elastic_modulus,
yield_strength, ultimate_strength, poisson_ratio.

Examples:
  # Full inventory as CSV on stdout
  labterial report

  # LaTeX table for two alloys, strengths only, in ksi
  labterial report -m "Steel A36" -m "Aluminum 6061" \
      --columns name,yield_strength,ultimate_strength \
      --format latex --units imperial -o table.tex`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringArrayVarP(&reportMaterials, "material", "m", nil, "Restrict the table to these materials (repeatable)")
	reportCmd.Flags().StringSliceVar(&reportColumns, "columns", nil, "Comma-separated property columns")
	reportCmd.Flags().StringVar(&reportFormat, "format", "csv", "Output format: csv or latex")
	reportCmd.Flags().StringVar(&reportUnits, "units", "", "Display units: si or imperial (default from config)")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "Write to file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) {
	st, cfg, err := openStore()
	if err != nil {
		fail(err)
	}
	defer st.Close()

	sys, err := resolveUnits(reportUnits, cfg)
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	var mats []store.Material
	if len(reportMaterials) == 0 {
		mats, err = st.All(ctx)
		if err != nil {
			fail(err)
		}
	} else {
		for _, name := range reportMaterials {
			m, err := st.Get(ctx, name)
			if err != nil {
				fail(err)
			}
			mats = append(mats, m)
		}
	}

	table, err := report.BuildPropertyTable(mats, reportColumns, sys)
	if err != nil {
		fail(err)
	}

	var out io.Writer = os.Stdout
	if reportOut != "" {
		f, err := os.Create(reportOut)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(reportFormat) {
	case "csv":
		err = table.WriteCSV(out)
	case "latex", "tex":
		err = table.WriteLaTeX(out)
	default:
		fail(fmt.Errorf("unknown report format %q (want csv or latex)", reportFormat))
	}
	if err != nil {
		fail(err)
	}
	if reportOut != "" {
		fmt.Printf("Report written to %s\n", reportOut)
	}
}
