package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var materialsUnits string

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Manage the material inventory",
	Long: `Manage the material inventory backing the simulator.

Materials are stored in a local SQLite database (~/.labterial by
default). A fresh database is seeded with a couple of common handbook
entries so the simulator works out of the box.`,
}

var materialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored materials",
	Run:   runMaterialsList,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.AddCommand(materialsListCmd)

	materialsCmd.PersistentFlags().StringVar(&materialsUnits, "units", "", "Display units: si or imperial (default from config)")
}

func runMaterialsList(cmd *cobra.Command, args []string) {
	st, cfg, err := openStore()
	if err != nil {
		fail(err)
	}
	defer st.Close()

	sys, err := resolveUnits(materialsUnits, cfg)
	if err != nil {
		fail(err)
	}

	mats, err := st.All(context.Background())
	if err != nil {
		fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name\tCategory\tE (%s)\tSy (%s)\tSu (%s)\tν\n",
		sys.StressLabel(), sys.StressLabel(), sys.StressLabel())
	for _, m := range mats {
		su, nu := "-", "-"
		if m.UltimateStrength.Valid {
			su = fmt.Sprintf("%.1f", sys.Stress(m.UltimateStrength.Float64))
		}
		if m.PoissonRatio.Valid {
			nu = fmt.Sprintf("%.2f", m.PoissonRatio.Float64)
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.1f\t%s\t%s\n",
			m.Name, m.Category, sys.Stress(m.ElasticModulus), sys.Stress(m.YieldStrength), su, nu)
	}
	w.Flush()
	fmt.Printf("\n%d material(s)\n", len(mats))
}
