package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labterial/labterial/internal/store"
	"github.com/spf13/cobra"
)

var (
	addName     string
	addCategory string
	addModulus  float64
	addYield    float64
	addUltimate float64
	addPoisson  float64
)

var materialsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a material to the inventory",
	Long: `Add a material to the inventory. Properties are always entered in SI
units (MPa). Ultimate strength and Poisson ratio are optional; the
simulator falls back to conservative defaults when they are missing.

Example:
  labterial materials add --name "Ti-6Al-4V" --category metal \
      --modulus 113800 --yield 880 --ultimate 950 --poisson 0.342`,
	Run: runMaterialsAdd,
}

func init() {
	materialsCmd.AddCommand(materialsAddCmd)

	materialsAddCmd.Flags().StringVar(&addName, "name", "", "Material name [required]")
	materialsAddCmd.Flags().StringVar(&addCategory, "category", "metal", "Category: metal, polymer, ceramic, composite")
	materialsAddCmd.Flags().Float64Var(&addModulus, "modulus", 0, "Elastic modulus E in MPa [required]")
	materialsAddCmd.Flags().Float64Var(&addYield, "yield", 0, "Yield strength Sy in MPa [required]")
	materialsAddCmd.Flags().Float64Var(&addUltimate, "ultimate", 0, "Ultimate strength Su in MPa")
	materialsAddCmd.Flags().Float64Var(&addPoisson, "poisson", 0, "Poisson ratio")

	materialsAddCmd.MarkFlagRequired("name")
	materialsAddCmd.MarkFlagRequired("modulus")
	materialsAddCmd.MarkFlagRequired("yield")
}

func runMaterialsAdd(cmd *cobra.Command, args []string) {
	st, _, err := openStore()
	if err != nil {
		fail(err)
	}
	defer st.Close()

	m := store.Material{
		Name:           addName,
		Category:       addCategory,
		ElasticModulus: addModulus,
		YieldStrength:  addYield,
	}
	if cmd.Flags().Changed("ultimate") {
		m.UltimateStrength = sql.NullFloat64{Float64: addUltimate, Valid: true}
	}
	if cmd.Flags().Changed("poisson") {
		m.PoissonRatio = sql.NullFloat64{Float64: addPoisson, Valid: true}
	}

	if err := st.Insert(context.Background(), m); err != nil {
		fail(err)
	}
	fmt.Printf("Added %q to the inventory\n", addName)
}
