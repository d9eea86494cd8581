package cmd

import (
	"fmt"
	"os"

	"github.com/labterial/labterial/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labterial",
	Short: "Virtual Materials Testing Laboratory",
	Long: `labterial - Virtual Materials Testing Laboratory

A CLI tool that simulates destructive mechanical tests on engineering
materials from their handbook properties (E, Sy, Su, ν).

Supported tests:
  - Tension (with necking and polymer cold drawing)
  - Compression (unbounded hardening, no fracture)
  - Torsion (shear quantities, torque-angle curves)
  - Flexion (three-point bending, force-deflection curves)

Materials live in a local SQLite inventory seeded with reference
metals; bulk import from CSV is supported.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   labterial v%-45s║\n", version.Version)
		fmt.Println("  ║   Virtual Materials Testing Laboratory                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Simulate tension, compression, torsion and flexion tests")
		fmt.Println("  from coarse material properties.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Phenomenological stress-strain curve synthesis")
		fmt.Println("    • Ductile/brittle branching per material family")
		fmt.Println("    • Torque-angle and force-deflection conversion")
		fmt.Println("    • Local material inventory with CSV import")
		fmt.Println("    • ASCII and PNG curve plots, CSV/LaTeX reports")
		fmt.Println()
		fmt.Println("  Use 'labterial --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
