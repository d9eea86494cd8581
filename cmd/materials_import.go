package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var materialsImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk-import materials from a CSV file",
	Long: `Bulk-import materials from a CSV file.

The file must have a header row with at least the columns
name, category, elastic_modulus and yield_strength; the columns
ultimate_strength and poisson_ratio are optional. Column order does
not matter. Rows whose name already exists in the inventory are
skipped; a malformed row aborts the import.

Example:
  labterial materials import handbook.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runMaterialsImport,
}

func init() {
	materialsCmd.AddCommand(materialsImportCmd)
}

func runMaterialsImport(cmd *cobra.Command, args []string) {
	st, _, err := openStore()
	if err != nil {
		fail(err)
	}
	defer st.Close()

	f, err := os.Open(args[0])
	if err != nil {
		fail(err)
	}
	defer f.Close()

	added, skipped, err := st.ImportCSV(context.Background(), f)
	if err != nil {
		fail(fmt.Errorf("import aborted after %d added, %d skipped: %w", added, skipped, err))
	}
	fmt.Printf("Imported %d material(s), skipped %d duplicate(s)\n", added, skipped)
}
