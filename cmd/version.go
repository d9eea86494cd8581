package cmd

import (
	"fmt"

	"github.com/labterial/labterial/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of labterial",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("labterial v%s\n", version.Version)
		fmt.Println("Virtual Materials Testing Laboratory")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
