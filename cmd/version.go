package cmd

import (
	"github.com/d6e/fanboi/internal/ui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fanboi",
	Long:  `All software has versions. This is fanboi's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("1.0.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
