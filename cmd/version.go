package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the picksync version",
	GroupID: "system",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "picksync %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
