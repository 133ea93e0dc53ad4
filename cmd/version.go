package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/txlens/txlens/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("txlens %s (commit %s)\n", version.GetVersion(), version.GetCommit())
	},
}
