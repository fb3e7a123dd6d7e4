package cmd

import (
	"fmt"

	"github.com/ddlshape/ddlshape/internal/version"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the version number of ddlshape",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ddlshape v%s@%s %s %s\n", version.App(), version.GitCommit, version.Platform(), version.BuildDate)
	},
}
