package cmd

import (
	"fmt"
	"os"

	"github.com/ddlshape/ddlshape/internal/logger"
	"github.com/ddlshape/ddlshape/internal/version"
	"github.com/spf13/cobra"
)

var Debug bool

var RootCmd = &cobra.Command{
	Use:   "ddlshape",
	Short: "Reconcile parsed DDL statement streams into canonical entities",
	Long: fmt.Sprintf(`ddlshape folds an ordered stream of parsed DDL statement records
(CREATE TABLE, CREATE INDEX, ALTER TABLE, ...) into a final set of
dialect-shaped entities.

Version: %s@%s %s %s

Commands:
  format   Reconcile statement-record files into entity JSON
  version  Show version information

Use "ddlshape [command] --help" for more information about a command.`,
		version.App(), version.GitCommit, version.Platform(), version.BuildDate),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(Debug)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug logging")
	RootCmd.AddCommand(FormatCmd)
	RootCmd.AddCommand(VersionCmd)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
