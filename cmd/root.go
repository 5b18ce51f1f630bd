package cmd

import (
	"fmt"
	"os"

	"parcel-recon/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "parcel-recon",
	Short: "Property Data Reconciliation Service",
	Long: `Parcel Recon compares MLS listing extracts against county CAMA
assessment extracts, classifies every parcel, and produces downloadable
mismatch reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format plus "debug" level gives ISO8601 timestamps
		// (DevConfig) instead of Epoch (ProdConfig), which reads better
		// from a CLI.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
