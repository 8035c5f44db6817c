package cmd

import (
	"fmt"
	"os"

	"asset-indexer/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "asset-indexer",
	Short: "Asset Indexer",
	Long: `Asset Indexer walks an unpacked game asset tree and builds a searchable
index of items and crafting blueprints. The index can be queried from the
command line, served over HTTP or published to S3 compatible storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Debug level picks the development preset for readable timestamps.
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

func init() {
	RootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", outputJSON, "Output format (json, yaml)")
}
