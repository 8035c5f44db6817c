package cmd

import (
	"asset-indexer/feature/index"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the index if it does not exist and show its size",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		s, err := a.openIndex(cmd.Context())
		if err != nil {
			return err
		}

		status, err := index.NewService(s, a.logg).Status(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), status)
	},
}

// rebuildCmd represents the index rebuild command
var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Drop the index and reindex every asset root",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		a.logg.Info("Rebuilding index", zap.String("assets", a.roots.Assets))
		stats, err := index.NewService(a.store(), a.logg).Rebuild(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), stats)
	},
}

func init() {
	indexCmd.AddCommand(rebuildCmd)
	RootCmd.AddCommand(indexCmd)
}
