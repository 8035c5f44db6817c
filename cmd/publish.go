package cmd

import (
	"fmt"

	"asset-indexer/core/database"
	"asset-indexer/core/storage"
	"asset-indexer/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// snapshotService bootstraps and returns the snapshot service with the index file path.
func snapshotService() (*app, *snapshot.Service, error) {
	a, err := setup()
	if err != nil {
		return nil, nil, err
	}
	if a.cfg.Database.Driver != database.DriverSQLite {
		a.close()
		return nil, nil, fmt.Errorf("snapshots need the %s driver, configured driver is %s", database.DriverSQLite, a.cfg.Database.Driver)
	}

	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		a.close()
		return nil, nil, err
	}
	return a, snapshot.NewService(client, a.cfg.Storage, a.logg), nil
}

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the sqlite index to object storage",
	Long:  `Builds the index if needed and uploads the sqlite file to the configured bucket under <prefix>/<file name>.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := snapshotService()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.openIndex(cmd.Context()); err != nil {
			return err
		}

		info, err := svc.Publish(cmd.Context(), a.cfg.Database.Name)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), info)
	},
}

// fetchCmd represents the publish fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Replace the local sqlite index with the published one",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := snapshotService()
		if err != nil {
			return err
		}
		// Release the file before it is swapped.
		a.close()

		n, err := svc.Fetch(cmd.Context(), a.cfg.Database.Name)
		if err != nil {
			return err
		}
		a.logg.Info("Index replaced", zap.String("file", a.cfg.Database.Name), zap.Int64("bytes", n))
		return nil
	},
}

func init() {
	publishCmd.AddCommand(fetchCmd)
	RootCmd.AddCommand(publishCmd)
}
