package cmd

import (
	"asset-indexer/feature/catalog"
	"asset-indexer/feature/index/models"

	"github.com/spf13/cobra"
)

// blueprintsCmd represents the blueprints command
var blueprintsCmd = &cobra.Command{
	Use:   "blueprints",
	Short: "Query indexed blueprints",
}

var blueprintsListCmd = catalogCommand("list", "List blueprints, optionally filtered by category and name", cobra.NoArgs,
	func(cmd *cobra.Command, svc *catalog.Service, _ []string) (any, error) {
		if filtering(cmd) {
			return svc.FilterBlueprints(cmd.Context(), categoryFlag, nameFlag)
		}
		return svc.ListBlueprints(cmd.Context())
	})

var blueprintsCategoriesCmd = catalogCommand("categories", "List blueprint categories", cobra.NoArgs,
	func(cmd *cobra.Command, svc *catalog.Service, _ []string) (any, error) {
		return svc.BlueprintCategories(cmd.Context())
	})

func init() {
	blueprintsListCmd.Flags().StringVarP(&categoryFlag, "category", "c", models.AllCategories, "Exact category, "+models.AllCategories+" for any")
	blueprintsListCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Name substring")

	blueprintsCmd.AddCommand(blueprintsListCmd, blueprintsCategoriesCmd)
	RootCmd.AddCommand(blueprintsCmd)
}
