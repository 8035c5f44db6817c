package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"asset-indexer/feature/catalog"
	"asset-indexer/feature/index/models"

	"github.com/spf13/cobra"
)

var (
	categoryFlag string
	nameFlag     string
)

// withCatalog bootstraps, opens the index and runs fn against a catalog.
func withCatalog(ctx context.Context, fn func(*catalog.Service) (any, error)) (any, error) {
	a, err := setup()
	if err != nil {
		return nil, err
	}
	defer a.close()

	if _, err := a.openIndex(ctx); err != nil {
		return nil, err
	}
	return fn(catalog.NewService(a.db, a.roots, a.logg))
}

// catalogCommand builds a subcommand printing the result of fn as JSON.
func catalogCommand(use, short string, args cobra.PositionalArgs, fn func(*cobra.Command, *catalog.Service, []string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, argv []string) error {
			out, err := withCatalog(cmd.Context(), func(svc *catalog.Service) (any, error) {
				return fn(cmd, svc, argv)
			})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), out)
		},
	}
}

// filtering reports whether a list command was asked to filter.
func filtering(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("category") || cmd.Flags().Changed("name")
}

// parseSlot reads "name" or "name=count".
func parseSlot(arg string) (catalog.Slot, error) {
	name, count, ok := strings.Cut(arg, "=")
	if !ok {
		return catalog.Slot{Name: name, Count: 1}, nil
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return catalog.Slot{}, fmt.Errorf("invalid slot count %q: %w", arg, err)
	}
	return catalog.Slot{Name: name, Count: n}, nil
}

// itemsCmd represents the items command
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Query indexed items",
}

var itemsListCmd = catalogCommand("list", "List items, optionally filtered by category and name", cobra.NoArgs,
	func(cmd *cobra.Command, svc *catalog.Service, _ []string) (any, error) {
		if filtering(cmd) {
			return svc.FilterItems(cmd.Context(), categoryFlag, nameFlag)
		}
		return svc.ListItems(cmd.Context())
	})

var itemsCategoriesCmd = catalogCommand("categories", "List item categories", cobra.NoArgs,
	func(cmd *cobra.Command, svc *catalog.Service, _ []string) (any, error) {
		return svc.ItemCategories(cmd.Context())
	})

var itemsShowCmd = catalogCommand("show <name>", "Show an item with its asset data", cobra.ExactArgs(1),
	func(cmd *cobra.Command, svc *catalog.Service, args []string) (any, error) {
		detail, err := svc.GetItem(cmd.Context(), args[0])
		if err == nil && detail == nil {
			err = fmt.Errorf("item %q not found", args[0])
		}
		return detail, err
	})

var itemsIconCmd = catalogCommand("icon <name>", "Resolve an item's icon and region offset", cobra.ExactArgs(1),
	func(cmd *cobra.Command, svc *catalog.Service, args []string) (any, error) {
		icon, err := svc.ResolveIcon(cmd.Context(), args[0])
		if err == nil && icon == nil {
			err = fmt.Errorf("no icon found for %q", args[0])
		}
		return icon, err
	})

var itemsImageCmd = catalogCommand("image <name>", "Resolve an item's full-size image", cobra.ExactArgs(1),
	func(cmd *cobra.Command, svc *catalog.Service, args []string) (any, error) {
		path, err := svc.ResolveImage(cmd.Context(), args[0])
		if err == nil && path == "" {
			err = fmt.Errorf("no image found for %q", args[0])
		}
		return path, err
	})

var itemsResolveCmd = catalogCommand("resolve <name[=count]>...", "Resolve inventory slots for display", cobra.MinimumNArgs(1),
	func(cmd *cobra.Command, svc *catalog.Service, args []string) (any, error) {
		slots := make([]catalog.Slot, 0, len(args))
		for _, arg := range args {
			slot, err := parseSlot(arg)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}
		return svc.ResolveSlots(cmd.Context(), slots)
	})

func init() {
	itemsListCmd.Flags().StringVarP(&categoryFlag, "category", "c", models.AllCategories, "Exact category, "+models.AllCategories+" for any")
	itemsListCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Name substring")

	itemsCmd.AddCommand(itemsListCmd, itemsCategoriesCmd, itemsShowCmd, itemsIconCmd, itemsImageCmd, itemsResolveCmd)
	RootCmd.AddCommand(itemsCmd)
}
