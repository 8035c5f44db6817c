package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"asset-indexer/core/assets"
	"asset-indexer/core/database"
	"asset-indexer/feature/index"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, root, path, content string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

// catalogTree lays out items and recipes with a mix of present and missing
// icons and images.
func catalogTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "items/armors/shirt.chest", `{
  "itemName" : "shirt",
  "inventoryIcon" : "icons.png:chest",
  "image" : "shirt.png:default"
}`)
	writeFile(t, root, "items/armors/pants.legs", `{ "itemName" : "Trousers", "inventoryIcon" : "icons.png:pants" }`)
	writeFile(t, root, "items/armors/icons.png", "png")
	writeFile(t, root, "items/armors/shirt.png", "png")

	writeFile(t, root, "items/generic/apple.consumable", `{
  // fresh
  "itemName" : "apple",
  "inventoryIcon" : "apple.png",
  "image" : "/items/generic/apple_full.png"
}`)
	writeFile(t, root, "items/generic/apple.png", "png")
	writeFile(t, root, "items/generic/apple_full.png", "png")
	writeFile(t, root, "items/generic/banana.consumable", `{ "itemName" : "Banana", "inventoryIcon" : "banana.png" }`)
	writeFile(t, root, "items/generic/ghost.consumable", `{ "itemName" : "ghost", "image" : "missing.png:frame" }`)
	writeFile(t, root, "items/generic/juice.consumable", `{ "itemName" : "100% Juice" }`)
	writeFile(t, root, "items/generic/pie.consumable", `{ "itemName" : "apple_pie" }`)

	writeFile(t, root, "recipes/food/apple.recipe", `{ "groups" : [ "craftingfood", "food" ] }`)
	writeFile(t, root, "recipes/food/Bread.recipe", `{ "groups" : [ "craftingfood", "food" ] }`)
	writeFile(t, root, "recipes/misc/rope.recipe", `{ "groups" : [ "plain" ] }`)

	return root
}

// newTestService builds the index over root and returns a catalog over it.
func newTestService(t *testing.T, root string) *Service {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "assets.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	roots := assets.Config{Folder: root}.Resolve()
	store := index.NewStore(db, roots, zap.NewNop(), nil)
	_, err = store.Rebuild(context.Background())
	require.NoError(t, err)

	return NewService(db, roots, zap.NewNop())
}
