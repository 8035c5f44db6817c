package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoAssetRoot is returned when the asset folder is unset or missing.
var ErrNoAssetRoot = errors.New("asset folder does not exist")

// Config holds the locations of the unpacked game assets.
type Config struct {
	// Folder is the root of the unpacked vanilla assets.
	Folder string `mapstructure:"folder" default:""`
	// ModFolder is the root of an optional mod asset tree. Its items are indexed too.
	ModFolder string `mapstructure:"mod_folder" default:""`
	// ItemsFolder overrides <folder>/items.
	ItemsFolder string `mapstructure:"items_folder" default:""`
	// ObjectsFolder overrides <folder>/objects.
	ObjectsFolder string `mapstructure:"objects_folder" default:""`
	// TechFolder overrides <folder>/tech.
	TechFolder string `mapstructure:"tech_folder" default:""`
	// RecipesFolder overrides <folder>/recipes.
	RecipesFolder string `mapstructure:"recipes_folder" default:""`
}

// Roots is the resolved set of directories walked by the indexers.
type Roots struct {
	Assets    string
	Items     string
	ModItems  string
	Objects   string
	Tech      string
	Recipes   string
	Inventory string
}

// Resolve fills in every root not set explicitly from the asset folder.
func (c Config) Resolve() Roots {
	r := Roots{
		Assets:    c.Folder,
		Items:     orJoin(c.ItemsFolder, c.Folder, "items"),
		Objects:   orJoin(c.ObjectsFolder, c.Folder, "objects"),
		Tech:      orJoin(c.TechFolder, c.Folder, "tech"),
		Recipes:   orJoin(c.RecipesFolder, c.Folder, "recipes"),
		Inventory: filepath.Join(c.Folder, "interface", "inventory"),
	}
	if c.ModFolder != "" {
		r.ModItems = filepath.Join(c.ModFolder, "items")
	}
	return r
}

// Check fails with ErrNoAssetRoot unless the asset folder is an existing
// directory.
func (r Roots) Check() error {
	if r.Assets == "" {
		return fmt.Errorf("%w: no folder configured", ErrNoAssetRoot)
	}
	info, err := os.Stat(r.Assets)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrNoAssetRoot, r.Assets)
	}
	return nil
}

// MissingIcon is the placeholder used for items without any icon.
func (r Roots) MissingIcon() string {
	return filepath.Join(r.Inventory, "x.png")
}

func orJoin(explicit, base, sub string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(base, sub)
}
