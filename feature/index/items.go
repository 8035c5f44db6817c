package index

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"asset-indexer/core/assets"
	"asset-indexer/core/jsonc"
	"asset-indexer/feature/index/models"

	"go.uber.org/zap"
)

// ErrUnresolvedName is returned for item assets without any name field.
var ErrUnresolvedName = errors.New("asset has no name field")

// nameKeys are tried in order; the first string value wins.
var nameKeys = []string{"itemName", "name", "objectName"}

const (
	inventoryIconKey = "inventoryIcon"
	chipSuffix       = "-chip"
)

// ItemIndexer walks the item, object and tech roots and produces item rows.
type ItemIndexer struct {
	roots  assets.Roots
	logger *zap.Logger
}

// NewItemIndexer creates an item indexer over roots.
func NewItemIndexer(roots assets.Roots, logger *zap.Logger) *ItemIndexer {
	return &ItemIndexer{roots: roots, logger: logger}
}

// Collect parses every item asset and returns the rows to insert.
// Unparsable and unnamed assets are skipped; nothing is written.
func (x *ItemIndexer) Collect(progress Progress) ([]models.Item, error) {
	files, err := x.files()
	if err != nil {
		return nil, err
	}
	progress.Found(KindItems, len(files))

	rows := make([]models.Item, 0, len(files))
	for _, f := range files {
		recs, err := x.records(f)
		progress.Step(KindItems)
		switch {
		case err == nil:
			rows = append(rows, recs...)
		case errors.Is(err, jsonc.ErrParse):
			x.logger.Debug("Skipping unparsable item", zap.String("file", f.path()), zap.Error(err))
		case errors.Is(err, ErrUnresolvedName):
			x.logger.Debug("Skipping unnamed item", zap.String("file", f.path()))
		default:
			return nil, err
		}
	}

	progress.Done(KindItems, len(rows))
	return rows, nil
}

// files enumerates all item candidates: items, mod items, objects, then tech.
func (x *ItemIndexer) files() ([]candidate, error) {
	walks := []struct {
		root  string
		match func(string) bool
	}{
		{x.roots.Items, isItemFile},
		{x.roots.ModItems, isItemFile},
		{x.roots.Objects, isObjectFile},
		{x.roots.Tech, isTechFile},
	}

	var all []candidate
	for _, w := range walks {
		found, err := collect(w.root, w.match)
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", w.root, err)
		}
		all = append(all, found...)
	}
	return all, nil
}

// records builds the row for one asset, plus its chip row for tech assets.
func (x *ItemIndexer) records(f candidate) ([]models.Item, error) {
	doc, err := jsonc.ParseFile(f.path())
	if err != nil {
		return nil, err
	}

	name, ok := doc.FirstString(nameKeys...)
	if !ok {
		return nil, fmt.Errorf("%s: %w", f.path(), ErrUnresolvedName)
	}

	category := itemCategory(f.Filename)
	item := models.Item{
		Name:     name,
		Filename: f.Filename,
		Folder:   f.Folder,
		Category: category,
	}

	icon, ok := doc.String(inventoryIconKey)
	if !ok {
		item.Icon = x.fallbackIcon(category)
		return []models.Item{item}, nil
	}

	if !f.isTech() {
		item.Icon = x.resolve(f.Folder, icon)
		return []models.Item{item}, nil
	}

	item.Icon = filepath.Join(x.roots.Assets, icon)
	chip := item
	chip.Name = name + chipSuffix
	return []models.Item{item, chip}, nil
}

// resolve joins a declared asset path. Paths starting with "/" are relative
// to the asset root, everything else to the declaring file's folder.
func (x *ItemIndexer) resolve(folder, declared string) string {
	if strings.HasPrefix(declared, "/") {
		return filepath.Join(x.roots.Assets, declared)
	}
	return filepath.Join(folder, declared)
}

// fallbackIcon picks the generic weapon icon or the missing-icon placeholder.
func (x *ItemIndexer) fallbackIcon(category string) string {
	if strings.Contains(category, "sword") || strings.Contains(category, "shield") {
		return filepath.Join(x.roots.Inventory, strings.ReplaceAll(category, "generated", "")+".png")
	}
	return x.roots.MissingIcon()
}

// itemCategory is the extension chain after the first dot of the filename.
func itemCategory(filename string) string {
	_, ext, _ := strings.Cut(filename, ".")
	return ext
}
