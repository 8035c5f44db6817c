package index

import (
	"errors"
	"fmt"
	"strings"

	"asset-indexer/core/assets"
	"asset-indexer/core/jsonc"
	"asset-indexer/core/utils"
	"asset-indexer/feature/index/models"

	"go.uber.org/zap"
)

// DefaultBlueprintCategory is used when a recipe declares fewer than two groups.
const DefaultBlueprintCategory = "other"

// BlueprintIndexer walks the recipe root and produces blueprint rows.
type BlueprintIndexer struct {
	roots  assets.Roots
	logger *zap.Logger
}

// NewBlueprintIndexer creates a blueprint indexer over roots.
func NewBlueprintIndexer(roots assets.Roots, logger *zap.Logger) *BlueprintIndexer {
	return &BlueprintIndexer{roots: roots, logger: logger}
}

// Collect parses every recipe file and returns the rows to insert.
// Unparsable files are skipped; nothing is written.
func (x *BlueprintIndexer) Collect(progress Progress) ([]models.Blueprint, error) {
	files, err := collect(x.roots.Recipes, isRecipeFile)
	if err != nil {
		return nil, fmt.Errorf("walk recipes %s: %w", x.roots.Recipes, err)
	}
	progress.Found(KindBlueprints, len(files))

	rows := make([]models.Blueprint, 0, len(files))
	for _, f := range files {
		row, err := x.record(f)
		progress.Step(KindBlueprints)
		if err != nil {
			if errors.Is(err, jsonc.ErrParse) {
				x.logger.Debug("Skipping unparsable recipe", zap.String("file", f.path()), zap.Error(err))
				continue
			}
			return nil, err
		}
		rows = append(rows, row)
	}

	progress.Done(KindBlueprints, len(rows))
	return rows, nil
}

func (x *BlueprintIndexer) record(f candidate) (models.Blueprint, error) {
	doc, err := jsonc.ParseFile(f.path())
	if err != nil {
		return models.Blueprint{}, err
	}

	name, _, _ := strings.Cut(f.Filename, ".")

	return models.Blueprint{
		Name:     name,
		Filename: f.Filename,
		Folder:   f.Folder,
		Category: blueprintCategory(doc),
	}, nil
}

// blueprintCategory returns the second declared group, or "other".
func blueprintCategory(doc jsonc.Document) string {
	groups, ok := doc.Slice("groups")
	if !ok || len(groups) < 2 || groups[1] == nil {
		return DefaultBlueprintCategory
	}
	return utils.ToString(groups[1])
}
