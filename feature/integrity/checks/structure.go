package checks

import (
	"os"

	"asset-indexer/core/assets"

	"go.uber.org/zap"
)

// Folder is a directory the indexers expect to find.
type Folder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// RequiredFolders lists the folders that must exist for a complete index.
func RequiredFolders(roots assets.Roots) []Folder {
	return []Folder{
		{"items", roots.Items},
		{"objects", roots.Objects},
		{"tech", roots.Tech},
		{"recipes", roots.Recipes},
		{"interface/inventory", roots.Inventory},
	}
}

// CheckStructure returns the required folders that are missing.
func CheckStructure(roots assets.Roots) ([]Folder, error) {
	if err := roots.Check(); err != nil {
		return nil, err
	}

	missing := []Folder{}
	for _, f := range RequiredFolders(roots) {
		if !isDir(f.Path) {
			missing = append(missing, f)
		}
	}
	return missing, nil
}

// FixStructure creates the missing folders empty.
func FixStructure(logger *zap.Logger, missing []Folder) error {
	for _, f := range missing {
		if err := os.MkdirAll(f.Path, 0o755); err != nil {
			logger.Error("Failed to create folder", zap.String("folder", f.Name), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", f.Name), zap.String("path", f.Path))
	}
	return nil
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
