package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"asset-indexer/core/assets"
	"asset-indexer/core/jsonc"
	"asset-indexer/feature/index/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service answers read queries against a built index.
type Service struct {
	db     *gorm.DB
	roots  assets.Roots
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, roots assets.Roots, logger *zap.Logger) *Service {
	return &Service{db: db, roots: roots, logger: logger}
}

// ItemDetail is an indexed item together with its freshly parsed asset file.
type ItemDetail struct {
	Item     models.Item    `json:"item"`
	Data     jsonc.Document `json:"data"`
	Folder   string         `json:"folder"`
	Filename string         `json:"filename"`
}

// GetItem returns the first stored item called name with its parsed asset,
// or nil when no item has that name.
func (s *Service) GetItem(ctx context.Context, name string) (*ItemDetail, error) {
	item, err := s.firstItem(ctx, name)
	if err != nil || item == nil {
		return nil, err
	}

	doc, err := jsonc.ParseFile(item.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to load item %q: %w", name, err)
	}

	return &ItemDetail{
		Item:     *item,
		Data:     doc,
		Folder:   item.Folder,
		Filename: item.Filename,
	}, nil
}

// resolvePath joins a path declared inside an asset. Paths starting with "/"
// are relative to the asset root.
func (s *Service) resolvePath(folder, declared string) string {
	if strings.HasPrefix(declared, "/") {
		return filepath.Join(s.roots.Assets, declared)
	}
	return filepath.Join(folder, declared)
}

// fileExists reports whether path is an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
