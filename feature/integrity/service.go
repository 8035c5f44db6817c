package integrity

import (
	"context"

	"asset-indexer/core/assets"
	"asset-indexer/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	roots  assets.Roots
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(db *gorm.DB, roots assets.Roots, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		roots:  roots,
		logger: logger,
	}
}

// CheckStructure returns the missing asset folders.
func (s *Service) CheckStructure(ctx context.Context) ([]checks.Folder, error) {
	return checks.CheckStructure(s.roots)
}

// FixStructure creates the missing asset folders.
func (s *Service) FixStructure(ctx context.Context, missing []checks.Folder) error {
	return checks.FixStructure(s.logger, missing)
}

// CheckSchema compares the store schema with the index models.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	return checks.CheckSchema(ctx, s.db)
}

// CheckIcons reports indexed items whose icon file is missing.
func (s *Service) CheckIcons(ctx context.Context) (*checks.IconReport, error) {
	return checks.CheckIcons(ctx, s.db)
}

// RunAll runs every check. A failing check is reported in place and does not
// stop the others.
func (s *Service) RunAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if missing, err := s.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]any{"status": "ok", "missing": missing}
	}

	if schema, err := s.CheckSchema(ctx); err != nil {
		report["schema"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if icons, err := s.CheckIcons(ctx); err != nil {
		report["icons"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["icons"] = icons
	}

	return report
}
