package catalog

import (
	"context"
	"fmt"
	"strings"

	"asset-indexer/feature/index/models"

	"gorm.io/gorm"
)

// likeEscaper makes user input literal inside a LIKE ... ESCAPE '!' pattern.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// nameOrder sorts case-insensitively on every supported dialect.
const nameOrder = "LOWER(name)"

func listAll[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	rows := make([]T, 0)
	if err := db.WithContext(ctx).Order(nameOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func listCategories[T any](ctx context.Context, db *gorm.DB) ([]string, error) {
	categories := make([]string, 0)
	err := db.WithContext(ctx).Model(new(T)).Distinct().Order("category").Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// filter matches rows in category ("<all>" for any) whose name contains name.
func filter[T any](ctx context.Context, db *gorm.DB, category, name string) ([]T, error) {
	q := db.WithContext(ctx).Where("name LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(name)+"%")
	if category != models.AllCategories {
		q = q.Where("category = ?", category)
	}

	rows := make([]T, 0)
	if err := q.Order(nameOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListItems returns every indexed item ordered by name, ignoring case.
func (s *Service) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := listAll[models.Item](ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return rows, nil
}

// ListBlueprints returns every indexed blueprint ordered by name, ignoring case.
func (s *Service) ListBlueprints(ctx context.Context) ([]models.Blueprint, error) {
	rows, err := listAll[models.Blueprint](ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list blueprints: %w", err)
	}
	return rows, nil
}

// ItemCategories returns the distinct item categories in ascending order.
func (s *Service) ItemCategories(ctx context.Context) ([]string, error) {
	cats, err := listCategories[models.Item](ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list item categories: %w", err)
	}
	return cats, nil
}

// BlueprintCategories returns the distinct blueprint categories in ascending order.
func (s *Service) BlueprintCategories(ctx context.Context) ([]string, error) {
	cats, err := listCategories[models.Blueprint](ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list blueprint categories: %w", err)
	}
	return cats, nil
}

// FilterItems returns items in category whose name contains name.
func (s *Service) FilterItems(ctx context.Context, category, name string) ([]models.Item, error) {
	rows, err := filter[models.Item](ctx, s.db, category, name)
	if err != nil {
		return nil, fmt.Errorf("failed to filter items: %w", err)
	}
	return rows, nil
}

// FilterBlueprints returns blueprints in category whose name contains name.
func (s *Service) FilterBlueprints(ctx context.Context, category, name string) ([]models.Blueprint, error) {
	rows, err := filter[models.Blueprint](ctx, s.db, category, name)
	if err != nil {
		return nil, fmt.Errorf("failed to filter blueprints: %w", err)
	}
	return rows, nil
}

// firstItem returns the first stored item called name, or nil.
func (s *Service) firstItem(ctx context.Context, name string) (*models.Item, error) {
	var rows []models.Item
	if err := s.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to look up item %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
