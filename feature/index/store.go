package index

import (
	"context"
	"fmt"
	"time"

	"asset-indexer/core/assets"
	"asset-indexer/feature/index/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// batchSize bounds the rows per INSERT statement.
const batchSize = 500

// Stats summarizes a completed build.
type Stats struct {
	Items      int           `json:"items"`
	Blueprints int           `json:"blueprints"`
	Duration   time.Duration `json:"duration"`
}

// Store owns the index schema and its full rebuilds.
type Store struct {
	db         *gorm.DB
	roots      assets.Roots
	items      *ItemIndexer
	blueprints *BlueprintIndexer
	logger     *zap.Logger
	progress   Progress
}

// NewStore creates a store over db indexing the given asset roots.
func NewStore(db *gorm.DB, roots assets.Roots, logger *zap.Logger, progress Progress) *Store {
	if progress == nil {
		progress = NopProgress{}
	}
	return &Store{
		db:         db,
		roots:      roots,
		items:      NewItemIndexer(roots, logger),
		blueprints: NewBlueprintIndexer(roots, logger),
		logger:     logger,
		progress:   progress,
	}
}

// DB returns the underlying connection for read access.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Exists reports whether both index tables are present.
func (s *Store) Exists() bool {
	m := s.db.Migrator()
	return m.HasTable(&models.Item{}) && m.HasTable(&models.Blueprint{})
}

// Open makes the index usable, building it when the schema is absent.
// It reports whether a build ran.
func (s *Store) Open(ctx context.Context) (bool, error) {
	if s.Exists() {
		return false, nil
	}

	s.logger.Info("Index store is empty, building it")
	if _, err := s.Rebuild(ctx); err != nil {
		return false, fmt.Errorf("failed to build index: %w", err)
	}
	return true, nil
}

// Rebuild drops every indexed row and reindexes all asset roots.
//
// The walk happens before the transaction; the delete and all inserts are
// then committed together, so a failure leaves the previous index intact.
// Two rebuilds of an unchanged tree produce identical rows. A missing asset
// folder fails before anything is touched.
func (s *Store) Rebuild(ctx context.Context) (*Stats, error) {
	start := time.Now()

	if err := s.roots.Check(); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).AutoMigrate(models.Tables()...); err != nil {
		return nil, fmt.Errorf("failed to create index schema: %w", err)
	}

	items, err := s.items.Collect(s.progress)
	if err != nil {
		return nil, fmt.Errorf("failed to index items: %w", err)
	}
	blueprints, err := s.blueprints.Collect(s.progress)
	if err != nil {
		return nil, fmt.Errorf("failed to index blueprints: %w", err)
	}

	if err := s.commit(ctx, items, blueprints); err != nil {
		return nil, err
	}

	stats := &Stats{
		Items:      len(items),
		Blueprints: len(blueprints),
		Duration:   time.Since(start),
	}
	s.logger.Info("Index rebuilt",
		zap.Int("items", stats.Items),
		zap.Int("blueprints", stats.Blueprints),
		zap.Duration("duration", stats.Duration),
	)
	return stats, nil
}

// commit replaces the contents of both tables in one transaction.
func (s *Store) commit(ctx context.Context, items []models.Item, blueprints []models.Blueprint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM items").Error; err != nil {
			return fmt.Errorf("clear items: %w", err)
		}
		if err := tx.Exec("DELETE FROM blueprints").Error; err != nil {
			return fmt.Errorf("clear blueprints: %w", err)
		}
		if len(items) > 0 {
			if err := tx.CreateInBatches(items, batchSize).Error; err != nil {
				return fmt.Errorf("insert items: %w", err)
			}
		}
		if len(blueprints) > 0 {
			if err := tx.CreateInBatches(blueprints, batchSize).Error; err != nil {
				return fmt.Errorf("insert blueprints: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit index: %w", err)
	}
	return nil
}

// Counts returns the number of rows in each table.
func (s *Store) Counts(ctx context.Context) (items, blueprints int64, err error) {
	db := s.db.WithContext(ctx)
	if err = db.Model(&models.Item{}).Count(&items).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count items: %w", err)
	}
	if err = db.Model(&models.Blueprint{}).Count(&blueprints).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count blueprints: %w", err)
	}
	return items, blueprints, nil
}
