package index

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service exposes index maintenance to the CLI and HTTP layers.
type Service struct {
	store  *Store
	logger *zap.Logger
	group  singleflight.Group
}

// NewService creates a new index service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Status describes the current contents of the index.
type Status struct {
	Items      int64 `json:"items"`
	Blueprints int64 `json:"blueprints"`
}

// Rebuild reindexes everything. Concurrent callers share one build and its result.
func (s *Service) Rebuild(ctx context.Context) (*Stats, error) {
	v, err, shared := s.group.Do("rebuild", func() (any, error) {
		return s.store.Rebuild(ctx)
	})
	if shared {
		s.logger.Debug("Joined running rebuild")
	}
	if err != nil {
		return nil, err
	}
	return v.(*Stats), nil
}

// Status returns row counts for both tables.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	items, blueprints, err := s.store.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &Status{Items: items, Blueprints: blueprints}, nil
}
