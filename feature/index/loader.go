package index

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new index feature.
func NewFeature(store *Store, logger *zap.Logger, allowRebuild bool) *Feature {
	svc := NewService(store, logger)
	return &Feature{service: svc, handler: NewHandler(svc, allowRebuild)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "index"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
