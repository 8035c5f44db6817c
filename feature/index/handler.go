package index

import (
	"asset-indexer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for index maintenance.
type Handler struct {
	service      *Service
	allowRebuild bool
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, allowRebuild bool) *Handler {
	return &Handler{service: service, allowRebuild: allowRebuild}
}

// RegisterRoutes registers the index routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/index")
	group.Get("/", h.HandleStatus)
	group.Post("/rebuild", h.HandleRebuild)
}

// HandleStatus returns the row count of each table.
// @Summary Index Status
// @Description Returns the number of indexed items and blueprints.
// @Tags index
// @Produce json
// @Success 200 {object} index.Status "Index Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /index [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	status, err := h.service.Status(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Index status failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(status)
}

// HandleRebuild drops and rebuilds the whole index.
// @Summary Rebuild Index
// @Description Drops every indexed row and reindexes all asset roots. Disabled unless SERVER_ALLOW_REBUILD is set.
// @Tags index
// @Produce json
// @Success 200 {object} index.Stats "Rebuild Stats"
// @Failure 403 {object} map[string]string "Rebuild Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /index/rebuild [post]
func (h *Handler) HandleRebuild(c *fiber.Ctx) error {
	if !h.allowRebuild {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "rebuild is disabled"})
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Rebuilding index")

	stats, err := h.service.Rebuild(c.Context())
	if err != nil {
		l.Error("Index rebuild failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}
