package catalog

import (
	"net/url"

	"asset-indexer/core/logger"
	"asset-indexer/feature/index/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog reads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	items := app.Group("/items")
	items.Get("/", h.HandleItems)
	items.Get("/categories", h.HandleItemCategories)
	items.Post("/resolve", h.HandleResolveSlots)
	items.Get("/:name/icon", h.HandleItemIcon)
	items.Get("/:name/image", h.HandleItemImage)
	items.Get("/:name", h.HandleItem)

	blueprints := app.Group("/blueprints")
	blueprints.Get("/", h.HandleBlueprints)
	blueprints.Get("/categories", h.HandleBlueprintCategories)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// filterParams reads the category and name query parameters. The third
// return value is false when neither is given. An absent category matches
// any; a present but empty one selects items from dotless filenames.
func filterParams(c *fiber.Ctx) (string, string, bool) {
	args := c.Context().QueryArgs()
	hasCategory := args.Has("category")
	name := c.Query("name")
	if !hasCategory && name == "" {
		return "", "", false
	}
	category := models.AllCategories
	if hasCategory {
		category = c.Query("category")
	}
	return category, name, true
}

func nameParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// HandleItems lists items, optionally filtered.
// @Summary List Items
// @Description Lists indexed items ordered by name. Filters by exact category ("<all>" for any) and name substring.
// @Tags catalog
// @Produce json
// @Param category query string false "Category, empty for uncategorized"
// @Param name query string false "Name substring"
// @Success 200 {array} models.Item "Items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items [get]
func (h *Handler) HandleItems(c *fiber.Ctx) error {
	var (
		rows []models.Item
		err  error
	)
	if category, name, ok := filterParams(c); ok {
		rows, err = h.service.FilterItems(c.Context(), category, name)
	} else {
		rows, err = h.service.ListItems(c.Context())
	}
	if err != nil {
		return h.fail(c, "Listing items failed", err)
	}
	return c.JSON(rows)
}

// HandleItemCategories lists distinct item categories.
// @Summary Item Categories
// @Tags catalog
// @Produce json
// @Success 200 {array} string "Categories"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/categories [get]
func (h *Handler) HandleItemCategories(c *fiber.Ctx) error {
	cats, err := h.service.ItemCategories(c.Context())
	if err != nil {
		return h.fail(c, "Listing item categories failed", err)
	}
	return c.JSON(cats)
}

// HandleItem returns one item with its parsed asset.
// @Summary Get Item
// @Tags catalog
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} catalog.ItemDetail "Item"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/{name} [get]
func (h *Handler) HandleItem(c *fiber.Ctx) error {
	detail, err := h.service.GetItem(c.Context(), nameParam(c))
	if err != nil {
		return h.fail(c, "Loading item failed", err)
	}
	if detail == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
	}
	return c.JSON(detail)
}

// HandleItemIcon returns the resolved icon of an item.
// @Summary Item Icon
// @Tags catalog
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} catalog.IconRef "Icon"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/{name}/icon [get]
func (h *Handler) HandleItemIcon(c *fiber.Ctx) error {
	icon, err := h.service.ResolveIcon(c.Context(), nameParam(c))
	if err != nil {
		return h.fail(c, "Resolving icon failed", err)
	}
	if icon == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "icon not found"})
	}
	return c.JSON(icon)
}

// HandleItemImage returns the resolved full-size image path of an item.
// @Summary Item Image
// @Tags catalog
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} map[string]string "Image path"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/{name}/image [get]
func (h *Handler) HandleItemImage(c *fiber.Ctx) error {
	path, err := h.service.ResolveImage(c.Context(), nameParam(c))
	if err != nil {
		return h.fail(c, "Resolving image failed", err)
	}
	if path == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "image not found"})
	}
	return c.JSON(fiber.Map{"path": path})
}

// HandleResolveSlots resolves inventory slots for display.
// @Summary Resolve Slots
// @Tags catalog
// @Accept json
// @Produce json
// @Param slots body []catalog.Slot true "Slots"
// @Success 200 {array} catalog.SlotView "Resolved slots"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/resolve [post]
func (h *Handler) HandleResolveSlots(c *fiber.Ctx) error {
	var slots []Slot
	if err := c.BodyParser(&slots); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid slot list"})
	}

	views, err := h.service.ResolveSlots(c.Context(), slots)
	if err != nil {
		return h.fail(c, "Resolving slots failed", err)
	}
	return c.JSON(views)
}

// HandleBlueprints lists blueprints, optionally filtered.
// @Summary List Blueprints
// @Description Lists indexed blueprints ordered by name. Filters by exact category ("<all>" for any) and name substring.
// @Tags catalog
// @Produce json
// @Param category query string false "Category"
// @Param name query string false "Name substring"
// @Success 200 {array} models.Blueprint "Blueprints"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /blueprints [get]
func (h *Handler) HandleBlueprints(c *fiber.Ctx) error {
	var (
		rows []models.Blueprint
		err  error
	)
	if category, name, ok := filterParams(c); ok {
		rows, err = h.service.FilterBlueprints(c.Context(), category, name)
	} else {
		rows, err = h.service.ListBlueprints(c.Context())
	}
	if err != nil {
		return h.fail(c, "Listing blueprints failed", err)
	}
	return c.JSON(rows)
}

// HandleBlueprintCategories lists distinct blueprint categories.
// @Summary Blueprint Categories
// @Tags catalog
// @Produce json
// @Success 200 {array} string "Categories"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /blueprints/categories [get]
func (h *Handler) HandleBlueprintCategories(c *fiber.Ctx) error {
	cats, err := h.service.BlueprintCategories(c.Context())
	if err != nil {
		return h.fail(c, "Listing blueprint categories failed", err)
	}
	return c.JSON(cats)
}
