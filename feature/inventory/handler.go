package inventory

import (
	"bytes"
	"errors"

	"loanhub/core/logger"
	"loanhub/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes. The import routes are
// registered before the parameterized ones so "import" is not captured as an
// item identifier.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Post("/import/file", h.HandleImportFile)
	group.Post("/import", h.HandleImport)
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:item_id", h.HandleGet)
	group.Put("/:item_id", h.HandleUpdate)
	group.Delete("/:item_id", h.HandleDelete)
}

// HandleList returns all inventory items.
// @Summary List Inventory
// @Description Returns every equipment item in the inventory.
// @Tags inventory
// @Produce json
// @Success 200 {array} models.Item
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(items)
}

// HandleGet returns a single inventory item.
// @Summary Get Item
// @Description Returns one equipment item by its identifier.
// @Tags inventory
// @Produce json
// @Param item_id path int true "Item identifier"
// @Success 200 {object} models.Item
// @Failure 404 {object} map[string]string "Item not found"
// @Router /api/inventory/{item_id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("item_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid item id"})
	}
	item, err := h.service.Get(c.Context(), itemID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

// HandleCreate adds a new inventory item.
// @Summary Create Item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body models.Item true "Item"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string "Invalid body"
// @Router /api/inventory [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if item.ItemName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "itemName is required"})
	}
	if err := h.service.Create(c.Context(), &item); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

// HandleUpdate replaces an existing inventory item.
// @Summary Update Item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item_id path int true "Item identifier"
// @Param item body models.Item true "Item"
// @Success 200 {object} models.Item
// @Failure 404 {object} map[string]string "Item not found"
// @Router /api/inventory/{item_id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("item_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid item id"})
	}
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	updated, err := h.service.Update(c.Context(), itemID, &item)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete removes an inventory item.
// @Summary Delete Item
// @Tags inventory
// @Produce json
// @Param item_id path int true "Item identifier"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /api/inventory/{item_id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("item_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid item id"})
	}
	if err := h.service.Delete(c.Context(), itemID); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted successfully"})
}

// HandleImport reconciles a single externally sourced record.
// @Summary Import Record
// @Description Upserts one spreadsheet-sourced record keyed by item_id (full replace on conflict).
// @Tags inventory
// @Accept json
// @Produce json
// @Param record body models.ImportRecord true "Import record"
// @Success 200 {object} map[string]interface{} "Imported"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/inventory/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	var rec models.ImportRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	item, err := h.service.Reconcile(c.Context(), rec)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Data imported successfully", "result": item})
}

// HandleImportFile bulk-imports a CSV or XLSX upload.
// @Summary Import Spreadsheet
// @Description Reconciles every row of an uploaded CSV/XLSX file atomically.
// @Tags inventory
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} map[string]interface{} "Imported"
// @Failure 400 {object} map[string]string "Invalid upload"
// @Router /api/inventory/import/file [post]
func (h *Handler) HandleImportFile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "A file upload is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, err)
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(f); err != nil {
		return h.fail(c, err)
	}

	recs, err := ParseUpload(fh.Filename, bytes.NewReader(buf.Bytes()))
	if err != nil {
		l.Warn("Rejected import upload", zap.String("file", fh.Filename), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	count, err := h.service.ImportAll(c.Context(), recs)
	if err != nil {
		return h.fail(c, err)
	}

	h.service.Archive(c.Context(), fh.Filename, buf.Bytes())

	return c.JSON(fiber.Map{
		"message": "Data imported successfully",
		"result":  fiber.Map{"rows": count},
	})
}

// fail maps service errors to the API error taxonomy. Driver detail is logged
// and never returned to the caller.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Item not found"})
	case errors.Is(err, ErrMissingKey):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrMissingKey.Error()})
	default:
		logger.WithRayID(h.service.logger, c).Error("Inventory operation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
}
