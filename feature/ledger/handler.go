package ledger

import (
	"errors"

	"loanhub/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for borrow/return adjustments.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ledger routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/borrow", h.HandleBorrow)
	app.Post("/return", h.HandleReturn)
	app.Get("/requests", h.HandleListRequests)
}

type adjustmentRequest struct {
	ItemID    int    `json:"itemId"`
	StudentID string `json:"studentId"`
	Quantity  int    `json:"quantity"`
}

func (r adjustmentRequest) validate() string {
	if r.ItemID <= 0 || r.StudentID == "" || r.Quantity == 0 {
		return "itemId, studentId and quantity are required"
	}
	return ""
}

// HandleBorrow borrows a quantity of an item for a student.
// @Summary Borrow Item
// @Description Atomically decrements available stock, increments borrowed stock and records a Pending request.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body adjustmentRequest true "Borrow request"
// @Success 200 {object} map[string]string "Borrowed"
// @Failure 400 {object} map[string]string "Missing fields or insufficient stock"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /api/borrow [post]
func (h *Handler) HandleBorrow(c *fiber.Ctx) error {
	var body adjustmentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	if _, err := h.service.Borrow(c.Context(), body.ItemID, body.StudentID, body.Quantity); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item borrowed successfully"})
}

// HandleReturn returns a quantity of a borrowed item.
// @Summary Return Item
// @Description Atomically moves quantity from borrowed back to available and credits the open request.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body adjustmentRequest true "Return request"
// @Success 200 {object} map[string]string "Returned"
// @Failure 400 {object} map[string]string "Missing fields or excess return"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /api/return [post]
func (h *Handler) HandleReturn(c *fiber.Ctx) error {
	var body adjustmentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	if err := h.service.Return(c.Context(), body.ItemID, body.StudentID, body.Quantity); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item returned successfully"})
}

// HandleListRequests lists borrow requests, optionally filtered by student.
// @Summary List Borrow Requests
// @Tags ledger
// @Produce json
// @Param studentId query string false "Filter by student"
// @Success 200 {array} BorrowRequest
// @Router /api/requests [get]
func (h *Handler) HandleListRequests(c *fiber.Ctx) error {
	reqs, err := h.service.ListRequests(c.Context(), c.Query("studentId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(reqs)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Item not found"})
	case errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrExcessReturn),
		errors.Is(err, ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		logger.WithRayID(h.service.logger, c).Error("Ledger adjustment failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
}
