package intake

import (
	"encoding/json"
	"errors"

	"loanhub/core/logger"
	"loanhub/feature/people"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for form submissions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the intake routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/forms")
	group.Post("/", h.HandleSubmit)
	group.Get("/:reference", h.HandleGet)
}

// HandleSubmit accepts an equipment request form.
// @Summary Submit Form
// @Description Persists the submission, resolves student/supervisor records and forwards the raw payload to the workflow webhook.
// @Tags intake
// @Accept json
// @Produce json
// @Param form body SubmissionRequest true "Form submission"
// @Success 201 {object} map[string]string "Submitted"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Router /api/forms [post]
func (h *Handler) HandleSubmit(c *fiber.Ctx) error {
	raw := c.Body()

	var req SubmissionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	sub, err := h.service.Submit(c.Context(), req, append([]byte(nil), raw...))
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingStudent), errors.Is(err, people.ErrMissingEmail):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			logger.WithRayID(h.service.logger, c).Error("Form submission failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Form submitted successfully",
		"reference": sub.Reference,
	})
}

// HandleGet returns a submission by reference.
// @Summary Get Submission
// @Tags intake
// @Produce json
// @Param reference path string true "Submission reference"
// @Success 200 {object} FormSubmission
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/forms/{reference} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	sub, err := h.service.Get(c.Context(), c.Params("reference"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Submission not found"})
		}
		logger.WithRayID(h.service.logger, c).Error("Submission lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(sub)
}
