package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/pawsition/pawsition-api/internal/dto"
	"github.com/pawsition/pawsition-api/internal/service"
	"github.com/pawsition/pawsition-api/internal/utils"
)

// GradeHandler manages grade-ledger endpoints.
type GradeHandler struct {
	service service.GradeService
	logger  zerolog.Logger
}

// NewGradeHandler builds a grade handler instance.
func NewGradeHandler(service service.GradeService, logger zerolog.Logger) *GradeHandler {
	return &GradeHandler{
		service: service,
		logger:  logger.With().Str("component", "grade_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
// Achieving a grade requires the trainer role or above.
func (h *GradeHandler) Register(router fiber.Router, trainerOnly fiber.Handler) {
	router.Get("", h.list)
	router.Post("/progress", trainerOnly, h.achieve)
}

func (h *GradeHandler) list(c *fiber.Ctx) error {
	userID, err := parseQueryUint(c, "user_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	resolved := userIDFromContext(c)
	if userID != nil {
		resolved = *userID
	}
	if resolved == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "missing user_id")
	}

	grades, err := h.service.ListByUser(c.Context(), resolved)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "grades retrieved", grades)
}

func (h *GradeHandler) achieve(c *fiber.Ctx) error {
	var payload dto.GradeAchieveRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	grade, err := h.service.Achieve(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "grade achieved", grade)
}

func (h *GradeHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrGradeAlreadyAchieved):
		return utils.SendError(c, fiber.StatusBadRequest, "grade already achieved")
	case errors.Is(err, service.ErrCompletionUnavailable):
		return utils.SendError(c, fiber.StatusBadRequest, "completion not available")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
