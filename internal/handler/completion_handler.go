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

// CompletionHandler manages completion-ledger endpoints.
type CompletionHandler struct {
	service service.CompletionService
	logger  zerolog.Logger
}

// NewCompletionHandler builds a completion handler instance.
func NewCompletionHandler(service service.CompletionService, logger zerolog.Logger) *CompletionHandler {
	return &CompletionHandler{
		service: service,
		logger:  logger.With().Str("component", "completion_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
// Bulk approval requires the trainer role or above.
func (h *CompletionHandler) Register(router fiber.Router, trainerOnly fiber.Handler) {
	router.Get("", h.list)
	router.Get("/all-time", h.allTime)
	router.Post("/approve-multiple", trainerOnly, h.approveMultiple)
}

func (h *CompletionHandler) list(c *fiber.Ctx) error {
	userID, err := h.resolveUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	completions, err := h.service.ListByUser(c.Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "completions retrieved", completions)
}

func (h *CompletionHandler) allTime(c *fiber.Ctx) error {
	userID, err := h.resolveUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	stats, err := h.service.AllTimeStats(c.Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "all-time stats retrieved", stats)
}

func (h *CompletionHandler) approveMultiple(c *fiber.Ctx) error {
	var payload dto.BulkApproveRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.BulkApprove(c.Context(), payload, actorFromContext(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "skills approved", result)
}

// resolveUserID reads the user_id query parameter, falling back to the
// authenticated user.
func (h *CompletionHandler) resolveUserID(c *fiber.Ctx) (uint, error) {
	userID, err := parseQueryUint(c, "user_id")
	if err != nil {
		return 0, err
	}
	if userID != nil {
		return *userID, nil
	}

	id := userIDFromContext(c)
	if id == 0 {
		return 0, errors.New("missing user_id")
	}

	return id, nil
}

func (h *CompletionHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrOutsideTrainerClasses):
		return utils.SendError(c, fiber.StatusForbidden, "member not in trainer's classes")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
