package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/pawsition/pawsition-api/internal/service"
	"github.com/pawsition/pawsition-api/internal/utils"
)

// ProgressHandler exposes the spendable-progress report.
type ProgressHandler struct {
	service service.ProgressService
	logger  zerolog.Logger
}

// NewProgressHandler builds a progress handler instance.
func NewProgressHandler(service service.ProgressService, logger zerolog.Logger) *ProgressHandler {
	return &ProgressHandler{
		service: service,
		logger:  logger.With().Str("component", "progress_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *ProgressHandler) Register(router fiber.Router) {
	router.Get("", h.progress)
}

func (h *ProgressHandler) progress(c *fiber.Ctx) error {
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

	progress, err := h.service.Progress(c.Context(), resolved)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "progress retrieved", progress)
}

func (h *ProgressHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
