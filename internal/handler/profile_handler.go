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

// ProfileHandler manages member-profile endpoints.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler builds a profile handler instance.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("component", "profile_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group. Reading or
// writing another member's profile requires the trainer role or above.
func (h *ProfileHandler) Register(router fiber.Router, trainerOnly fiber.Handler) {
	router.Get("/me", h.getOwn)
	router.Put("/me", h.saveOwn)
	router.Get("/:userId", trainerOnly, h.getByUser)
	router.Put("/:userId", trainerOnly, h.saveByUser)
}

func (h *ProfileHandler) getOwn(c *fiber.Ctx) error {
	return h.get(c, userIDFromContext(c))
}

func (h *ProfileHandler) saveOwn(c *fiber.Ctx) error {
	return h.save(c, userIDFromContext(c))
}

func (h *ProfileHandler) getByUser(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return h.get(c, userID)
}

func (h *ProfileHandler) saveByUser(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return h.save(c, userID)
}

func (h *ProfileHandler) get(c *fiber.Ctx, userID uint) error {
	profile, err := h.service.Get(c.Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "profile retrieved", profile)
}

func (h *ProfileHandler) save(c *fiber.Ctx, userID uint) error {
	var payload dto.ProfileSaveRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := h.service.Save(c.Context(), userID, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "profile saved", profile)
}

func (h *ProfileHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "profile not found")
	case errors.Is(err, service.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrClassNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "class not found")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
