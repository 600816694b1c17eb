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

// CertificateHandler manages certificate endpoints.
type CertificateHandler struct {
	service service.CertificateService
	logger  zerolog.Logger
}

// NewCertificateHandler builds a certificate handler instance.
func NewCertificateHandler(service service.CertificateService, logger zerolog.Logger) *CertificateHandler {
	return &CertificateHandler{
		service: service,
		logger:  logger.With().Str("component", "certificate_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
// Approval requires the trainer role or above.
func (h *CertificateHandler) Register(router fiber.Router, trainerOnly fiber.Handler) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Patch("/:id", trainerOnly, h.approve)
}

func (h *CertificateHandler) list(c *fiber.Ctx) error {
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

	certificates, err := h.service.ListByUser(c.Context(), resolved)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "certificates retrieved", certificates)
}

func (h *CertificateHandler) create(c *fiber.Ctx) error {
	var payload dto.CertificateCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	certificate, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "certificate requested", certificate)
}

func (h *CertificateHandler) approve(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	certificate, err := h.service.Approve(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "certificate approved", certificate)
}

func (h *CertificateHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrGradeNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "grade not found")
	case errors.Is(err, service.ErrCertificateNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "certificate not found")
	case errors.Is(err, service.ErrCertificateExists):
		return utils.SendError(c, fiber.StatusBadRequest, "certificate already requested")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
