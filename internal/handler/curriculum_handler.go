package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/pawsition/pawsition-api/internal/dto"
	"github.com/pawsition/pawsition-api/internal/repository"
	"github.com/pawsition/pawsition-api/internal/service"
	"github.com/pawsition/pawsition-api/internal/utils"
)

// CurriculumHandler manages section and skill endpoints.
type CurriculumHandler struct {
	service service.CurriculumService
	logger  zerolog.Logger
}

// NewCurriculumHandler builds a curriculum handler instance.
func NewCurriculumHandler(service service.CurriculumService, logger zerolog.Logger) *CurriculumHandler {
	return &CurriculumHandler{
		service: service,
		logger:  logger.With().Str("component", "curriculum_handler").Logger(),
	}
}

// RegisterSections attaches the section routes. Writes require the trainer role or above.
func (h *CurriculumHandler) RegisterSections(router fiber.Router, trainerOnly fiber.Handler) {
	router.Get("", h.listSections)
	router.Post("", trainerOnly, h.createSection)
	router.Patch("/:id", trainerOnly, h.updateSection)
	router.Delete("/:id", trainerOnly, h.deactivateSection)
}

// RegisterSkills attaches the skill routes. Writes require the trainer role or above.
func (h *CurriculumHandler) RegisterSkills(router fiber.Router, trainerOnly fiber.Handler) {
	router.Get("", h.listSkills)
	router.Post("", trainerOnly, h.createSkill)
	router.Patch("/:id", trainerOnly, h.updateSkill)
	router.Delete("/:id", trainerOnly, h.deactivateSkill)
}

func (h *CurriculumHandler) listSections(c *fiber.Ctx) error {
	sections, err := h.service.ListSections(c.Context(), c.QueryBool("include_inactive"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "sections retrieved", sections)
}

func (h *CurriculumHandler) createSection(c *fiber.Ctx) error {
	var payload dto.SectionCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	section, err := h.service.CreateSection(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "section created", section)
}

func (h *CurriculumHandler) updateSection(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.SectionUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	section, err := h.service.UpdateSection(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "section updated", section)
}

func (h *CurriculumHandler) deactivateSection(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeactivateSection(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "section deactivated", nil)
}

func (h *CurriculumHandler) listSkills(c *fiber.Ctx) error {
	filter := repository.SkillFilter{}
	sectionID, err := parseQueryUint(c, "section_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	filter.SectionID = sectionID
	filter.IncludeInactive = c.QueryBool("include_inactive")

	skills, err := h.service.ListSkills(c.Context(), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "skills retrieved", skills)
}

func (h *CurriculumHandler) createSkill(c *fiber.Ctx) error {
	var payload dto.SkillCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	skill, err := h.service.CreateSkill(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "skill created", skill)
}

func (h *CurriculumHandler) updateSkill(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.SkillUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	skill, err := h.service.UpdateSkill(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "skill updated", skill)
}

func (h *CurriculumHandler) deactivateSkill(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeactivateSkill(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "skill deactivated", nil)
}

func (h *CurriculumHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrSectionNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "section not found")
	case errors.Is(err, service.ErrSkillNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "skill not found")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
