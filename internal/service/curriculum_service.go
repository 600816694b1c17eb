package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/dto"
	"github.com/pawsition/pawsition-api/internal/models"
	"github.com/pawsition/pawsition-api/internal/repository"
)

var (
	// ErrSectionNotFound indicates the referenced section does not exist.
	ErrSectionNotFound = errors.New("section not found")
	// ErrSkillNotFound indicates the referenced skill does not exist.
	ErrSkillNotFound = errors.New("skill not found")
)

// CurriculumService manages sections and their skills.
type CurriculumService interface {
	ListSections(ctx context.Context, includeInactive bool) ([]dto.SectionResponse, error)
	CreateSection(ctx context.Context, payload dto.SectionCreateRequest) (dto.SectionResponse, error)
	UpdateSection(ctx context.Context, id uint, payload dto.SectionUpdateRequest) (dto.SectionResponse, error)
	DeactivateSection(ctx context.Context, id uint) error
	ListSkills(ctx context.Context, filter repository.SkillFilter) ([]dto.SkillResponse, error)
	CreateSkill(ctx context.Context, payload dto.SkillCreateRequest) (dto.SkillResponse, error)
	UpdateSkill(ctx context.Context, id uint, payload dto.SkillUpdateRequest) (dto.SkillResponse, error)
	DeactivateSkill(ctx context.Context, id uint) error
}

type curriculumService struct {
	sections  repository.SectionRepository
	skills    repository.SkillRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCurriculumService constructs a CurriculumService instance.
func NewCurriculumService(sections repository.SectionRepository, skills repository.SkillRepository, validate *validator.Validate, logger zerolog.Logger) CurriculumService {
	return &curriculumService{
		sections:  sections,
		skills:    skills,
		validator: validate,
		logger:    logger.With().Str("component", "curriculum_service").Logger(),
	}
}

func (s *curriculumService) ListSections(ctx context.Context, includeInactive bool) ([]dto.SectionResponse, error) {
	sections, err := s.sections.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	return dto.NewSectionResponseSlice(sections), nil
}

func (s *curriculumService) CreateSection(ctx context.Context, payload dto.SectionCreateRequest) (dto.SectionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SectionResponse{}, err
	}

	section := models.Section{
		Name:         payload.Name,
		DisplayOrder: payload.DisplayOrder,
		Active:       true,
	}

	if err := s.sections.Create(ctx, &section); err != nil {
		return dto.SectionResponse{}, err
	}

	s.logger.Info().Uint("section_id", section.ID).Msg("section created")

	return dto.NewSectionResponse(section), nil
}

func (s *curriculumService) UpdateSection(ctx context.Context, id uint, payload dto.SectionUpdateRequest) (dto.SectionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SectionResponse{}, err
	}

	updates := map[string]interface{}{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.DisplayOrder != nil {
		updates["display_order"] = *payload.DisplayOrder
	}

	if len(updates) == 0 {
		section, err := s.sections.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.SectionResponse{}, ErrSectionNotFound
			}
			return dto.SectionResponse{}, err
		}
		return dto.NewSectionResponse(section), nil
	}

	section, err := s.sections.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SectionResponse{}, ErrSectionNotFound
		}
		return dto.SectionResponse{}, err
	}

	return dto.NewSectionResponse(section), nil
}

// DeactivateSection soft-deletes the section; its skills are deactivated with it.
func (s *curriculumService) DeactivateSection(ctx context.Context, id uint) error {
	if err := s.sections.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}

	s.logger.Info().Uint("section_id", id).Msg("section deactivated")

	return nil
}

func (s *curriculumService) ListSkills(ctx context.Context, filter repository.SkillFilter) ([]dto.SkillResponse, error) {
	skills, err := s.skills.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewSkillResponseSlice(skills), nil
}

func (s *curriculumService) CreateSkill(ctx context.Context, payload dto.SkillCreateRequest) (dto.SkillResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SkillResponse{}, err
	}

	section, err := s.sections.GetByID(ctx, payload.SectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SkillResponse{}, ErrSectionNotFound
		}
		return dto.SkillResponse{}, err
	}

	if !section.Active {
		return dto.SkillResponse{}, ErrSectionNotFound
	}

	skill := models.Skill{
		SectionID:    payload.SectionID,
		Title:        payload.Title,
		Description:  payload.Description,
		Difficulty:   payload.Difficulty,
		Points:       payload.Points,
		DisplayOrder: payload.DisplayOrder,
		Active:       true,
	}

	if err := s.skills.Create(ctx, &skill); err != nil {
		return dto.SkillResponse{}, err
	}

	s.logger.Info().Uint("skill_id", skill.ID).Uint("section_id", skill.SectionID).Msg("skill created")

	return dto.NewSkillResponse(skill), nil
}

func (s *curriculumService) UpdateSkill(ctx context.Context, id uint, payload dto.SkillUpdateRequest) (dto.SkillResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SkillResponse{}, err
	}

	updates := map[string]interface{}{}
	if payload.Title != nil {
		updates["title"] = *payload.Title
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Difficulty != nil {
		updates["difficulty"] = *payload.Difficulty
	}
	if payload.Points != nil {
		updates["points"] = *payload.Points
	}
	if payload.DisplayOrder != nil {
		updates["display_order"] = *payload.DisplayOrder
	}

	if len(updates) == 0 {
		skill, err := s.skills.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.SkillResponse{}, ErrSkillNotFound
			}
			return dto.SkillResponse{}, err
		}
		return dto.NewSkillResponse(skill), nil
	}

	skill, err := s.skills.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SkillResponse{}, ErrSkillNotFound
		}
		return dto.SkillResponse{}, err
	}

	return dto.NewSkillResponse(skill), nil
}

func (s *curriculumService) DeactivateSkill(ctx context.Context, id uint) error {
	if err := s.skills.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return err
	}

	s.logger.Info().Uint("skill_id", id).Msg("skill deactivated")

	return nil
}
