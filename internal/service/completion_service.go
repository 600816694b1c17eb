package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/dto"
	"github.com/pawsition/pawsition-api/internal/models"
	"github.com/pawsition/pawsition-api/internal/repository"
)

// CompletionService exposes the completion ledger and the trainer bulk grant.
type CompletionService interface {
	ListByUser(ctx context.Context, userID uint) ([]dto.CompletionResponse, error)
	AllTimeStats(ctx context.Context, userID uint) (dto.AllTimeStatsResponse, error)
	BulkApprove(ctx context.Context, payload dto.BulkApproveRequest, actor Actor) (dto.BulkApproveResponse, error)
}

type completionService struct {
	completions repository.CompletionRepository
	skills      repository.SkillRepository
	users       repository.UserRepository
	classes     repository.ClassRepository
	validator   *validator.Validate
	logger      zerolog.Logger
	now         func() time.Time
}

// NewCompletionService constructs a CompletionService instance.
func NewCompletionService(completions repository.CompletionRepository, skills repository.SkillRepository, users repository.UserRepository, classes repository.ClassRepository, validate *validator.Validate, logger zerolog.Logger) CompletionService {
	return &completionService{
		completions: completions,
		skills:      skills,
		users:       users,
		classes:     classes,
		validator:   validate,
		logger:      logger.With().Str("component", "completion_service").Logger(),
		now:         time.Now,
	}
}

func (s *completionService) ListByUser(ctx context.Context, userID uint) ([]dto.CompletionResponse, error) {
	completions, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.NewCompletionResponseSlice(completions), nil
}

// AllTimeStats sums every completion the user ever made, ignoring grade
// consumption. Deliberately distinct from the spendable progress figures.
func (s *completionService) AllTimeStats(ctx context.Context, userID uint) (dto.AllTimeStatsResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AllTimeStatsResponse{}, ErrUserNotFound
		}
		return dto.AllTimeStatsResponse{}, err
	}

	completions, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return dto.AllTimeStatsResponse{}, err
	}

	stats := dto.AllTimeStatsResponse{SectionCounts: map[uint]int{}}
	for _, completion := range completions {
		stats.TotalPoints += completion.Skill.Points
		stats.TotalSkills++
		stats.SectionCounts[completion.Skill.SectionID]++
	}

	return stats, nil
}

// BulkApprove directly grants a list of skills, skipping any skill already
// completed or not found. All surviving grants commit in one transaction.
// This path bypasses the pending-submission check entirely.
func (s *completionService) BulkApprove(ctx context.Context, payload dto.BulkApproveRequest, actor Actor) (dto.BulkApproveResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.BulkApproveResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, payload.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BulkApproveResponse{}, ErrUserNotFound
		}
		return dto.BulkApproveResponse{}, err
	}

	if err := s.authorizeForMember(ctx, actor, payload.UserID); err != nil {
		return dto.BulkApproveResponse{}, err
	}

	skills, err := s.skills.GetActiveByIDs(ctx, payload.SkillIDs)
	if err != nil {
		return dto.BulkApproveResponse{}, err
	}

	skillsByID := make(map[uint]models.Skill, len(skills))
	for _, skill := range skills {
		skillsByID[skill.ID] = skill
	}

	result := dto.BulkApproveResponse{Skills: []string{}}
	var grants []repository.SkillGrant

	for _, skillID := range payload.SkillIDs {
		skill, ok := skillsByID[skillID]
		if !ok {
			continue
		}

		completed, err := s.completions.ExistsForUserSkill(ctx, payload.UserID, skillID)
		if err != nil {
			return dto.BulkApproveResponse{}, err
		}
		if completed {
			continue
		}

		grants = append(grants, repository.SkillGrant{
			Skill:        skill,
			TrainerID:    actor.ID,
			TrainerNotes: payload.Notes,
		})
		result.ApprovedCount++
		result.TotalPoints += skill.Points
		result.Skills = append(result.Skills, skill.Title)
	}

	if len(grants) > 0 {
		if err := s.completions.GrantBatch(ctx, payload.UserID, grants); err != nil {
			return dto.BulkApproveResponse{}, err
		}
	}

	s.logger.Info().
		Uint("user_id", payload.UserID).
		Int("approved_count", result.ApprovedCount).
		Int("total_points", result.TotalPoints).
		Msg("bulk approval applied")

	return result, nil
}

func (s *completionService) authorizeForMember(ctx context.Context, actor Actor, memberID uint) error {
	if actor.IsAdmin() {
		return nil
	}

	memberIDs, err := s.classes.MemberUserIDs(ctx, actor.ID)
	if err != nil {
		return err
	}

	for _, id := range memberIDs {
		if id == memberID {
			return nil
		}
	}

	return ErrOutsideTrainerClasses
}
