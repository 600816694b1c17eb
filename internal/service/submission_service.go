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

var (
	// ErrSubmissionNotFound indicates the referenced submission does not exist.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrSkillAlreadyCompleted indicates the member already holds a completion for the skill.
	ErrSkillAlreadyCompleted = errors.New("skill already completed")
	// ErrSubmissionPending indicates another open submission exists for the pair.
	ErrSubmissionPending = errors.New("submission already pending")
	// ErrSubmissionDecided indicates the submission is no longer open.
	ErrSubmissionDecided = errors.New("submission already decided")
	// ErrOutsideTrainerClasses indicates the member is not enrolled in any class owned by the trainer.
	ErrOutsideTrainerClasses = errors.New("member not in trainer's classes")
)

// SubmissionService orchestrates the skill-claim workflow.
type SubmissionService interface {
	List(ctx context.Context, filter dto.SubmissionFilter, actor Actor) ([]dto.SubmissionResponse, error)
	Create(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error)
	Decide(ctx context.Context, id uint, payload dto.SubmissionDecisionRequest, actor Actor) (dto.SubmissionResponse, error)
}

type submissionService struct {
	submissions repository.SubmissionRepository
	completions repository.CompletionRepository
	skills      repository.SkillRepository
	users       repository.UserRepository
	classes     repository.ClassRepository
	validator   *validator.Validate
	logger      zerolog.Logger
	now         func() time.Time
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(submissions repository.SubmissionRepository, completions repository.CompletionRepository, skills repository.SkillRepository, users repository.UserRepository, classes repository.ClassRepository, validate *validator.Validate, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		submissions: submissions,
		completions: completions,
		skills:      skills,
		users:       users,
		classes:     classes,
		validator:   validate,
		logger:      logger.With().Str("component", "submission_service").Logger(),
		now:         time.Now,
	}
}

// List returns submissions matching the filter. Trainers only see submissions
// from members enrolled in their classes; admins see everything.
func (s *submissionService) List(ctx context.Context, filter dto.SubmissionFilter, actor Actor) ([]dto.SubmissionResponse, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	repoFilter := repository.SubmissionFilter{
		UserID:  filter.UserID,
		SkillID: filter.SkillID,
		Status:  filter.Status,
	}

	if actor.Role == models.RoleTrainer {
		memberIDs, err := s.classes.MemberUserIDs(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if memberIDs == nil {
			memberIDs = []uint{}
		}
		repoFilter.UserIDs = memberIDs
	}

	if actor.Role == models.RoleMember {
		repoFilter.UserID = &actor.ID
	}

	submissions, err := s.submissions.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	return dto.NewSubmissionResponseSlice(submissions), nil
}

func (s *submissionService) Create(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, payload.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrUserNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	skill, err := s.skills.GetByID(ctx, payload.SkillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrSkillNotFound
		}
		return dto.SubmissionResponse{}, err
	}
	if !skill.Active {
		return dto.SubmissionResponse{}, ErrSkillNotFound
	}

	completed, err := s.completions.ExistsForUserSkill(ctx, payload.UserID, payload.SkillID)
	if err != nil {
		return dto.SubmissionResponse{}, err
	}
	if completed {
		return dto.SubmissionResponse{}, ErrSkillAlreadyCompleted
	}

	if _, err := s.submissions.FindOpen(ctx, payload.UserID, payload.SkillID); err == nil {
		return dto.SubmissionResponse{}, ErrSubmissionPending
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.SubmissionResponse{}, err
	}

	submission := models.Submission{
		UserID:      payload.UserID,
		SkillID:     payload.SkillID,
		Mode:        payload.Mode,
		Status:      models.InitialStatusForMode(payload.Mode),
		VideoURL:    payload.VideoURL,
		MemberNotes: payload.MemberNotes,
	}

	if err := s.submissions.Create(ctx, &submission); err != nil {
		return dto.SubmissionResponse{}, err
	}

	created, err := s.submissions.GetByID(ctx, submission.ID)
	if err != nil {
		return dto.SubmissionResponse{}, err
	}

	s.logger.Info().
		Uint("submission_id", created.ID).
		Uint("user_id", created.UserID).
		Uint("skill_id", created.SkillID).
		Str("status", created.Status).
		Msg("submission created")

	return dto.NewSubmissionResponse(created), nil
}

// Decide moves an open submission to approved or rejected. Approval creates
// the completion in the same transaction; re-approval of an already completed
// skill is idempotent.
func (s *submissionService) Decide(ctx context.Context, id uint, payload dto.SubmissionDecisionRequest, actor Actor) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrSubmissionNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	if !submission.IsOpen() {
		return dto.SubmissionResponse{}, ErrSubmissionDecided
	}

	if err := s.authorizeForMember(ctx, actor, submission.UserID); err != nil {
		return dto.SubmissionResponse{}, err
	}

	decidedAt := s.now().UTC()
	submission.Status = payload.Status
	submission.DecidedBy = &actor.ID
	submission.DecidedAt = &decidedAt
	if payload.TrainerNotes != nil {
		submission.TrainerNotes = *payload.TrainerNotes
	}

	approved := payload.Status == models.SubmissionStatusApproved
	if err := s.submissions.Decide(ctx, &submission, approved); err != nil {
		return dto.SubmissionResponse{}, err
	}

	decided, err := s.submissions.GetByID(ctx, submission.ID)
	if err != nil {
		return dto.SubmissionResponse{}, err
	}

	s.logger.Info().
		Uint("submission_id", decided.ID).
		Str("status", decided.Status).
		Uint("decided_by", actor.ID).
		Msg("submission decided")

	return dto.NewSubmissionResponse(decided), nil
}

// authorizeForMember allows admins everywhere and trainers only for members
// enrolled in one of their classes.
func (s *submissionService) authorizeForMember(ctx context.Context, actor Actor, memberID uint) error {
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
