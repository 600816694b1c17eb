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
	// ErrGradeAlreadyAchieved indicates the user already holds the grade number.
	ErrGradeAlreadyAchieved = errors.New("grade already achieved")
	// ErrGradeNotFound indicates the referenced grade has not been achieved.
	ErrGradeNotFound = errors.New("grade not found")
	// ErrCompletionUnavailable indicates a supplied completion does not belong
	// to the user or was already spent on an earlier grade.
	ErrCompletionUnavailable = errors.New("completion not available")
)

// GradeService manages the grade ledger.
type GradeService interface {
	ListByUser(ctx context.Context, userID uint) ([]dto.GradeResponse, error)
	Achieve(ctx context.Context, payload dto.GradeAchieveRequest) (dto.GradeResponse, error)
}

type gradeService struct {
	grades      repository.GradeRepository
	completions repository.CompletionRepository
	users       repository.UserRepository
	validator   *validator.Validate
	logger      zerolog.Logger
	now         func() time.Time
}

// NewGradeService constructs a GradeService instance.
func NewGradeService(grades repository.GradeRepository, completions repository.CompletionRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) GradeService {
	return &gradeService{
		grades:      grades,
		completions: completions,
		users:       users,
		validator:   validate,
		logger:      logger.With().Str("component", "grade_service").Logger(),
		now:         time.Now,
	}
}

func (s *gradeService) ListByUser(ctx context.Context, userID uint) ([]dto.GradeResponse, error) {
	grades, err := s.grades.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.NewGradeResponseSlice(grades), nil
}

// Achieve records a grade and spends the supplied completions. Any unachieved
// grade number 1..12 is accepted; sequential order is not enforced. The grade
// row and its completion links commit in one transaction.
func (s *gradeService) Achieve(ctx context.Context, payload dto.GradeAchieveRequest) (dto.GradeResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.GradeResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, payload.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GradeResponse{}, ErrUserNotFound
		}
		return dto.GradeResponse{}, err
	}

	if _, err := s.grades.GetByUserAndNumber(ctx, payload.UserID, payload.GradeNumber); err == nil {
		return dto.GradeResponse{}, ErrGradeAlreadyAchieved
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.GradeResponse{}, err
	}

	owned, err := s.completions.GetByIDs(ctx, payload.UserID, payload.CompletionIDs)
	if err != nil {
		return dto.GradeResponse{}, err
	}
	if len(owned) != len(payload.CompletionIDs) {
		return dto.GradeResponse{}, ErrCompletionUnavailable
	}

	consumedIDs, err := s.grades.ConsumedCompletionIDs(ctx, payload.UserID)
	if err != nil {
		return dto.GradeResponse{}, err
	}
	consumed := make(map[uint]struct{}, len(consumedIDs))
	for _, id := range consumedIDs {
		consumed[id] = struct{}{}
	}
	for _, id := range payload.CompletionIDs {
		if _, used := consumed[id]; used {
			return dto.GradeResponse{}, ErrCompletionUnavailable
		}
	}

	grade := models.Grade{
		UserID:         payload.UserID,
		GradeNumber:    payload.GradeNumber,
		PointsRequired: models.PointsRequiredFor(payload.GradeNumber),
		AchievedAt:     s.now().UTC(),
	}

	if err := s.grades.AchieveWithCompletions(ctx, &grade, payload.CompletionIDs); err != nil {
		return dto.GradeResponse{}, err
	}

	s.logger.Info().
		Uint("user_id", grade.UserID).
		Int("grade_number", grade.GradeNumber).
		Int("completions_spent", len(payload.CompletionIDs)).
		Msg("grade achieved")

	return dto.NewGradeResponse(grade), nil
}
