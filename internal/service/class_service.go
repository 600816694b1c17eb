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

// ErrNotATrainer indicates the referenced owner cannot own classes.
var ErrNotATrainer = errors.New("class owner must be a trainer")

// ClassService manages training classes.
type ClassService interface {
	List(ctx context.Context, filter repository.ClassFilter) ([]dto.ClassResponse, error)
	Create(ctx context.Context, payload dto.ClassCreateRequest) (dto.ClassResponse, error)
	Update(ctx context.Context, id uint, payload dto.ClassUpdateRequest) (dto.ClassResponse, error)
	Deactivate(ctx context.Context, id uint) error
}

type classService struct {
	classes   repository.ClassRepository
	users     repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewClassService constructs a ClassService instance.
func NewClassService(classes repository.ClassRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) ClassService {
	return &classService{
		classes:   classes,
		users:     users,
		validator: validate,
		logger:    logger.With().Str("component", "class_service").Logger(),
	}
}

func (s *classService) List(ctx context.Context, filter repository.ClassFilter) ([]dto.ClassResponse, error) {
	classes, err := s.classes.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewClassResponseSlice(classes), nil
}

func (s *classService) Create(ctx context.Context, payload dto.ClassCreateRequest) (dto.ClassResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, err
	}

	if err := s.checkTrainer(ctx, payload.TrainerID); err != nil {
		return dto.ClassResponse{}, err
	}

	class := models.Class{
		Name:      payload.Name,
		DayOfWeek: payload.DayOfWeek,
		TimeSlot:  payload.TimeSlot,
		TrainerID: payload.TrainerID,
		Active:    true,
	}

	if err := s.classes.Create(ctx, &class); err != nil {
		return dto.ClassResponse{}, err
	}

	s.logger.Info().Uint("class_id", class.ID).Uint("trainer_id", class.TrainerID).Msg("class created")

	return dto.NewClassResponse(class), nil
}

func (s *classService) Update(ctx context.Context, id uint, payload dto.ClassUpdateRequest) (dto.ClassResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, err
	}

	updates := map[string]interface{}{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.DayOfWeek != nil {
		updates["day_of_week"] = *payload.DayOfWeek
	}
	if payload.TimeSlot != nil {
		updates["time_slot"] = *payload.TimeSlot
	}
	if payload.TrainerID != nil {
		if err := s.checkTrainer(ctx, *payload.TrainerID); err != nil {
			return dto.ClassResponse{}, err
		}
		updates["trainer_id"] = *payload.TrainerID
	}

	if len(updates) == 0 {
		class, err := s.classes.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.ClassResponse{}, ErrClassNotFound
			}
			return dto.ClassResponse{}, err
		}
		return dto.NewClassResponse(class), nil
	}

	class, err := s.classes.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClassResponse{}, ErrClassNotFound
		}
		return dto.ClassResponse{}, err
	}

	return dto.NewClassResponse(class), nil
}

func (s *classService) Deactivate(ctx context.Context, id uint) error {
	if err := s.classes.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}

	s.logger.Info().Uint("class_id", id).Msg("class deactivated")

	return nil
}

func (s *classService) checkTrainer(ctx context.Context, trainerID uint) error {
	trainer, err := s.users.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !trainer.CanTrain() {
		return ErrNotATrainer
	}

	return nil
}
