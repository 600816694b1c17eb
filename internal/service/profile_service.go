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
	// ErrProfileNotFound indicates the user has not saved a profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrClassNotFound indicates the referenced class does not exist or is inactive.
	ErrClassNotFound = errors.New("class not found")
)

// ProfileService manages member profiles.
type ProfileService interface {
	Get(ctx context.Context, userID uint) (dto.ProfileResponse, error)
	Save(ctx context.Context, userID uint, payload dto.ProfileSaveRequest) (dto.ProfileResponse, error)
}

type profileService struct {
	profiles  repository.ProfileRepository
	classes   repository.ClassRepository
	users     repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewProfileService constructs a ProfileService instance.
func NewProfileService(profiles repository.ProfileRepository, classes repository.ClassRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) ProfileService {
	return &profileService{
		profiles:  profiles,
		classes:   classes,
		users:     users,
		validator: validate,
		logger:    logger.With().Str("component", "profile_service").Logger(),
	}
}

func (s *profileService) Get(ctx context.Context, userID uint) (dto.ProfileResponse, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProfileResponse{}, ErrProfileNotFound
		}
		return dto.ProfileResponse{}, err
	}

	return dto.NewProfileResponse(profile), nil
}

// Save upserts the profile; the row is created lazily on first save.
func (s *profileService) Save(ctx context.Context, userID uint, payload dto.ProfileSaveRequest) (dto.ProfileResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ProfileResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProfileResponse{}, ErrUserNotFound
		}
		return dto.ProfileResponse{}, err
	}

	if payload.ClassID != nil {
		class, err := s.classes.GetByID(ctx, *payload.ClassID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.ProfileResponse{}, ErrClassNotFound
			}
			return dto.ProfileResponse{}, err
		}
		if !class.Active {
			return dto.ProfileResponse{}, ErrClassNotFound
		}
	}

	profile := models.Profile{
		UserID:   userID,
		DogName:  payload.DogName,
		Owners:   payload.Owners,
		PhotoURL: payload.PhotoURL,
		Notes:    payload.Notes,
		ClassID:  payload.ClassID,
	}

	if err := s.profiles.Upsert(ctx, &profile); err != nil {
		return dto.ProfileResponse{}, err
	}

	saved, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	s.logger.Info().Uint("user_id", userID).Msg("profile saved")

	return dto.NewProfileResponse(saved), nil
}
