package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/dto"
	"github.com/pawsition/pawsition-api/internal/models"
	"github.com/pawsition/pawsition-api/internal/repository"
)

var (
	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// UserService manages user accounts. All mutations are admin only,
// enforced at the routing layer.
type UserService interface {
	List(ctx context.Context, filter repository.UserFilter) ([]dto.UserResponse, error)
	Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error)
	Deactivate(ctx context.Context, id uint) error
	ResetPassword(ctx context.Context, id uint, payload dto.UserResetPasswordRequest) error
}

type userService struct {
	users      repository.UserRepository
	validator  *validator.Validate
	bcryptCost int
	logger     zerolog.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(users repository.UserRepository, validate *validator.Validate, bcryptCost int, logger zerolog.Logger) UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return &userService{
		users:      users,
		validator:  validate,
		bcryptCost: bcryptCost,
		logger:     logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) List(ctx context.Context, filter repository.UserFilter) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewUserResponseSlice(users), nil
}

func (s *userService) Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return dto.UserResponse{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), s.bcryptCost)
	if err != nil {
		return dto.UserResponse{}, err
	}

	user := models.User{
		Email:        email,
		Username:     payload.Username,
		PasswordHash: string(hash),
		Role:         payload.Role,
		Active:       true,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", user.Role).Msg("user created")

	return dto.NewUserResponse(user), nil
}

func (s *userService) Deactivate(ctx context.Context, id uint) error {
	if err := s.users.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.logger.Info().Uint("user_id", id).Msg("user deactivated")

	return nil
}

func (s *userService) ResetPassword(ctx context.Context, id uint, payload dto.UserResetPasswordRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), s.bcryptCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, id, string(hash)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.logger.Info().Uint("user_id", id).Msg("password reset")

	return nil
}
