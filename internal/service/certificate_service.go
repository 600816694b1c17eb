package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/dto"
	"github.com/pawsition/pawsition-api/internal/models"
	"github.com/pawsition/pawsition-api/internal/repository"
)

var (
	// ErrCertificateNotFound indicates the referenced certificate does not exist.
	ErrCertificateNotFound = errors.New("certificate not found")
	// ErrCertificateExists indicates a certificate was already requested for the grade.
	ErrCertificateExists = errors.New("certificate already requested")
)

const publicCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const publicCodeLength = 8

// CertificateService manages certificate requests for achieved grades.
type CertificateService interface {
	ListByUser(ctx context.Context, userID uint) ([]dto.CertificateResponse, error)
	Create(ctx context.Context, payload dto.CertificateCreateRequest) (dto.CertificateResponse, error)
	Approve(ctx context.Context, id uint) (dto.CertificateResponse, error)
}

type certificateService struct {
	certificates repository.CertificateRepository
	grades       repository.GradeRepository
	validator    *validator.Validate
	logger       zerolog.Logger
}

// NewCertificateService constructs a CertificateService instance.
func NewCertificateService(certificates repository.CertificateRepository, grades repository.GradeRepository, validate *validator.Validate, logger zerolog.Logger) CertificateService {
	return &certificateService{
		certificates: certificates,
		grades:       grades,
		validator:    validate,
		logger:       logger.With().Str("component", "certificate_service").Logger(),
	}
}

func (s *certificateService) ListByUser(ctx context.Context, userID uint) ([]dto.CertificateResponse, error) {
	certificates, err := s.certificates.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.NewCertificateResponseSlice(certificates), nil
}

// Create opens a pending certificate request for an already achieved grade.
func (s *certificateService) Create(ctx context.Context, payload dto.CertificateCreateRequest) (dto.CertificateResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CertificateResponse{}, err
	}

	grade, err := s.grades.GetByUserAndNumber(ctx, payload.UserID, payload.GradeNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CertificateResponse{}, ErrGradeNotFound
		}
		return dto.CertificateResponse{}, err
	}

	if _, err := s.certificates.GetByGradeID(ctx, grade.ID); err == nil {
		return dto.CertificateResponse{}, ErrCertificateExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CertificateResponse{}, err
	}

	code, err := newPublicCode()
	if err != nil {
		return dto.CertificateResponse{}, err
	}

	certificate := models.Certificate{
		GradeID:    grade.ID,
		PublicCode: code,
		Status:     models.CertificateStatusPending,
		Grade:      grade,
	}

	if err := s.certificates.Create(ctx, &certificate); err != nil {
		return dto.CertificateResponse{}, err
	}

	s.logger.Info().
		Uint("certificate_id", certificate.ID).
		Uint("grade_id", grade.ID).
		Msg("certificate requested")

	return dto.NewCertificateResponse(certificate), nil
}

func (s *certificateService) Approve(ctx context.Context, id uint) (dto.CertificateResponse, error) {
	certificate, err := s.certificates.UpdateStatus(ctx, id, models.CertificateStatusApproved)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CertificateResponse{}, ErrCertificateNotFound
		}
		return dto.CertificateResponse{}, err
	}

	s.logger.Info().Uint("certificate_id", id).Msg("certificate approved")

	return dto.NewCertificateResponse(certificate), nil
}

// newPublicCode draws an 8-character uppercase base36 code. Collisions are not
// retried; uniqueness holds per grade, not per code.
func newPublicCode() (string, error) {
	code := make([]byte, publicCodeLength)
	max := big.NewInt(int64(len(publicCodeAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = publicCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}
