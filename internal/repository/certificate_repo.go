package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/models"
)

// CertificateRepository defines data operations for certificate requests.
type CertificateRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Certificate, error)
	GetByID(ctx context.Context, id uint) (models.Certificate, error)
	GetByGradeID(ctx context.Context, gradeID uint) (models.Certificate, error)
	Create(ctx context.Context, certificate *models.Certificate) error
	UpdateStatus(ctx context.Context, id uint, status string) (models.Certificate, error)
}

type certificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository instantiates the repository.
func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Certificate{}).Preload("Grade")
}

func (r *certificateRepository) ListByUser(ctx context.Context, userID uint) ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := r.baseQuery(ctx).
		Joins("JOIN grades ON grades.id = certificates.grade_id").
		Where("grades.user_id = ?", userID).
		Order("certificates.created_at DESC").
		Find(&certificates).Error; err != nil {
		return nil, err
	}

	return certificates, nil
}

func (r *certificateRepository) GetByID(ctx context.Context, id uint) (models.Certificate, error) {
	var certificate models.Certificate
	if err := r.baseQuery(ctx).First(&certificate, id).Error; err != nil {
		return models.Certificate{}, err
	}

	return certificate, nil
}

func (r *certificateRepository) GetByGradeID(ctx context.Context, gradeID uint) (models.Certificate, error) {
	var certificate models.Certificate
	if err := r.baseQuery(ctx).Where("certificates.grade_id = ?", gradeID).First(&certificate).Error; err != nil {
		return models.Certificate{}, err
	}

	return certificate, nil
}

func (r *certificateRepository) Create(ctx context.Context, certificate *models.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

func (r *certificateRepository) UpdateStatus(ctx context.Context, id uint, status string) (models.Certificate, error) {
	update := r.db.WithContext(ctx).Model(&models.Certificate{}).
		Where("id = ?", id).
		Update("status", status)
	if update.Error != nil {
		return models.Certificate{}, update.Error
	}

	if update.RowsAffected == 0 {
		return models.Certificate{}, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}
