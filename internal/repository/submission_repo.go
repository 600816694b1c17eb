package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/models"
)

// SubmissionFilter narrows submission queries.
type SubmissionFilter struct {
	UserID  *uint
	SkillID *uint
	Status  *string
	UserIDs []uint
}

// SubmissionRepository defines data operations for submissions.
type SubmissionRepository interface {
	List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error)
	GetByID(ctx context.Context, id uint) (models.Submission, error)
	FindOpen(ctx context.Context, userID, skillID uint) (models.Submission, error)
	Create(ctx context.Context, submission *models.Submission) error
	Decide(ctx context.Context, submission *models.Submission, approved bool) error
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository instantiates the repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Submission{}).Preload("Skill")
}

func (r *submissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	query := r.baseQuery(ctx)

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	if filter.SkillID != nil {
		query = query.Where("skill_id = ?", *filter.SkillID)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if filter.UserIDs != nil {
		query = query.Where("user_id IN ?", filter.UserIDs)
	}

	var submissions []models.Submission
	if err := query.Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id uint) (models.Submission, error) {
	var submission models.Submission
	if err := r.baseQuery(ctx).First(&submission, id).Error; err != nil {
		return models.Submission{}, err
	}

	return submission, nil
}

func (r *submissionRepository) FindOpen(ctx context.Context, userID, skillID uint) (models.Submission, error) {
	var submission models.Submission
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("skill_id = ?", skillID).
		Where("status IN ?", []string{models.SubmissionStatusRequested, models.SubmissionStatusSubmitted}).
		First(&submission).Error; err != nil {
		return models.Submission{}, err
	}

	return submission, nil
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// Decide persists the submission status change and, on approval, the matching
// completion in one transaction. Re-approving an already completed skill is a
// silent no-op for the completion insert.
func (r *submissionRepository) Decide(ctx context.Context, submission *models.Submission, approved bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(submission).Error; err != nil {
			return err
		}

		if !approved {
			return nil
		}

		var existing models.Completion
		err := tx.Where("user_id = ?", submission.UserID).
			Where("skill_id = ?", submission.SkillID).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		completion := models.Completion{UserID: submission.UserID, SkillID: submission.SkillID}
		return tx.Create(&completion).Error
	})
}
