package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/models"
)

// SkillGrant is one direct grant within a bulk approval batch.
type SkillGrant struct {
	Skill        models.Skill
	TrainerID    uint
	TrainerNotes string
}

// CompletionRepository defines data operations for the completion ledger.
type CompletionRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Completion, error)
	ExistsForUserSkill(ctx context.Context, userID, skillID uint) (bool, error)
	GetByIDs(ctx context.Context, userID uint, ids []uint) ([]models.Completion, error)
	GrantBatch(ctx context.Context, userID uint, grants []SkillGrant) error
}

type completionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository instantiates the repository.
func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &completionRepository{db: db}
}

func (r *completionRepository) ListByUser(ctx context.Context, userID uint) ([]models.Completion, error) {
	var completions []models.Completion
	if err := r.db.WithContext(ctx).Model(&models.Completion{}).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&completions).Error; err != nil {
		return nil, err
	}

	return completions, nil
}

func (r *completionRepository) ExistsForUserSkill(ctx context.Context, userID, skillID uint) (bool, error) {
	var completion models.Completion
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("skill_id = ?", skillID).
		First(&completion).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	return false, err
}

func (r *completionRepository) GetByIDs(ctx context.Context, userID uint, ids []uint) ([]models.Completion, error) {
	var completions []models.Completion
	if err := r.db.WithContext(ctx).Model(&models.Completion{}).
		Preload("Skill").
		Where("user_id = ?", userID).
		Where("id IN ?", ids).
		Find(&completions).Error; err != nil {
		return nil, err
	}

	return completions, nil
}

// GrantBatch creates a completion plus a synthetic approved submission per
// grant, all inside one transaction: a failure partway rolls back the whole batch.
func (r *completionRepository) GrantBatch(ctx context.Context, userID uint, grants []SkillGrant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		for _, grant := range grants {
			completion := models.Completion{UserID: userID, SkillID: grant.Skill.ID}
			if err := tx.Create(&completion).Error; err != nil {
				return err
			}

			trainerID := grant.TrainerID
			decidedAt := now
			submission := models.Submission{
				UserID:       userID,
				SkillID:      grant.Skill.ID,
				Mode:         models.SubmissionModeClassRequest,
				Status:       models.SubmissionStatusApproved,
				TrainerNotes: grant.TrainerNotes,
				DecidedBy:    &trainerID,
				DecidedAt:    &decidedAt,
			}
			if err := tx.Create(&submission).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
