package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/models"
)

// GradeRepository defines data operations for the grade ledger.
type GradeRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Grade, error)
	GetByUserAndNumber(ctx context.Context, userID uint, gradeNumber int) (models.Grade, error)
	LastGradeNumber(ctx context.Context, userID uint) (int, error)
	ConsumedCompletionIDs(ctx context.Context, userID uint) ([]uint, error)
	AchieveWithCompletions(ctx context.Context, grade *models.Grade, completionIDs []uint) error
}

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository instantiates the repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) ListByUser(ctx context.Context, userID uint) ([]models.Grade, error) {
	var grades []models.Grade
	if err := r.db.WithContext(ctx).Model(&models.Grade{}).
		Where("user_id = ?", userID).
		Order("grade_number ASC").
		Find(&grades).Error; err != nil {
		return nil, err
	}

	return grades, nil
}

func (r *gradeRepository) GetByUserAndNumber(ctx context.Context, userID uint, gradeNumber int) (models.Grade, error) {
	var grade models.Grade
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("grade_number = ?", gradeNumber).
		First(&grade).Error; err != nil {
		return models.Grade{}, err
	}

	return grade, nil
}

func (r *gradeRepository) LastGradeNumber(ctx context.Context, userID uint) (int, error) {
	var last *int
	if err := r.db.WithContext(ctx).Model(&models.Grade{}).
		Where("user_id = ?", userID).
		Select("MAX(grade_number)").
		Scan(&last).Error; err != nil {
		return 0, err
	}

	if last == nil {
		return 0, nil
	}

	return *last, nil
}

// ConsumedCompletionIDs returns the ids of every completion already linked to
// any grade of the user, across all historical grades.
func (r *gradeRepository) ConsumedCompletionIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.GradeCompletion{}).
		Joins("JOIN grades ON grades.id = grade_completions.grade_id").
		Where("grades.user_id = ?", userID).
		Pluck("grade_completions.completion_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// AchieveWithCompletions inserts the grade row and one grade-completion link
// per supplied completion id in one transaction. Any failure rolls back the
// whole achievement attempt.
func (r *gradeRepository) AchieveWithCompletions(ctx context.Context, grade *models.Grade, completionIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(grade).Error; err != nil {
			return err
		}

		for _, completionID := range completionIDs {
			link := models.GradeCompletion{GradeID: grade.ID, CompletionID: completionID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
