package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pawsition/pawsition-api/internal/models"
)

// ProfileRepository defines data operations for member profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository instantiates the repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// Upsert writes the profile in a single conditional statement keyed on user_id,
// closing the read-then-write gap of a separate existence check.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"dog_name", "owners", "photo_url", "notes", "class_id", "updated_at"}),
	}).Create(profile).Error
}
