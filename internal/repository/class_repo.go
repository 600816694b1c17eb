package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/models"
)

// ClassFilter narrows class listing queries.
type ClassFilter struct {
	TrainerID       *uint
	IncludeInactive bool
}

// ClassRepository defines data operations for classes.
type ClassRepository interface {
	List(ctx context.Context, filter ClassFilter) ([]models.Class, error)
	GetByID(ctx context.Context, id uint) (models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Class, error)
	Deactivate(ctx context.Context, id uint) error
	MemberUserIDs(ctx context.Context, trainerID uint) ([]uint, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository instantiates the repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) List(ctx context.Context, filter ClassFilter) ([]models.Class, error) {
	query := r.db.WithContext(ctx).Model(&models.Class{})

	if filter.TrainerID != nil {
		query = query.Where("trainer_id = ?", *filter.TrainerID)
	}

	if !filter.IncludeInactive {
		query = query.Where("active = ?", true)
	}

	var classes []models.Class
	if err := query.Order("name ASC").Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) GetByID(ctx context.Context, id uint) (models.Class, error) {
	var class models.Class
	if err := r.db.WithContext(ctx).First(&class, id).Error; err != nil {
		return models.Class{}, err
	}

	return class, nil
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Class, error) {
	update := r.db.WithContext(ctx).Model(&models.Class{}).
		Where("id = ?", id).
		Updates(updates)
	if update.Error != nil {
		return models.Class{}, update.Error
	}

	if update.RowsAffected == 0 {
		return models.Class{}, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *classRepository) Deactivate(ctx context.Context, id uint) error {
	update := r.db.WithContext(ctx).Model(&models.Class{}).
		Where("id = ?", id).
		Where("active = ?", true).
		Update("active", false)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// MemberUserIDs lists the user ids of members whose profile is assigned to any
// class owned by the trainer. Used to scope trainer decisions.
func (r *classRepository) MemberUserIDs(ctx context.Context, trainerID uint) ([]uint, error) {
	var userIDs []uint
	err := r.db.WithContext(ctx).Model(&models.Profile{}).
		Joins("JOIN classes ON classes.id = profiles.class_id").
		Where("classes.trainer_id = ?", trainerID).
		Where("classes.active = ?", true).
		Pluck("profiles.user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}

	return userIDs, nil
}
