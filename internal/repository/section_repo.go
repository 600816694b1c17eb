package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/models"
)

// SectionRepository defines data operations for curriculum sections.
type SectionRepository interface {
	List(ctx context.Context, includeInactive bool) ([]models.Section, error)
	GetByID(ctx context.Context, id uint) (models.Section, error)
	Create(ctx context.Context, section *models.Section) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Section, error)
	Deactivate(ctx context.Context, id uint) error
}

type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository instantiates the repository.
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) List(ctx context.Context, includeInactive bool) ([]models.Section, error) {
	query := r.db.WithContext(ctx).Model(&models.Section{}).
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		})

	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var sections []models.Section
	if err := query.Order("display_order ASC, id ASC").Find(&sections).Error; err != nil {
		return nil, err
	}

	return sections, nil
}

func (r *sectionRepository) GetByID(ctx context.Context, id uint) (models.Section, error) {
	var section models.Section
	if err := r.db.WithContext(ctx).
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		First(&section, id).Error; err != nil {
		return models.Section{}, err
	}

	return section, nil
}

func (r *sectionRepository) Create(ctx context.Context, section *models.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *sectionRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Section, error) {
	update := r.db.WithContext(ctx).Model(&models.Section{}).
		Where("id = ?", id).
		Updates(updates)
	if update.Error != nil {
		return models.Section{}, update.Error
	}

	if update.RowsAffected == 0 {
		return models.Section{}, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

// Deactivate soft-deletes the section and cascades to its skills in one transaction.
func (r *sectionRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&models.Section{}).
			Where("id = ?", id).
			Where("active = ?", true).
			Update("active", false)
		if update.Error != nil {
			return update.Error
		}

		if update.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&models.Skill{}).
			Where("section_id = ?", id).
			Update("active", false).Error
	})
}
