package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawsition/pawsition-api/internal/models"
)

// SkillFilter narrows skill listing queries.
type SkillFilter struct {
	SectionID       *uint
	IncludeInactive bool
}

// SkillRepository defines data operations for skills.
type SkillRepository interface {
	List(ctx context.Context, filter SkillFilter) ([]models.Skill, error)
	GetByID(ctx context.Context, id uint) (models.Skill, error)
	GetActiveByIDs(ctx context.Context, ids []uint) ([]models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Skill, error)
	Deactivate(ctx context.Context, id uint) error
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository instantiates the repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) List(ctx context.Context, filter SkillFilter) ([]models.Skill, error) {
	query := r.db.WithContext(ctx).Model(&models.Skill{})

	if filter.SectionID != nil {
		query = query.Where("section_id = ?", *filter.SectionID)
	}

	if !filter.IncludeInactive {
		query = query.Where("active = ?", true)
	}

	var skills []models.Skill
	if err := query.Order("display_order ASC, id ASC").Find(&skills).Error; err != nil {
		return nil, err
	}

	return skills, nil
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		return models.Skill{}, err
	}

	return skill, nil
}

func (r *skillRepository) GetActiveByIDs(ctx context.Context, ids []uint) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("active = ?", true).
		Find(&skills).Error; err != nil {
		return nil, err
	}

	return skills, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Skill, error) {
	update := r.db.WithContext(ctx).Model(&models.Skill{}).
		Where("id = ?", id).
		Updates(updates)
	if update.Error != nil {
		return models.Skill{}, update.Error
	}

	if update.RowsAffected == 0 {
		return models.Skill{}, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *skillRepository) Deactivate(ctx context.Context, id uint) error {
	update := r.db.WithContext(ctx).Model(&models.Skill{}).
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
