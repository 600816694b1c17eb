package dto

import "github.com/pawsition/pawsition-api/internal/models"

// SectionCreateRequest describes the payload for creating a curriculum section.
type SectionCreateRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// SectionUpdateRequest describes a partial section update.
type SectionUpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}

// SkillCreateRequest describes the payload for creating a skill.
type SkillCreateRequest struct {
	SectionID    uint   `json:"section_id" validate:"required,gt=0"`
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description"`
	Difficulty   int    `json:"difficulty" validate:"required,gte=1,lte=5"`
	Points       int    `json:"points" validate:"required,oneof=2 5 10 15"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// SkillUpdateRequest describes a partial skill update.
type SkillUpdateRequest struct {
	Title        *string `json:"title" validate:"omitempty,max=255"`
	Description  *string `json:"description"`
	Difficulty   *int    `json:"difficulty" validate:"omitempty,gte=1,lte=5"`
	Points       *int    `json:"points" validate:"omitempty,oneof=2 5 10 15"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}

// SkillResponse is the API view of a skill.
type SkillResponse struct {
	ID           uint   `json:"id"`
	SectionID    uint   `json:"section_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Difficulty   int    `json:"difficulty"`
	Points       int    `json:"points"`
	DisplayOrder int    `json:"display_order"`
	Active       bool   `json:"active"`
}

// SectionResponse is the API view of a section and its skills.
type SectionResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	DisplayOrder int             `json:"display_order"`
	Active       bool            `json:"active"`
	Skills       []SkillResponse `json:"skills"`
}

// NewSkillResponse maps a skill model to its API representation.
func NewSkillResponse(skill models.Skill) SkillResponse {
	return SkillResponse{
		ID:           skill.ID,
		SectionID:    skill.SectionID,
		Title:        skill.Title,
		Description:  skill.Description,
		Difficulty:   skill.Difficulty,
		Points:       skill.Points,
		DisplayOrder: skill.DisplayOrder,
		Active:       skill.Active,
	}
}

// NewSkillResponseSlice maps a slice of skills.
func NewSkillResponseSlice(skills []models.Skill) []SkillResponse {
	responses := make([]SkillResponse, 0, len(skills))
	for _, skill := range skills {
		responses = append(responses, NewSkillResponse(skill))
	}
	return responses
}

// NewSectionResponse maps a section model, including nested skills.
func NewSectionResponse(section models.Section) SectionResponse {
	return SectionResponse{
		ID:           section.ID,
		Name:         section.Name,
		DisplayOrder: section.DisplayOrder,
		Active:       section.Active,
		Skills:       NewSkillResponseSlice(section.Skills),
	}
}

// NewSectionResponseSlice maps a slice of sections.
func NewSectionResponseSlice(sections []models.Section) []SectionResponse {
	responses := make([]SectionResponse, 0, len(sections))
	for _, section := range sections {
		responses = append(responses, NewSectionResponse(section))
	}
	return responses
}
