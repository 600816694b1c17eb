package models

import "time"

// Section groups related skills in the curriculum.
type Section struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Skills       []Skill   `json:"skills,omitempty"`
}

// Skill is one trainable exercise belonging to a section.
type Skill struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SectionID    uint      `gorm:"not null;index" json:"section_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Difficulty   int       `gorm:"not null" json:"difficulty"`
	Points       int       `gorm:"not null" json:"points"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SkillPointValues lists the point values a skill may carry.
var SkillPointValues = []int{2, 5, 10, 15}
