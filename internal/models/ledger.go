package models

import "time"

// Completion permanently records that a user achieved a skill.
// Rows are append-only: never updated or deleted once created.
type Completion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_completions_user_skill" json:"user_id"`
	SkillID   uint      `gorm:"not null;uniqueIndex:idx_completions_user_skill" json:"skill_id"`
	CreatedAt time.Time `json:"created_at"`
	Skill     Skill     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"skill"`
}

// Grade records that a user reached a numbered milestone. Append-only.
type Grade struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_grades_user_number" json:"user_id"`
	GradeNumber    int       `gorm:"not null;uniqueIndex:idx_grades_user_number" json:"grade_number"`
	PointsRequired int       `gorm:"not null" json:"points_required"`
	AchievedAt     time.Time `json:"achieved_at"`
}

// GradeCompletion links a grade to the completions spent to earn it.
// A completion is consumed exactly once, ever, hence the unique index.
type GradeCompletion struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	GradeID      uint       `gorm:"not null;index" json:"grade_id"`
	CompletionID uint       `gorm:"not null;uniqueIndex" json:"completion_id"`
	CreatedAt    time.Time  `json:"created_at"`
	Grade        Grade      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Completion   Completion `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// Certificate is a request for an official certificate for an achieved grade.
type Certificate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GradeID    uint      `gorm:"not null;uniqueIndex" json:"grade_id"`
	PublicCode string    `gorm:"size:8;not null" json:"public_code"`
	Status     string    `gorm:"size:32;not null" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Grade      Grade     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"grade"`
}

const (
	// CertificateStatusPending marks a certificate awaiting trainer approval.
	CertificateStatusPending = "pending"
	// CertificateStatusApproved marks an issued certificate.
	CertificateStatusApproved = "approved"
)

// MaxGradeNumber caps grade progression; there is no grade 13.
const MaxGradeNumber = 12

// PointsRequiredFor returns the fixed point threshold for achieving a grade.
// Grades outside 1..12 yield 0.
func PointsRequiredFor(gradeNumber int) int {
	switch {
	case gradeNumber >= 1 && gradeNumber <= 3:
		return 20
	case gradeNumber >= 4 && gradeNumber <= 6:
		return 40
	case gradeNumber >= 7 && gradeNumber <= 9:
		return 60
	case gradeNumber >= 10 && gradeNumber <= MaxGradeNumber:
		return 80
	default:
		return 0
	}
}
