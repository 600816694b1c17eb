package models

import "time"

// Submission is a member's claim of having performed a skill, awaiting a trainer decision.
type Submission struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	SkillID      uint       `gorm:"not null;index" json:"skill_id"`
	Mode         string     `gorm:"size:32;not null" json:"mode"`
	Status       string     `gorm:"size:32;not null" json:"status"`
	VideoURL     string     `gorm:"size:512" json:"video_url"`
	MemberNotes  string     `gorm:"type:text" json:"member_notes"`
	TrainerNotes string     `gorm:"type:text" json:"trainer_notes"`
	DecidedBy    *uint      `json:"decided_by"`
	DecidedAt    *time.Time `json:"decided_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	User         User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Skill        Skill      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"skill"`
}

const (
	// SubmissionModeClassRequest marks a claim raised during a class.
	SubmissionModeClassRequest = "class_request"
	// SubmissionModeSelfSubmit marks a claim raised by the member directly.
	SubmissionModeSelfSubmit = "self_submit"
)

const (
	// SubmissionStatusRequested is the initial status for class_request submissions.
	SubmissionStatusRequested = "requested"
	// SubmissionStatusSubmitted is the initial status for self_submit submissions.
	SubmissionStatusSubmitted = "submitted"
	// SubmissionStatusApproved is terminal and produces a completion.
	SubmissionStatusApproved = "approved"
	// SubmissionStatusRejected is terminal; the member may submit again.
	SubmissionStatusRejected = "rejected"
)

// InitialStatusForMode returns the status a new submission starts in.
func InitialStatusForMode(mode string) string {
	if mode == SubmissionModeClassRequest {
		return SubmissionStatusRequested
	}
	return SubmissionStatusSubmitted
}

// IsOpen reports whether the submission still awaits a decision.
func (s Submission) IsOpen() bool {
	return s.Status == SubmissionStatusRequested || s.Status == SubmissionStatusSubmitted
}
