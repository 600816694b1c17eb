package dto

import (
	"time"

	"github.com/pawsition/pawsition-api/internal/models"
)

// SubmissionCreateRequest describes the payload for claiming a skill.
type SubmissionCreateRequest struct {
	UserID      uint   `json:"user_id" validate:"required,gt=0"`
	SkillID     uint   `json:"skill_id" validate:"required,gt=0"`
	Mode        string `json:"mode" validate:"required,oneof=class_request self_submit"`
	VideoURL    string `json:"video_url" validate:"omitempty,url,max=512"`
	MemberNotes string `json:"member_notes"`
}

// SubmissionDecisionRequest carries a trainer's decision on a submission.
type SubmissionDecisionRequest struct {
	Status       string  `json:"status" validate:"required,oneof=approved rejected"`
	TrainerNotes *string `json:"trainer_notes"`
}

// SubmissionFilter describes query string filters for listing submissions.
type SubmissionFilter struct {
	UserID  *uint   `query:"user_id"`
	SkillID *uint   `query:"skill_id"`
	Status  *string `query:"status" validate:"omitempty,oneof=requested submitted approved rejected"`
}

// SubmissionResponse is returned to API clients when viewing submissions.
type SubmissionResponse struct {
	ID           uint          `json:"id"`
	UserID       uint          `json:"user_id"`
	SkillID      uint          `json:"skill_id"`
	Mode         string        `json:"mode"`
	Status       string        `json:"status"`
	VideoURL     string        `json:"video_url"`
	MemberNotes  string        `json:"member_notes"`
	TrainerNotes string        `json:"trainer_notes"`
	DecidedBy    *uint         `json:"decided_by"`
	DecidedAt    *time.Time    `json:"decided_at"`
	CreatedAt    time.Time     `json:"created_at"`
	Skill        SkillResponse `json:"skill"`
}

// NewSubmissionResponse maps a submission model to its API representation.
func NewSubmissionResponse(submission models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:           submission.ID,
		UserID:       submission.UserID,
		SkillID:      submission.SkillID,
		Mode:         submission.Mode,
		Status:       submission.Status,
		VideoURL:     submission.VideoURL,
		MemberNotes:  submission.MemberNotes,
		TrainerNotes: submission.TrainerNotes,
		DecidedBy:    submission.DecidedBy,
		DecidedAt:    submission.DecidedAt,
		CreatedAt:    submission.CreatedAt,
		Skill:        NewSkillResponse(submission.Skill),
	}
}

// NewSubmissionResponseSlice maps a slice of submissions.
func NewSubmissionResponseSlice(submissions []models.Submission) []SubmissionResponse {
	responses := make([]SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, NewSubmissionResponse(submission))
	}
	return responses
}
