package dto

import (
	"time"

	"github.com/pawsition/pawsition-api/internal/models"
)

// BulkApproveRequest carries a trainer's direct grant of several skills at once.
type BulkApproveRequest struct {
	UserID   uint   `json:"user_id" validate:"required,gt=0"`
	SkillIDs []uint `json:"skill_ids" validate:"required,min=1,dive,gt=0"`
	Notes    string `json:"notes"`
}

// BulkApproveResponse reports the outcome of a bulk grant.
type BulkApproveResponse struct {
	ApprovedCount int      `json:"approved_count"`
	TotalPoints   int      `json:"total_points"`
	Skills        []string `json:"skills"`
}

// CompletionResponse is the API view of a completion.
type CompletionResponse struct {
	ID        uint          `json:"id"`
	UserID    uint          `json:"user_id"`
	SkillID   uint          `json:"skill_id"`
	CreatedAt time.Time     `json:"created_at"`
	Skill     SkillResponse `json:"skill"`
}

// AllTimeStatsResponse holds lifetime totals over every completion ever made,
// ignoring grade consumption. Distinct from the spendable progress figures.
type AllTimeStatsResponse struct {
	TotalPoints   int          `json:"total_points"`
	TotalSkills   int          `json:"total_skills"`
	SectionCounts map[uint]int `json:"section_counts"`
}

// NewCompletionResponse maps a completion model to its API representation.
func NewCompletionResponse(completion models.Completion) CompletionResponse {
	return CompletionResponse{
		ID:        completion.ID,
		UserID:    completion.UserID,
		SkillID:   completion.SkillID,
		CreatedAt: completion.CreatedAt,
		Skill:     NewSkillResponse(completion.Skill),
	}
}

// NewCompletionResponseSlice maps a slice of completions.
func NewCompletionResponseSlice(completions []models.Completion) []CompletionResponse {
	responses := make([]CompletionResponse, 0, len(completions))
	for _, completion := range completions {
		responses = append(responses, NewCompletionResponse(completion))
	}
	return responses
}
