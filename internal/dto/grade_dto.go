package dto

import (
	"time"

	"github.com/pawsition/pawsition-api/internal/models"
)

// GradeAchieveRequest carries a grade-achievement attempt. The caller supplies
// the completions to spend; they are not recomputed server-side.
type GradeAchieveRequest struct {
	UserID        uint   `json:"user_id" validate:"required,gt=0"`
	GradeNumber   int    `json:"grade_number" validate:"required,gte=1,lte=12"`
	CompletionIDs []uint `json:"completion_ids" validate:"required,min=1,dive,gt=0"`
}

// GradeResponse is the API view of an achieved grade.
type GradeResponse struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	GradeNumber    int       `json:"grade_number"`
	PointsRequired int       `json:"points_required"`
	AchievedAt     time.Time `json:"achieved_at"`
}

// NewGradeResponse maps a grade model to its API representation.
func NewGradeResponse(grade models.Grade) GradeResponse {
	return GradeResponse{
		ID:             grade.ID,
		UserID:         grade.UserID,
		GradeNumber:    grade.GradeNumber,
		PointsRequired: grade.PointsRequired,
		AchievedAt:     grade.AchievedAt,
	}
}

// NewGradeResponseSlice maps a slice of grades.
func NewGradeResponseSlice(grades []models.Grade) []GradeResponse {
	responses := make([]GradeResponse, 0, len(grades))
	for _, grade := range grades {
		responses = append(responses, NewGradeResponse(grade))
	}
	return responses
}
