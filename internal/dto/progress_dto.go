package dto

// ProgressResponse reports the spendable progress toward a member's next grade.
// Completions already linked to a grade are excluded from every figure.
type ProgressResponse struct {
	CurrentGrade       int                  `json:"current_grade"`
	NextGrade          *int                 `json:"next_grade"`
	TotalPoints        int                  `json:"total_points"`
	PointsRequired     int                  `json:"points_required"`
	SectionsWithSkills int                  `json:"sections_with_skills"`
	Eligible           bool                 `json:"eligible"`
	Completions        []CompletionResponse `json:"completions"`
}
