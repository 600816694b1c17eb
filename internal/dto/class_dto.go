package dto

import "github.com/pawsition/pawsition-api/internal/models"

// ClassCreateRequest describes the payload for creating a class.
type ClassCreateRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimeSlot  string `json:"time_slot" validate:"omitempty,max=64"`
	TrainerID uint   `json:"trainer_id" validate:"required,gt=0"`
}

// ClassUpdateRequest describes a partial class update.
type ClassUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	DayOfWeek *string `json:"day_of_week" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimeSlot  *string `json:"time_slot" validate:"omitempty,max=64"`
	TrainerID *uint   `json:"trainer_id" validate:"omitempty,gt=0"`
}

// ClassResponse is the API view of a class.
type ClassResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	DayOfWeek string `json:"day_of_week"`
	TimeSlot  string `json:"time_slot"`
	TrainerID uint   `json:"trainer_id"`
	Active    bool   `json:"active"`
}

// NewClassResponse maps a class model to its API representation.
func NewClassResponse(class models.Class) ClassResponse {
	return ClassResponse{
		ID:        class.ID,
		Name:      class.Name,
		DayOfWeek: class.DayOfWeek,
		TimeSlot:  class.TimeSlot,
		TrainerID: class.TrainerID,
		Active:    class.Active,
	}
}

// NewClassResponseSlice maps a slice of classes.
func NewClassResponseSlice(classes []models.Class) []ClassResponse {
	responses := make([]ClassResponse, 0, len(classes))
	for _, class := range classes {
		responses = append(responses, NewClassResponse(class))
	}
	return responses
}
