package dto

import "github.com/pawsition/pawsition-api/internal/models"

// ProfileSaveRequest carries the upsert payload for a member profile.
type ProfileSaveRequest struct {
	DogName  string `json:"dog_name" validate:"required,max=255"`
	Owners   string `json:"owners" validate:"omitempty,max=512"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url,max=512"`
	Notes    string `json:"notes"`
	ClassID  *uint  `json:"class_id" validate:"omitempty,gt=0"`
}

// ProfileResponse is the API view of a member profile.
type ProfileResponse struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	DogName  string `json:"dog_name"`
	Owners   string `json:"owners"`
	PhotoURL string `json:"photo_url"`
	Notes    string `json:"notes"`
	ClassID  *uint  `json:"class_id"`
}

// NewProfileResponse maps a profile model to its API representation.
func NewProfileResponse(profile models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:       profile.ID,
		UserID:   profile.UserID,
		DogName:  profile.DogName,
		Owners:   profile.Owners,
		PhotoURL: profile.PhotoURL,
		Notes:    profile.Notes,
		ClassID:  profile.ClassID,
	}
}
