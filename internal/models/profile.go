package models

import "time"

// Profile holds the member-facing details for a user's dog.
// It is created lazily on the first save and may reference at most one class.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	DogName   string    `gorm:"size:255" json:"dog_name"`
	Owners    string    `gorm:"size:512" json:"owners"`
	PhotoURL  string    `gorm:"size:512" json:"photo_url"`
	Notes     string    `gorm:"type:text" json:"notes"`
	ClassID   *uint     `json:"class_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
