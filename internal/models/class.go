package models

import "time"

// Class is a recurring training class owned by a trainer.
type Class struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	DayOfWeek string    `gorm:"size:16;not null" json:"day_of_week"`
	TimeSlot  string    `gorm:"size:64" json:"time_slot"`
	TrainerID uint      `gorm:"not null" json:"trainer_id"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Trainer   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// DaysOfWeek lists the canonical day values accepted for classes.
var DaysOfWeek = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
