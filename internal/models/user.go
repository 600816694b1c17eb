package models

import "time"

// User represents an account that can sign in: a member, a trainer, or an admin.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"size:255;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:32;not null" json:"role"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	// RoleMember is the default role for school members ("pawsome pals").
	RoleMember = "member"
	// RoleTrainer marks users that teach classes and decide submissions.
	RoleTrainer = "trainer"
	// RoleAdmin marks users with unrestricted access.
	RoleAdmin = "admin"
)

// CanTrain reports whether the user may own classes and decide submissions.
func (u User) CanTrain() bool {
	return u.Role == RoleTrainer || u.Role == RoleAdmin
}

// IsAdmin reports whether the user has unrestricted access.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
