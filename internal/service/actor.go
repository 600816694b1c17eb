package service

import "github.com/pawsition/pawsition-api/internal/models"

// Actor identifies the authenticated user performing an operation.
type Actor struct {
	ID   uint
	Role string
}

// IsAdmin reports whether the actor has unrestricted access.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
