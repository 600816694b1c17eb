package dto

// UserCreateRequest describes the payload for creating an account (admin only).
type UserCreateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=2,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=member trainer admin"`
}

// UserResetPasswordRequest carries the replacement password for a user (admin only).
type UserResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}
