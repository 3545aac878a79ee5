package entities

import "time"

// RegisterInput is a self-service sign-up request.
type RegisterInput struct {
	Username string   `json:"username" validate:"required,min=3,max=32,alphanumunicode"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	FullName string   `json:"fullName" validate:"max=120"`
	Role     UserRole `json:"role" validate:"omitempty,oneof=participant organizer"`
}

// LoginInput authenticates by username or email.
type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is an issued access token.
type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// Principal is the caller identified by a verified token.
type Principal struct {
	UserID string
	Role   UserRole
}

// IsAdmin reports whether the caller has the admin role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
