package dto

import (
	"time"

	"videvida-booking-api/internal/domain/entity"
)

type RegisterRequest struct {
	Nome            string      `json:"nome" validate:"required,min=2,max=100"`
	Email           string      `json:"email" validate:"required,email"`
	Password        string      `json:"password" validate:"required,min=6"`
	ConfirmPassword string      `json:"confirmPassword" validate:"required,eqfield=Password"`
	Tipo            entity.Role `json:"tipo" validate:"required,oneof=paciente medico"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CheckEmailResponse struct {
	Email  string `json:"email"`
	Exists bool   `json:"exists"`
}

type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Nome      string      `json:"nome"`
	Tipo      entity.Role `json:"tipo"`
	CreatedAt time.Time   `json:"createdAt,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt,omitempty"`
}

// TokenResponse carries the issued token pair plus the role-based landing
// route the client should navigate to after login.
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
	Redirect     string        `json:"redirect,omitempty"`
}
