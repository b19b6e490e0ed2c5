package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=medecin donneur banque"`
	// Donor-specific fields, optional at signup
	GroupeSanguin string `json:"groupe_sanguin" validate:"omitempty"`
	Localisation  string `json:"localisation" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// UserResponse is the sanitized identity returned by signup, login and
// /auth/me. The password hash never appears here.
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Nom           string    `json:"nom"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	GroupeSanguin string    `json:"groupe_sanguin,omitempty"`
	Localisation  string    `json:"localisation,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
