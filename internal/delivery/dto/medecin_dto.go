package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateMedecinRequest struct {
	Nom      string `json:"nom" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateMedecinRequest struct {
	Nom      string `json:"nom" validate:"omitempty,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// Response DTOs

type MedecinResponse struct {
	ID    uuid.UUID `json:"id"`
	Nom   string    `json:"nom"`
	Email string    `json:"email"`
}

type MedecinListResponse struct {
	Medecins []MedecinResponse `json:"medecins"`
	Total    int               `json:"total"`
}
