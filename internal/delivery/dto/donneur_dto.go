package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateDonneurRequest struct {
	Nom           string `json:"nom" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	GroupeSanguin string `json:"groupe_sanguin" validate:"required"`
	Localisation  string `json:"localisation" validate:"required"`
	Role          string `json:"role" validate:"omitempty,oneof=donneur banque"`
}

type UpdateDonneurRequest struct {
	Nom           string `json:"nom" validate:"omitempty,min=2"`
	Email         string `json:"email" validate:"omitempty,email"`
	Password      string `json:"password" validate:"omitempty,min=6"`
	GroupeSanguin string `json:"groupe_sanguin" validate:"omitempty"`
	Localisation  string `json:"localisation" validate:"omitempty"`
	Role          string `json:"role" validate:"omitempty,oneof=donneur banque"`
}

// Response DTOs

type DonneurResponse struct {
	ID            uuid.UUID `json:"id"`
	Nom           string    `json:"nom"`
	Email         string    `json:"email"`
	GroupeSanguin string    `json:"groupe_sanguin"`
	Localisation  string    `json:"localisation"`
	Role          string    `json:"role"`
}

type DonneurListResponse struct {
	Donneurs []DonneurResponse `json:"donneurs"`
	Total    int               `json:"total"`
}
