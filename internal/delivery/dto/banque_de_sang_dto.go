package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateBanqueDeSangRequest struct {
	Nom          string `json:"nom" validate:"required,min=2"`
	Localisation string `json:"localisation" validate:"required"`
	Contact      string `json:"contact" validate:"required"`
}

type UpdateBanqueDeSangRequest struct {
	Nom          string `json:"nom" validate:"omitempty,min=2"`
	Localisation string `json:"localisation" validate:"omitempty"`
	Contact      string `json:"contact" validate:"omitempty"`
}

// Response DTOs

type BanqueDeSangResponse struct {
	ID           uuid.UUID `json:"id"`
	Nom          string    `json:"nom"`
	Localisation string    `json:"localisation"`
	Contact      string    `json:"contact"`
}

type BanqueDeSangListResponse struct {
	Banques []BanqueDeSangResponse `json:"banques"`
	Total   int                    `json:"total"`
}
