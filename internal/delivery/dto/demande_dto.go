package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateDemandeRequest deliberately has no statut field: the server
// always creates demandes as "active". Urgence falls back to "moyenne"
// when omitted.
type CreateDemandeRequest struct {
	GroupeSanguin string `json:"groupe_sanguin" validate:"required"`
	Quantite      int    `json:"quantite" validate:"required,gt=0"`
	Urgence       string `json:"urgence" validate:"omitempty"`
}

type UpdateDemandeRequest struct {
	GroupeSanguin string `json:"groupe_sanguin" validate:"omitempty"`
	Quantite      *int   `json:"quantite" validate:"omitempty,gt=0"`
	Urgence       string `json:"urgence" validate:"omitempty"`
	Statut        string `json:"statut" validate:"omitempty"`
}

// Response DTOs

type DemandeResponse struct {
	ID            uuid.UUID        `json:"id"`
	IDMedecin     uuid.UUID        `json:"id_medecin"`
	GroupeSanguin string           `json:"groupe_sanguin"`
	Quantite      int              `json:"quantite"`
	Urgence       string           `json:"urgence"`
	Statut        string           `json:"statut"`
	CreatedAt     time.Time        `json:"created_at"`
	Medecin       *MedecinResponse `json:"medecin,omitempty"`
}

type DemandeListResponse struct {
	Demandes []DemandeResponse `json:"demandes"`
	Total    int               `json:"total"`
}
