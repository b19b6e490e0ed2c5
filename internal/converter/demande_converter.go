package converter

import (
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

// DemandeToResponse converts a Demande entity to DemandeResponse DTO,
// carrying the creating medecin when it was eager-loaded.
func DemandeToResponse(demande *entity.Demande) *dto.DemandeResponse {
	if demande == nil {
		return nil
	}

	resp := &dto.DemandeResponse{
		ID:            demande.ID,
		IDMedecin:     demande.IDMedecin,
		GroupeSanguin: demande.GroupeSanguin,
		Quantite:      demande.Quantite,
		Urgence:       demande.Urgence,
		Statut:        demande.Statut,
		CreatedAt:     demande.CreatedAt,
	}
	if demande.Medecin.ID != uuid.Nil {
		resp.Medecin = MedecinToResponse(&demande.Medecin)
	}
	return resp
}

// DemandesToResponses converts a slice of Demande entities to DemandeResponse DTOs
func DemandesToResponses(demandes []entity.Demande) []dto.DemandeResponse {
	responses := make([]dto.DemandeResponse, len(demandes))
	for i, demande := range demandes {
		responses[i] = *DemandeToResponse(&demande)
	}
	return responses
}
