package converter

import (
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/domain/entity"
)

// MedecinToResponse converts a Medecin entity to MedecinResponse DTO.
// The password hash is dropped here.
func MedecinToResponse(medecin *entity.Medecin) *dto.MedecinResponse {
	if medecin == nil {
		return nil
	}

	return &dto.MedecinResponse{
		ID:    medecin.ID,
		Nom:   medecin.Nom,
		Email: medecin.Email,
	}
}

// MedecinsToResponses converts a slice of Medecin entities to MedecinResponse DTOs
func MedecinsToResponses(medecins []entity.Medecin) []dto.MedecinResponse {
	responses := make([]dto.MedecinResponse, len(medecins))
	for i, medecin := range medecins {
		responses[i] = dto.MedecinResponse{
			ID:    medecin.ID,
			Nom:   medecin.Nom,
			Email: medecin.Email,
		}
	}
	return responses
}
