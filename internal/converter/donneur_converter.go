package converter

import (
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/domain/entity"
)

// DonneurToResponse converts a Donneur entity to DonneurResponse DTO.
// The password hash is dropped here.
func DonneurToResponse(donneur *entity.Donneur) *dto.DonneurResponse {
	if donneur == nil {
		return nil
	}

	return &dto.DonneurResponse{
		ID:            donneur.ID,
		Nom:           donneur.Nom,
		Email:         donneur.Email,
		GroupeSanguin: donneur.GroupeSanguin,
		Localisation:  donneur.Localisation,
		Role:          donneur.Role,
	}
}

// DonneursToResponses converts a slice of Donneur entities to DonneurResponse DTOs
func DonneursToResponses(donneurs []entity.Donneur) []dto.DonneurResponse {
	responses := make([]dto.DonneurResponse, len(donneurs))
	for i, donneur := range donneurs {
		responses[i] = *DonneurToResponse(&donneur)
	}
	return responses
}
