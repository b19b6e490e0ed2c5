package converter

import (
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/domain/entity"
)

// BanqueDeSangToResponse converts a BanqueDeSang entity to BanqueDeSangResponse DTO
func BanqueDeSangToResponse(banque *entity.BanqueDeSang) *dto.BanqueDeSangResponse {
	if banque == nil {
		return nil
	}

	return &dto.BanqueDeSangResponse{
		ID:           banque.ID,
		Nom:          banque.Nom,
		Localisation: banque.Localisation,
		Contact:      banque.Contact,
	}
}

// BanquesDeSangToResponses converts a slice of BanqueDeSang entities to BanqueDeSangResponse DTOs
func BanquesDeSangToResponses(banques []entity.BanqueDeSang) []dto.BanqueDeSangResponse {
	responses := make([]dto.BanqueDeSangResponse, len(banques))
	for i, banque := range banques {
		responses[i] = *BanqueDeSangToResponse(&banque)
	}
	return responses
}
