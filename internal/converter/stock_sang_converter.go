package converter

import (
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

// StockSangToResponse converts a StockSang entity to StockSangResponse
// DTO, carrying the owning bank when it was eager-loaded.
func StockSangToResponse(stock *entity.StockSang) *dto.StockSangResponse {
	if stock == nil {
		return nil
	}

	resp := &dto.StockSangResponse{
		ID:            stock.ID,
		IDBanque:      stock.IDBanque,
		GroupeSanguin: stock.GroupeSanguin,
		Quantite:      stock.Quantite,
	}
	if stock.Banque.ID != uuid.Nil {
		resp.Banque = BanqueDeSangToResponse(&stock.Banque)
	}
	return resp
}

// StocksSangToResponses converts a slice of StockSang entities to StockSangResponse DTOs
func StocksSangToResponses(stocks []entity.StockSang) []dto.StockSangResponse {
	responses := make([]dto.StockSangResponse, len(stocks))
	for i, stock := range stocks {
		responses[i] = *StockSangToResponse(&stock)
	}
	return responses
}
