package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateStockSangRequest struct {
	IDBanque      uuid.UUID `json:"id_banque" validate:"required"`
	GroupeSanguin string    `json:"groupe_sanguin" validate:"required"`
	Quantite      *int      `json:"quantite" validate:"required,gte=0"`
}

type UpdateStockSangRequest struct {
	GroupeSanguin string `json:"groupe_sanguin" validate:"omitempty"`
	Quantite      *int   `json:"quantite" validate:"omitempty,gte=0"`
}

// Response DTOs

type StockSangResponse struct {
	ID            uuid.UUID             `json:"id"`
	IDBanque      uuid.UUID             `json:"id_banque"`
	GroupeSanguin string                `json:"groupe_sanguin"`
	Quantite      int                   `json:"quantite"`
	Banque        *BanqueDeSangResponse `json:"banque_de_sang,omitempty"`
}

type StockSangListResponse struct {
	Stocks []StockSangResponse `json:"stocks"`
	Total  int                 `json:"total"`
}
