package repository

import (
	"context"

	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

// StockSangRepository reads eager-load the owning BanqueDeSang.
type StockSangRepository interface {
	Create(ctx context.Context, stock *entity.StockSang) error
	FindAll(ctx context.Context) ([]entity.StockSang, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StockSang, error)
	Update(ctx context.Context, stock *entity.StockSang) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
