package repository

import (
	"context"

	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

type BanqueDeSangRepository interface {
	Create(ctx context.Context, banque *entity.BanqueDeSang) error
	FindAll(ctx context.Context) ([]entity.BanqueDeSang, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BanqueDeSang, error)
	Update(ctx context.Context, banque *entity.BanqueDeSang) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
