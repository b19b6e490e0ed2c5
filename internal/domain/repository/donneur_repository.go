package repository

import (
	"context"

	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

type DonneurRepository interface {
	Create(ctx context.Context, donneur *entity.Donneur) error
	FindAll(ctx context.Context) ([]entity.Donneur, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donneur, error)
	FindByEmail(ctx context.Context, email string) (*entity.Donneur, error)
	FindByGroupeSanguin(ctx context.Context, groupeSanguin string) ([]entity.Donneur, error)
	Update(ctx context.Context, donneur *entity.Donneur) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
