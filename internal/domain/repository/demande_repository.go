package repository

import (
	"context"

	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

type DemandeRepository interface {
	Create(ctx context.Context, demande *entity.Demande) error
	FindAll(ctx context.Context) ([]entity.Demande, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Demande, error)
	FindByMedecinID(ctx context.Context, medecinID uuid.UUID) ([]entity.Demande, error)
	Update(ctx context.Context, demande *entity.Demande) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
