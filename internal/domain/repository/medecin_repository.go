package repository

import (
	"context"

	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

type MedecinRepository interface {
	Create(ctx context.Context, medecin *entity.Medecin) error
	FindAll(ctx context.Context) ([]entity.Medecin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medecin, error)
	FindByEmail(ctx context.Context, email string) (*entity.Medecin, error)
	Update(ctx context.Context, medecin *entity.Medecin) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
