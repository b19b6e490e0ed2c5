package repository

import (
	"context"

	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository reads eager-load the owning Donneur and
// Demande. CreateBatch is the fan-out insert and must never be called
// with an empty slice.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	CreateBatch(ctx context.Context, notifications []entity.Notification) error
	FindAll(ctx context.Context) ([]entity.Notification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	FindByDonneurID(ctx context.Context, donneurID uuid.UUID) ([]entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
