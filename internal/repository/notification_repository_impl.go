package repository

import (
	"context"
	"errors"

	"blood-donation-api/internal/domain/entity"
	domainRepo "blood-donation-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) domainRepo.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// CreateBatch inserts the whole fan-out in one statement.
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []entity.Notification) error {
	return r.db.WithContext(ctx).Create(&notifications).Error
}

func (r *notificationRepository) FindAll(ctx context.Context) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := r.db.WithContext(ctx).
		Preload("Donneur").
		Preload("Demande").
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notification entity.Notification
	err := r.db.WithContext(ctx).
		Preload("Donneur").
		Preload("Demande").
		Where("id = ?", id).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindByDonneurID(ctx context.Context, donneurID uuid.UUID) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := r.db.WithContext(ctx).
		Preload("Demande.Medecin").
		Where("id_donneur = ?", donneurID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Notification{})
	return result.RowsAffected, result.Error
}
