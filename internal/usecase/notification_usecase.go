package usecase

import (
	"context"
	"errors"

	"blood-donation-api/internal/converter"
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/delivery/http/middleware"
	"blood-donation-api/internal/domain/entity"
	"blood-donation-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotificationNotOwned = errors.New("notification does not belong to you")
)

type NotificationUsecase interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	GetMine(ctx context.Context) (*dto.NotificationListResponse, error)
	GetAll(ctx context.Context) (*dto.NotificationListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationUsecase struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	statut := entity.NotificationStatus(req.Statut)
	if statut == "" {
		statut = entity.NotificationStatusUnread
	}

	notification := &entity.Notification{
		IDDonneur: req.IDDonneur,
		IDDemande: req.IDDemande,
		Message:   req.Message,
		Statut:    statut,
	}

	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		u.log.Warnf("Failed to create notification: %+v", err)
		return nil, err
	}

	return converter.NotificationToResponse(notification), nil
}

// GetMine returns the authenticated donor's notifications with the
// demande and its medecin eager-loaded, newest first.
func (u *notificationUsecase) GetMine(ctx context.Context) (*dto.NotificationListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	notifications, err := u.notificationRepo.FindByDonneurID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find notifications for donneur %s: %+v", userID, err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
	}, nil
}

func (u *notificationUsecase) GetAll(ctx context.Context) (*dto.NotificationListResponse, error) {
	notifications, err := u.notificationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find notifications: %+v", err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
	}, nil
}

func (u *notificationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error) {
	notification, err := u.notificationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", id, err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	return converter.NotificationToResponse(notification), nil
}

// Update only succeeds for the donor the notification targets.
func (u *notificationUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	notification, err := u.notificationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", id, err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	if !notification.OwnedBy(user.ID) {
		return nil, ErrNotificationNotOwned
	}

	if req.Statut != "" {
		notification.Statut = entity.NotificationStatus(req.Statut)
	}

	if err := u.notificationRepo.Update(ctx, notification); err != nil {
		u.log.Warnf("Failed to update notification %s: %+v", id, err)
		return nil, err
	}

	return converter.NotificationToResponse(notification), nil
}

// Delete only succeeds for the donor the notification targets.
func (u *notificationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	notification, err := u.notificationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", id, err)
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}
	if !notification.OwnedBy(user.ID) {
		return ErrNotificationNotOwned
	}

	if _, err := u.notificationRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete notification %s: %+v", id, err)
		return err
	}
	return nil
}
