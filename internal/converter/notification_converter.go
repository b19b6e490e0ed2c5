package converter

import (
	"blood-donation-api/internal/delivery/dto"
	"blood-donation-api/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationToResponse converts a Notification entity to
// NotificationResponse DTO, carrying whatever relations were
// eager-loaded (Donneur, Demande, Demande.Medecin).
func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}

	resp := &dto.NotificationResponse{
		ID:        notification.ID,
		IDDonneur: notification.IDDonneur,
		IDDemande: notification.IDDemande,
		Message:   notification.Message,
		Statut:    string(notification.Statut),
		CreatedAt: notification.CreatedAt,
	}
	if notification.Donneur.ID != uuid.Nil {
		resp.Donneur = DonneurToResponse(&notification.Donneur)
	}
	if notification.Demande.ID != uuid.Nil {
		resp.Demande = DemandeToResponse(&notification.Demande)
	}
	return resp
}

// NotificationsToResponses converts a slice of Notification entities to NotificationResponse DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = *NotificationToResponse(&notification)
	}
	return responses
}
