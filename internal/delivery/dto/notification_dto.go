package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateNotificationRequest struct {
	IDDonneur uuid.UUID `json:"id_donneur" validate:"required"`
	IDDemande uuid.UUID `json:"id_demande" validate:"required"`
	Message   string    `json:"message" validate:"omitempty"`
	Statut    string    `json:"statut" validate:"omitempty,oneof=unread read"`
}

type UpdateNotificationRequest struct {
	Statut string `json:"statut" validate:"omitempty,oneof=unread read"`
}

// Response DTOs

type NotificationResponse struct {
	ID        uuid.UUID        `json:"id"`
	IDDonneur uuid.UUID        `json:"id_donneur"`
	IDDemande uuid.UUID        `json:"id_demande"`
	Message   string           `json:"message"`
	Statut    string           `json:"statut"`
	CreatedAt time.Time        `json:"created_at"`
	Donneur   *DonneurResponse `json:"donneur,omitempty"`
	Demande   *DemandeResponse `json:"demande,omitempty"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}
