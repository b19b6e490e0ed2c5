package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus represents the read state of a notification
type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

// Notification links one donor to one demande. Rows are created in
// bulk, one per matching donor, when a demande is created.
type Notification struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IDDonneur uuid.UUID          `gorm:"column:id_donneur;type:uuid;not null;index" json:"id_donneur"`
	IDDemande uuid.UUID          `gorm:"column:id_demande;type:uuid;not null;index" json:"id_demande"`
	Message   string             `gorm:"type:text;not null" json:"message"`
	Statut    NotificationStatus `gorm:"type:varchar(10);not null;default:'unread'" json:"statut"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Donneur Donneur `gorm:"foreignKey:IDDonneur" json:"donneur,omitempty"`
	Demande Demande `gorm:"foreignKey:IDDemande" json:"demande,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

// OwnedBy reports whether the notification targets the given donor.
// Update and delete paths use this predicate instead of ad hoc checks.
func (n *Notification) OwnedBy(donneurID uuid.UUID) bool {
	return n.IDDonneur == donneurID
}

// IsUnread checks if the notification has not been read yet
func (n *Notification) IsUnread() bool {
	return n.Statut == NotificationStatusUnread
}

// MarkRead changes the notification status to read
func (n *Notification) MarkRead() {
	n.Statut = NotificationStatusRead
}
