package entity

import (
	"time"

	"github.com/google/uuid"
)

// Demande statuses and urgency levels are free-form strings; these are
// the server-assigned defaults.
const (
	DemandeStatutActive = "active"
	UrgenceMoyenne      = "moyenne"
)

// Demande is a blood request created by a medecin. Creating one fans
// out notifications to every donor of the same blood group.
type Demande struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IDMedecin     uuid.UUID `gorm:"column:id_medecin;type:uuid;not null;index" json:"id_medecin"`
	GroupeSanguin string    `gorm:"column:groupe_sanguin;type:varchar(5);not null" json:"groupe_sanguin"`
	Quantite      int       `gorm:"not null" json:"quantite"`
	Urgence       string    `gorm:"type:varchar(20);not null" json:"urgence"`
	Statut        string    `gorm:"type:varchar(20);not null" json:"statut"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Medecin Medecin `gorm:"foreignKey:IDMedecin" json:"medecin,omitempty"`
}

func (Demande) TableName() string {
	return "demandes"
}
