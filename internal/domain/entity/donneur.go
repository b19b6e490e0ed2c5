package entity

import (
	"time"

	"github.com/google/uuid"
)

// Donneur is the donor identity table. The role column defaults to
// "donneur"; bank operators signed up with role "banque" are persisted
// here too until they get a schema of their own.
type Donneur struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nom           string    `gorm:"type:varchar(255);not null" json:"nom"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	MotDePasse    string    `gorm:"column:mot_de_passe;type:text;not null" json:"-"`
	GroupeSanguin string    `gorm:"column:groupe_sanguin;type:varchar(5)" json:"groupe_sanguin"`
	Localisation  string    `gorm:"type:varchar(255)" json:"localisation"`
	Role          string    `gorm:"type:varchar(20);not null;default:'donneur'" json:"role"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Notifications []Notification `gorm:"foreignKey:IDDonneur" json:"notifications,omitempty"`
}

func (Donneur) TableName() string {
	return "donneurs"
}
