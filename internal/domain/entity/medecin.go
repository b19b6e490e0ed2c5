package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medecin is the medical staff identity table. Staff and donors live in
// separate tables with independent email uniqueness; login resolves
// medecins first.
type Medecin struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nom        string    `gorm:"type:varchar(255);not null" json:"nom"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	MotDePasse string    `gorm:"column:mot_de_passe;type:text;not null" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Demandes []Demande `gorm:"foreignKey:IDMedecin" json:"demandes,omitempty"`
}

func (Medecin) TableName() string {
	return "medecins"
}
