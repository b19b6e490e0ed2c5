package entity

import (
	"time"

	"github.com/google/uuid"
)

// BanqueDeSang is a blood bank holding stock entries.
type BanqueDeSang struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nom          string    `gorm:"type:varchar(255);not null" json:"nom"`
	Localisation string    `gorm:"type:varchar(255);not null" json:"localisation"`
	Contact      string    `gorm:"type:varchar(255);not null" json:"contact"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Stocks []StockSang `gorm:"foreignKey:IDBanque" json:"stocks,omitempty"`
}

func (BanqueDeSang) TableName() string {
	return "banques_de_sang"
}
