package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockSang is one inventory line of a blood bank: blood group plus a
// non-negative quantity.
type StockSang struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IDBanque      uuid.UUID `gorm:"column:id_banque;type:uuid;not null;index" json:"id_banque"`
	GroupeSanguin string    `gorm:"column:groupe_sanguin;type:varchar(5);not null" json:"groupe_sanguin"`
	Quantite      int       `gorm:"not null;check:quantite >= 0" json:"quantite"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Banque BanqueDeSang `gorm:"foreignKey:IDBanque" json:"banque_de_sang,omitempty"`
}

func (StockSang) TableName() string {
	return "stock_sang"
}
