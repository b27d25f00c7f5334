package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	Slug                  string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name                  string          `gorm:"type:varchar(255);not null"`
	Description           string          `gorm:"type:text"`
	Category              string          `gorm:"type:varchar(100);not null"`
	CNPJ                  string          `gorm:"column:cnpj;type:varchar(18);uniqueIndex;not null"`
	Phone                 string          `gorm:"type:varchar(20);not null"`
	Email                 string          `gorm:"type:varchar(255);not null"`
	Image                 string          `gorm:"type:text"`
	MinimumOrder          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DeliveryFee           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	FreeShippingThreshold decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	IsOpen                bool            `gorm:"not null;default:true"`
	ZipCode               string          `gorm:"type:varchar(8);not null"`
	Street                string          `gorm:"type:varchar(255);not null"`
	Number                string          `gorm:"type:varchar(20);not null"`
	Complement            string          `gorm:"type:varchar(255)"`
	Neighborhood          string          `gorm:"type:varchar(255);not null"`
	City                  string          `gorm:"type:varchar(255);not null;index:idx_stores_city_state"`
	State                 string          `gorm:"type:varchar(2);not null;index:idx_stores_city_state"`
	CreatedAt             time.Time       `gorm:"index"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
