package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Label        string    `gorm:"type:varchar(100)"`
	Street       string    `gorm:"type:varchar(255);not null"`
	Number       string    `gorm:"type:varchar(20);not null"`
	Complement   string    `gorm:"type:varchar(255)"`
	Neighborhood string    `gorm:"type:varchar(255);not null"`
	City         string    `gorm:"type:varchar(255);not null"`
	State        string    `gorm:"type:varchar(2);not null"`
	ZipCode      string    `gorm:"type:varchar(8);not null"`
	IsPrimary    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
