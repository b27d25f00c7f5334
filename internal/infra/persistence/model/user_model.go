package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                string     `gorm:"type:varchar(100)"`
	PasswordHash        string     `gorm:"type:varchar(255);not null"`
	Role                string     `gorm:"type:varchar(20);not null;default:'user'"`
	FullName            string     `gorm:"type:varchar(255)"`
	BirthDate           *time.Time `gorm:"type:date"`
	CPF                 string     `gorm:"type:varchar(11)"`
	Whatsapp            string     `gorm:"type:varchar(20)"`
	WhatsappCountryCode string     `gorm:"type:varchar(4);not null;default:'55'"`
	WhatsappConsent     bool       `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
