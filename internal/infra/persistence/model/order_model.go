package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderItemSnapshot is one line of the JSON item snapshot stored with an order.
type OrderItemSnapshot struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID                              `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID                              `gorm:"type:uuid;not null;index"`
	StoreID         uuid.UUID                              `gorm:"type:uuid;not null;index"`
	StoreName       string                                 `gorm:"type:varchar(255);not null"`
	StorePhone      string                                 `gorm:"type:varchar(20)"`
	Items           datatypes.JSONSlice[OrderItemSnapshot] `gorm:"type:jsonb;not null"`
	Subtotal        decimal.Decimal                        `gorm:"type:numeric(12,2);not null"`
	DeliveryFee     decimal.Decimal                        `gorm:"type:numeric(12,2);not null;default:0"`
	Total           decimal.Decimal                        `gorm:"type:numeric(12,2);not null"`
	Status          string                                 `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentMethod   string                                 `gorm:"type:varchar(50);not null"`
	NeedsChange     bool                                   `gorm:"not null;default:false"`
	ChangeAmount    decimal.NullDecimal                    `gorm:"type:numeric(12,2)"`
	CustomerName    string                                 `gorm:"type:varchar(255);not null"`
	CustomerPhone   string                                 `gorm:"type:varchar(20)"`
	DeliveryAddress string                                 `gorm:"type:text"`
	CreatedAt       time.Time                              `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
