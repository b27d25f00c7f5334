package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel is the GORM-specific struct for the 'carts' table.
type CartModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_carts_user_unique"`
	StoreID   uuid.UUID        `gorm:"type:uuid;not null"`
	Items     []*CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
type CartItemModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CartID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int           `gorm:"not null;check:quantity >= 1"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
