// Package model holds the GORM persistence models.
package model

// All lists every model in dependency order, for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&AddressModel{},
		&StoreModel{},
		&ProductModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&UserDeviceModel{},
	}
}
