package entity

import "github.com/shopspring/decimal"

// centsPlaces is the scale of every stored money column.
const centsPlaces = 2

// IsCents reports whether amount is representable in whole cents.
func IsCents(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(centsPlaces))
}
