package postgres

import (
	"storefront/internal/errors"

	"gorm.io/gorm"
)

// The helpers below rely on TranslateError being enabled on the connection,
// which turns driver error codes into gorm sentinel errors.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
