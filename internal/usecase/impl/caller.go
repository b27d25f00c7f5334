package impl

import (
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// requireCaller rejects anonymous callers.
func requireCaller(caller *entity.CallerIdentity) error {
	if caller.IsAnonymous() {
		return domainerrors.ErrUnauthorized
	}

	return nil
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// digitsOnly strips every non-digit rune.
func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
