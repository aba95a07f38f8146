package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err stems from a UNIQUE index.
// SQLite surfaces these as "UNIQUE constraint failed: table.column"; newer
// GORM translators may also yield gorm.ErrDuplicatedKey.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
