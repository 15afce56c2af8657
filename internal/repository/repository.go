package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (city/location name, admin username).
var ErrDuplicate = errors.New("already exists")

// isUniqueViolation reports whether err is a unique-constraint failure.
// TranslateError covers the normal path; the string check catches errors
// the driver does not translate.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
