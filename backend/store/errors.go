package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a uniqueness constraint rejected the write.
	ErrConflict = errors.New("record already exists")
	// ErrNotOwner means the requester does not own the record.
	ErrNotOwner = errors.New("requester does not own this record")
)

// isUniqueViolation matches unique-constraint failures across drivers.
// Postgres reports "duplicate key value violates unique constraint",
// sqlite reports "UNIQUE constraint failed".
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
