package implementation

import (
	"errors"
	"fmt"
	"strings"

	"notetaking-be/internal/repository/contract"

	"gorm.io/gorm"
)

// translateWriteError normalises unique violations from every supported
// driver into contract.ErrDuplicateKey.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", contract.ErrDuplicateKey, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "SQLSTATE 23505") || // postgres
		strings.Contains(msg, "duplicate key value")
}
