package repositories

import (
	"errors"
	"strings"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const pqUniqueViolation = "23505"

// isDuplicateKeyError reports whether err is a unique constraint violation from any of the drivers in use
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint")
}

// ownedAccountIDs is a subquery selecting the IDs of the user's accounts
func ownedAccountIDs(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&models.Account{}).Select("id").Where("user_id = ?", userID)
}

// dateParam formats a calendar date for comparison against date columns.
// The textual form compares correctly against both postgres dates and sqlite's stored timestamps.
func dateParam(t time.Time) string {
	return t.Format("2006-01-02")
}
