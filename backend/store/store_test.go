package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"coursehub/backend/database"
	"coursehub/backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database per test. Sqlite allows one
// writer at a time, so the pool is capped at one connection to keep
// concurrent test writers queued instead of failing with SQLITE_BUSY.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "irrelevant",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTestEnrollment(userID, courseID uint, lessonIDs ...string) *models.Enrollment {
	progress := make(map[string]bool, len(lessonIDs))
	for _, id := range lessonIDs {
		progress[id] = false
	}
	return &models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Progress:   datatypes.NewJSONType(progress),
		EnrolledAt: time.Now(),
	}
}
