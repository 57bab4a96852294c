package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursehub/backend/config"
	"coursehub/backend/database"
	"coursehub/backend/models"
	"coursehub/backend/routes"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTSecret: "testsecret", JWTExpiryHours: 168}
	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)
	return app, db, cfg
}

// doRequest sends a JSON request and decodes the JSON reply into a map.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &result))
	}
	return resp, result
}

// signup registers a user over HTTP and returns the issued token and id.
func signup(t *testing.T, app *fiber.App, name, email, password string) (string, uint) {
	t.Helper()

	resp, result := doRequest(t, app, "POST", "/api/auth/signup", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	token := result["token"].(string)
	user := result["user"].(map[string]interface{})
	return token, uint(user["id"].(float64))
}

// newAdmin seeds an admin account directly and issues a token for it.
func newAdmin(t *testing.T, db *gorm.DB, cfg *config.Config) (string, uint) {
	t.Helper()

	hash, err := utils.HashPassword("adminpass")
	require.NoError(t, err)
	admin := &models.User{Name: "Admin", Email: "admin@x.com", PasswordHash: hash, Role: models.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)

	token, err := utils.GenerateToken(admin.ID, cfg)
	require.NoError(t, err)
	return token, admin.ID
}

// seedCourse creates a course with the given number of lessons and returns
// it with lessons loaded.
func seedCourse(t *testing.T, db *gorm.DB, lessons int) *models.Course {
	t.Helper()

	course := &models.Course{Title: "Intro to Go", Difficulty: "beginner"}
	for i := 1; i <= lessons; i++ {
		course.Lessons = append(course.Lessons, models.Lesson{
			Title:         fmt.Sprintf("Lesson %d", i),
			SequenceOrder: i,
		})
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func lessonKey(lesson models.Lesson) string {
	return fmt.Sprintf("%d", lesson.ID)
}
