package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"studysmarter/internal/config"
	"studysmarter/internal/database"
	"studysmarter/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/sqlite"
)

// setupTestDB opens an isolated in-memory sqlite database and migrates the
// full schema. The database name is derived from the test name so parallel
// tests never share state through sqlite's shared cache.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer builds a Server over an in-memory database with all routes
// registered. Metrics middleware is left out so repeated test runs do not
// re-register Prometheus collectors.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db := setupTestDB(t)
	s := &Server{
		config:      &config.Config{JWTSecret: "test-secret", Env: "test"},
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		roomRepo:    repository.NewStudyRoomRepository(db),
		postRepo:    repository.NewPostRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		mediaRepo:   repository.NewMediaRepository(db),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
