package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"studysmarter/internal/database"
	"studysmarter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Each test gets its own named shared-cache database so GORM's connection
// pool sees the same in-memory store on every connection.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	got, err = repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		Username: "alice", Email: "alice@example.com", Password: "hash",
	}))

	err := repo.Create(ctx, &models.User{
		Username: "alice", Email: "other@example.com", Password: "hash",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.Equal(t, "Username or Email already taken", appErr.Message)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		Username: "alice", Email: "alice@example.com", Password: "hash",
	}))

	err := repo.Create(ctx, &models.User{
		Username: "bob", Email: "alice@example.com", Password: "hash",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestUserRepository_LookupMisses(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	// Username/email lookups report "no match" as nil, nil
	got, err := repo.GetByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindByUsernameOrEmail(ctx, "nobody", "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)

	// ID lookup reports not-found as an error
	_, err = repo.GetByID(ctx, 99)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepository_FindByUsernameOrEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		Username: "alice", Email: "alice@example.com", Password: "hash",
	}))

	// Matches on username alone
	got, err := repo.FindByUsernameOrEmail(ctx, "alice", "new@example.com")
	require.NoError(t, err)
	assert.NotNil(t, got)

	// Matches on email alone
	got, err = repo.FindByUsernameOrEmail(ctx, "newname", "alice@example.com")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	user.Email = "renamed@example.com"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "renamed@example.com", got.Email)
}

// Update must never touch the password column, even when the input value
// carries an empty hash (as a cache-served user does).
func TestUserRepository_UpdateKeepsPassword(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "stored-hash"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.Update(ctx, &models.User{
		ID:       user.ID,
		Username: "alice",
		Email:    "renamed@example.com",
	}))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "stored-hash", stored.Password)
	assert.Equal(t, "renamed@example.com", stored.Email)
}
