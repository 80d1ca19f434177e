package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/codemastery/course_api/model"
	"github.com/codemastery/course_api/services/repositories"
	"github.com/codemastery/course_api/shared"
)

type testServices struct {
	db       *gorm.DB
	auth     *AuthService
	user     *UserService
	progress *ProgressService
	admin    *AdminService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// _foreign_keys goes in the DSN so every pooled connection enforces the
	// progress cascade, not just the first one.
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.UserProgress{}))
	return db
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := newTestDB(t)
	users := repositories.NewUserRepository(db)
	progress := repositories.NewProgressRepository(db)

	return &testServices{
		db:       db,
		auth:     &AuthService{users: users, progress: progress},
		user:     &UserService{users: users},
		progress: &ProgressService{progress: progress},
		admin:    &AdminService{users: users},
	}
}

func requireAppError(t *testing.T, err error) *shared.AppError {
	t.Helper()

	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	return appErr
}
