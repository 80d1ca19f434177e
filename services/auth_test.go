package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemastery/course_api/dto"
	"github.com/codemastery/course_api/model"
)

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	svcs := newTestServices(t)

	first, err := svcs.auth.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, first.Role)

	second, err := svcs.auth.Register(dto.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "secret2"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, second.Role)
}

func TestRegisterReturnsEmptyProgress(t *testing.T) {
	svcs := newTestServices(t)

	user, err := svcs.auth.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, 0, user.Progress)
	assert.Equal(t, []int{}, user.CompletedLessons)
	assert.Equal(t, []int{}, user.Bookmarks)

	// The progress record is persisted alongside the account.
	progress, err := svcs.progress.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{}, progress.CompletedLessons)
	assert.Equal(t, []int{}, progress.Bookmarks)
	assert.Equal(t, 0, progress.ProgressPercentage)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svcs := newTestServices(t)

	_, err := svcs.auth.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svcs.auth.Register(dto.RegisterRequest{Name: "Imposter", Email: "alice@example.com", Password: "secret2"})
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "Email already exists", appErr.Message)

	var count int64
	require.NoError(t, svcs.db.Model(&model.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svcs := newTestServices(t)

	_, err := svcs.auth.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := svcs.auth.Login(dto.LoginRequest{Email: "alice@example.com", Password: "not-it"})
	_, unknownEmail := svcs.auth.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})

	wrongErr := requireAppError(t, wrongPassword)
	unknownErr := requireAppError(t, unknownEmail)

	assert.Equal(t, http.StatusUnauthorized, wrongErr.StatusCode)
	assert.Equal(t, wrongErr.StatusCode, unknownErr.StatusCode)
	assert.Equal(t, wrongErr.Message, unknownErr.Message)
}

func TestLoginReturnsStoredProgress(t *testing.T) {
	svcs := newTestServices(t)

	registered, err := svcs.auth.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svcs.progress.Update(dto.UpdateProgressRequest{
		UserID:             registered.ID,
		CompletedLessons:   []int{1, 2, 3},
		Bookmarks:          []int{2},
		ProgressPercentage: 15,
	}))

	user, err := svcs.auth.Login(dto.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, []int{1, 2, 3}, user.CompletedLessons)
	assert.Equal(t, []int{2}, user.Bookmarks)
	assert.Equal(t, 15, user.Progress)
}

func TestUpdateProfileRenameKeepsPassword(t *testing.T) {
	svcs := newTestServices(t)

	registered, err := svcs.auth.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svcs.user.UpdateProfile(dto.UpdateProfileRequest{UserID: registered.ID, Name: "  Alice Cooper  "}))

	user, err := svcs.auth.Login(dto.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", user.Name)
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	svcs := newTestServices(t)

	registered, err := svcs.auth.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svcs.user.UpdateProfile(dto.UpdateProfileRequest{UserID: registered.ID, Name: "Alice", Password: "newsecret"}))

	_, err = svcs.auth.Login(dto.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)

	_, err = svcs.auth.Login(dto.LoginRequest{Email: "alice@example.com", Password: "newsecret"})
	assert.NoError(t, err)
}
