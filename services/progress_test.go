package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemastery/course_api/dto"
)

func registerTestUser(t *testing.T, svcs *testServices, email string) uint {
	t.Helper()

	user, err := svcs.auth.Register(dto.RegisterRequest{Name: "Test", Email: email, Password: "secret1"})
	require.NoError(t, err)
	return user.ID
}

func TestProgressRoundTrip(t *testing.T) {
	svcs := newTestServices(t)
	userID := registerTestUser(t, svcs, "alice@example.com")

	require.NoError(t, svcs.progress.Update(dto.UpdateProgressRequest{
		UserID:             userID,
		CompletedLessons:   []int{1, 2, 3},
		Bookmarks:          []int{2},
		ProgressPercentage: 15,
	}))

	progress, err := svcs.progress.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, progress.CompletedLessons)
	assert.Equal(t, []int{2}, progress.Bookmarks)
	assert.Equal(t, 15, progress.ProgressPercentage)
}

func TestProgressPreservesOrderAndDuplicates(t *testing.T) {
	svcs := newTestServices(t)
	userID := registerTestUser(t, svcs, "alice@example.com")

	require.NoError(t, svcs.progress.Update(dto.UpdateProgressRequest{
		UserID:           userID,
		CompletedLessons: []int{3, 3, 1},
		Bookmarks:        []int{5, 5},
	}))

	progress, err := svcs.progress.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 1}, progress.CompletedLessons)
	assert.Equal(t, []int{5, 5}, progress.Bookmarks)
}

func TestProgressUpdateIsIdempotent(t *testing.T) {
	svcs := newTestServices(t)
	userID := registerTestUser(t, svcs, "alice@example.com")

	req := dto.UpdateProgressRequest{
		UserID:             userID,
		CompletedLessons:   []int{1, 2},
		Bookmarks:          []int{1},
		ProgressPercentage: 10,
	}
	require.NoError(t, svcs.progress.Update(req))
	first, err := svcs.progress.Get(userID)
	require.NoError(t, err)

	require.NoError(t, svcs.progress.Update(req))
	second, err := svcs.progress.Get(userID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProgressUpdateIsFullReplace(t *testing.T) {
	svcs := newTestServices(t)
	userID := registerTestUser(t, svcs, "alice@example.com")

	require.NoError(t, svcs.progress.Update(dto.UpdateProgressRequest{
		UserID:             userID,
		CompletedLessons:   []int{1, 2, 3},
		Bookmarks:          []int{2},
		ProgressPercentage: 15,
	}))

	// Omitted fields fall back to empty/zero, nothing is merged.
	require.NoError(t, svcs.progress.Update(dto.UpdateProgressRequest{UserID: userID}))

	progress, err := svcs.progress.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, []int{}, progress.CompletedLessons)
	assert.Equal(t, []int{}, progress.Bookmarks)
	assert.Equal(t, 0, progress.ProgressPercentage)
}

func TestProgressUpdateUnknownUserIsSilentNoOp(t *testing.T) {
	svcs := newTestServices(t)

	require.NoError(t, svcs.progress.Update(dto.UpdateProgressRequest{
		UserID:           9999,
		CompletedLessons: []int{1},
	}))

	_, err := svcs.progress.Get(9999)
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestProgressGetUnknownUser(t *testing.T) {
	svcs := newTestServices(t)

	_, err := svcs.progress.Get(42)
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "Progress not found", appErr.Message)
}
