package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemastery/course_api/dto"
)

func TestListUsersNewestFirst(t *testing.T) {
	svcs := newTestServices(t)

	registerTestUser(t, svcs, "a@example.com")
	registerTestUser(t, svcs, "b@example.com")
	registerTestUser(t, svcs, "c@example.com")

	users, err := svcs.admin.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, "c@example.com", users[0].Email)
	assert.Equal(t, "b@example.com", users[1].Email)
	assert.Equal(t, "a@example.com", users[2].Email)
}

func TestListUsersIncludesProgressSummary(t *testing.T) {
	svcs := newTestServices(t)

	userID := registerTestUser(t, svcs, "alice@example.com")
	require.NoError(t, svcs.progress.Update(dto.UpdateProgressRequest{
		UserID:             userID,
		CompletedLessons:   []int{1, 2, 3},
		Bookmarks:          []int{1},
		ProgressPercentage: 30,
	}))

	users, err := svcs.admin.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, 30, users[0].ProgressPercentage)
	assert.Equal(t, 3, users[0].CompletedLessons)
}

func TestDeleteUserCascadesToProgress(t *testing.T) {
	svcs := newTestServices(t)
	userID := registerTestUser(t, svcs, "alice@example.com")

	require.NoError(t, svcs.admin.DeleteUser(userID))

	_, err := svcs.progress.Get(userID)
	appErr := requireAppError(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)

	users, err := svcs.admin.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDeleteUnknownUserIsNotAnError(t *testing.T) {
	svcs := newTestServices(t)

	assert.NoError(t, svcs.admin.DeleteUser(12345))
}
