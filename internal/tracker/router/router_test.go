package router

import (
	"net/http"
	"testing"

	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func errNotFound() error { return repository.ErrNotFound }

func TestHealth(t *testing.T) {
	e, _, _ := SetupServer(t)

	rec := PerformRequest(e, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentity(t *testing.T) {
	t.Run("missing x-user-id returns 401", func(t *testing.T) {
		e, _, _ := SetupServer(t)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/projects", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode[model.ErrorResponse](t, rec)
		assert.Equal(t, model.CodeUnauthorized, body.Error.Code)
		assert.NotEmpty(t, body.Error.RequestID)
		assert.Equal(t, body.Error.RequestID, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("non-numeric x-user-id returns 401", func(t *testing.T) {
		e, _, _ := SetupServer(t)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/projects", nil, map[string]string{"x-user-id": "alice"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user returns 401", func(t *testing.T) {
		e, _, _ := SetupServer(t)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/projects", nil, as(99))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("incoming request id is echoed", func(t *testing.T) {
		e, _, _ := SetupServer(t)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/projects", nil, map[string]string{echo.HeaderXRequestID: "req-1"})
		assert.Equal(t, "req-1", rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestSignup(t *testing.T) {
	apiPath := "/api/v1/signup"
	payload := map[string]interface{}{
		"username":         "erin",
		"email":            "Erin@Example.com",
		"password":         "s3cretpass",
		"confirm_password": "s3cretpass",
	}

	t.Run("signup without identity and return 201", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "erin@example.com" && u.PasswordHash != "s3cretpass"
		})).Return(nil)

		rec := PerformRequest(e, http.MethodPost, apiPath, payload, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
		repo.AssertExpectations(t)
	})

	t.Run("mismatched confirmation returns 400 with field", func(t *testing.T) {
		e, repo, _ := SetupServer(t)

		bad := map[string]interface{}{
			"username":         "erin",
			"email":            "erin@example.com",
			"password":         "s3cretpass",
			"confirm_password": "different",
		}
		rec := PerformRequest(e, http.MethodPost, apiPath, bad, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[model.ErrorResponse](t, rec)
		assert.Contains(t, body.Error.Fields, "confirm_password")
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("taken username returns 409", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		rec := PerformRequest(e, http.MethodPost, apiPath, payload, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUsers(t *testing.T) {
	t.Run("search users", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("FindUsers", mock.Anything, "bo").Return(users()[1:2], nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/users?search=bo", nil, as(strangerID))
		assert.Equal(t, http.StatusOK, rec.Code)
		got := decode[[]model.UserSummary](t, rec)
		require.Len(t, got, 1)
		assert.Equal(t, "bob", got[0].Username)
	})

	t.Run("delete another user is forbidden", func(t *testing.T) {
		e, repo, _ := SetupServer(t)

		rec := PerformRequest(e, http.MethodDelete, "/api/v1/users/1", nil, as(strangerID))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})

	t.Run("staff deletes a user and return 204", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("DeleteUser", mock.Anything, memberID).Return(nil)

		rec := PerformRequest(e, http.MethodDelete, "/api/v1/users/2", nil, as(staffID))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		repo.AssertExpectations(t)
	})
}
