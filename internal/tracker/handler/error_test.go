package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/service"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", service.ErrUnauthorized, http.StatusUnauthorized, model.CodeUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, model.CodeForbidden},
		{"not found", service.ErrNotFound, http.StatusNotFound, model.CodeNotFound},
		{"wrapped not found", fmt.Errorf("load task: %w", service.ErrNotFound), http.StatusNotFound, model.CodeNotFound},
		{"conflict", service.ErrConflict, http.StatusConflict, model.CodeConflict},
		{"validation", model.NewFieldError("name", "this field is required"), http.StatusBadRequest, model.CodeBadRequest},
		{"unexpected", errors.New("socket closed"), http.StatusInternalServerError, model.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := httpError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}

	t.Run("validation keeps field details", func(t *testing.T) {
		_, body := httpError(model.NewFieldError("user_id", "the project owner cannot be removed"))
		assert.Equal(t, map[string]string{"user_id": "the project owner cannot be removed"}, body.Error.Fields)
	})

	t.Run("internal details are not leaked", func(t *testing.T) {
		_, body := httpError(errors.New("mongo: connection refused"))
		assert.NotContains(t, body.Error.Message, "mongo")
	})
}
