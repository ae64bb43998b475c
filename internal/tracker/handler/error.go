package handler

import (
	"errors"
	"net/http"

	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/service"
	"taskhub/internal/tracker/util"

	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, model.ErrorResponse) {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		body := *detail
		if body.Code == "" {
			body.Code = model.CodeBadRequest
		}
		return http.StatusBadRequest, model.ErrorResponse{Error: body}
	}

	var status int
	var code, msg string
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status, code, msg = http.StatusUnauthorized, model.CodeUnauthorized, "Authentication required"
	case errors.Is(err, service.ErrForbidden):
		status, code, msg = http.StatusForbidden, model.CodeForbidden, "Permission denied"
	case errors.Is(err, service.ErrNotFound):
		status, code, msg = http.StatusNotFound, model.CodeNotFound, "Not found"
	case errors.Is(err, service.ErrConflict):
		status, code, msg = http.StatusConflict, model.CodeConflict, "Username or email already taken"
	default:
		status, code, msg = http.StatusInternalServerError, model.CodeInternal, "Internal server error"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

// respondError writes err as JSON, tagged with the request id
func respondError(c echo.Context, err error) error {
	status, body := httpError(err)
	body.Error.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)
	if status == http.StatusInternalServerError {
		util.GetLogger().Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", body.Error.RequestID,
			"error", err,
		)
	}
	return c.JSON(status, body)
}
