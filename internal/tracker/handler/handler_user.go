package handler

import (
	"net/http"

	"taskhub/internal/tracker/model"

	"github.com/labstack/echo/v4"
)

// Signup handles POST /signup. It is the only API route that needs no caller identity.
func (h *TrackerHandler) Signup(c echo.Context) error {
	var req model.SignupReq
	if err := bind(c, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.Service.Signup(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *TrackerHandler) ListUsers(c echo.Context) error {
	var req model.ListUsersReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	users, err := h.Service.SearchUsers(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *TrackerHandler) GetUser(c echo.Context) error {
	var req model.GetUserReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.Service.GetUser(c.Request().Context(), actor, req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *TrackerHandler) DeleteUser(c echo.Context) error {
	var req model.GetUserReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Service.DeleteUser(c.Request().Context(), actor, req.UserID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
