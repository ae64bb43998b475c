package handler

import (
	"strconv"
	"strings"

	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID = "x-user-id"
	actorKey     = "actor"
)

func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, reqID)
		return next(c)
	}
}

// IdentityMiddleware resolves the x-user-id header to a stored user.
// A missing, malformed or unknown id is rejected with 401.
func IdentityMiddleware(svc service.TrackerService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if raw == "" {
				return respondError(c, service.ErrUnauthorized)
			}
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return respondError(c, service.ErrUnauthorized)
			}

			actor, err := svc.ResolveActor(c.Request().Context(), userID)
			if err != nil {
				return respondError(c, err)
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (model.Actor, error) {
	actor, ok := c.Get(actorKey).(model.Actor)
	if !ok || actor.ID == 0 {
		return model.Actor{}, service.ErrUnauthorized
	}
	return actor, nil
}
