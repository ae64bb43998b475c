package handler

import (
	"net/http"

	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/service"

	"github.com/labstack/echo/v4"
)

type TrackerHandler struct {
	Service service.TrackerService
}

func NewTrackerHandler(s service.TrackerService) *TrackerHandler {
	return &TrackerHandler{Service: s}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

var pathBinder = &echo.DefaultBinder{}

type validatable interface {
	Validate() error
}

// bind fills req from path, query and body, then normalizes and validates it.
// Path params are bound again last so the URL key always wins over the body.
func bind(c echo.Context, req validatable) error {
	if err := c.Bind(req); err != nil {
		return &model.ErrorDetail{Code: model.CodeBadRequest, Message: "Invalid parameters"}
	}
	if err := pathBinder.BindPathParams(c, req); err != nil {
		return &model.ErrorDetail{Code: model.CodeBadRequest, Message: "Invalid parameters"}
	}
	return req.Validate()
}

// begin resolves the caller and binds the request in one step
func begin(c echo.Context, req validatable) (model.Actor, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return model.Actor{}, err
	}
	if err := bind(c, req); err != nil {
		return model.Actor{}, err
	}
	return actor, nil
}

func isPatch(c echo.Context) bool {
	return c.Request().Method == http.MethodPatch
}
