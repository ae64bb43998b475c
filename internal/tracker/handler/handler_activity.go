package handler

import (
	"net/http"

	"taskhub/internal/tracker/model"

	"github.com/labstack/echo/v4"
)

// ListActivity handles GET /projects/:project_id/activity and its per-task variant
func (h *TrackerHandler) ListActivity(c echo.Context) error {
	var req model.ListActivityReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.Service.ListActivity(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
