package handler

import (
	"net/http"

	"taskhub/internal/tracker/model"

	"github.com/labstack/echo/v4"
)

// ListTasks serves both the project task list and the cross-project /tasks view
func (h *TrackerHandler) ListTasks(c echo.Context) error {
	var req model.ListTasksReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	tasks, err := h.Service.ListTasks(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *TrackerHandler) CreateTask(c echo.Context) error {
	var req model.CreateTaskReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.Service.CreateTask(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *TrackerHandler) GetTask(c echo.Context) error {
	var req model.TaskIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.Service.GetTask(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *TrackerHandler) UpdateTask(c echo.Context) error {
	req := model.UpdateTaskReq{Partial: isPatch(c)}
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.Service.UpdateTask(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *TrackerHandler) DeleteTask(c echo.Context) error {
	var req model.TaskIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Service.DeleteTask(c.Request().Context(), actor, req); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
