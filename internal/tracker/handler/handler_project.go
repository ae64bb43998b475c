package handler

import (
	"net/http"

	"taskhub/internal/tracker/model"

	"github.com/labstack/echo/v4"
)

func (h *TrackerHandler) ListProjects(c echo.Context) error {
	var req model.ListProjectsReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	projects, err := h.Service.ListProjects(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *TrackerHandler) CreateProject(c echo.Context) error {
	var req model.CreateProjectReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	project, err := h.Service.CreateProject(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *TrackerHandler) GetProject(c echo.Context) error {
	var req model.ProjectIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	project, err := h.Service.GetProject(c.Request().Context(), actor, req.ProjectID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

// UpdateProject serves both PUT and PATCH
func (h *TrackerHandler) UpdateProject(c echo.Context) error {
	req := model.UpdateProjectReq{Partial: isPatch(c)}
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	project, err := h.Service.UpdateProject(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *TrackerHandler) DeleteProject(c echo.Context) error {
	var req model.ProjectIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Service.DeleteProject(c.Request().Context(), actor, req.ProjectID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TrackerHandler) AddMember(c echo.Context) error {
	var req model.MemberReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	project, err := h.Service.AddMember(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *TrackerHandler) RemoveMember(c echo.Context) error {
	var req model.MemberReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	project, err := h.Service.RemoveMember(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}
