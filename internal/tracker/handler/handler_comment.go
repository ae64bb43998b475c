package handler

import (
	"net/http"

	"taskhub/internal/tracker/model"

	"github.com/labstack/echo/v4"
)

func (h *TrackerHandler) ListComments(c echo.Context) error {
	var req model.TaskIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	comments, err := h.Service.ListComments(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *TrackerHandler) CreateComment(c echo.Context) error {
	var req model.CreateCommentReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	comment, err := h.Service.CreateComment(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *TrackerHandler) GetComment(c echo.Context) error {
	var req model.CommentIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	comment, err := h.Service.GetComment(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *TrackerHandler) UpdateComment(c echo.Context) error {
	req := model.UpdateCommentReq{Partial: isPatch(c)}
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	comment, err := h.Service.UpdateComment(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *TrackerHandler) DeleteComment(c echo.Context) error {
	var req model.CommentIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Service.DeleteComment(c.Request().Context(), actor, req); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
