package handler

import (
	"net/http"

	"taskhub/internal/tracker/model"

	"github.com/labstack/echo/v4"
)

func (h *TrackerHandler) ListAttachments(c echo.Context) error {
	var req model.TaskIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	attachments, err := h.Service.ListAttachments(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, attachments)
}

func (h *TrackerHandler) CreateAttachment(c echo.Context) error {
	var req model.CreateAttachmentReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	attachment, err := h.Service.CreateAttachment(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, attachment)
}

func (h *TrackerHandler) GetAttachment(c echo.Context) error {
	var req model.AttachmentIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	attachment, err := h.Service.GetAttachment(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, attachment)
}

func (h *TrackerHandler) UpdateAttachment(c echo.Context) error {
	req := model.UpdateAttachmentReq{Partial: isPatch(c)}
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	attachment, err := h.Service.UpdateAttachment(c.Request().Context(), actor, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, attachment)
}

func (h *TrackerHandler) DeleteAttachment(c echo.Context) error {
	var req model.AttachmentIDReq
	actor, err := begin(c, &req)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Service.DeleteAttachment(c.Request().Context(), actor, req); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
