package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/realtime"
	"rajmahal-backend/internal/service"
	"rajmahal-backend/internal/store"
)

type EntryStatusHandler struct {
	entryStatuses *service.EntryStatuses
	hub           *realtime.Hub
}

func NewEntryStatusHandler(entryStatuses *service.EntryStatuses, hub *realtime.Hub) *EntryStatusHandler {
	return &EntryStatusHandler{entryStatuses: entryStatuses, hub: hub}
}

func (h *EntryStatusHandler) ListEntryStatuses(c *gin.Context) {
	entries, err := h.entryStatuses.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to fetch entry statuses",
			Message: err.Error(),
		})
		return
	}
	if entries == nil {
		entries = []models.EntryStatus{}
	}
	c.JSON(http.StatusOK, entries)
}

// ListEntryStatusesForOrder serves GET /orders/:sno/entry-status. Entry
// statuses survive order deletion, so this also answers for orders that
// no longer exist.
func (h *EntryStatusHandler) ListEntryStatusesForOrder(c *gin.Context) {
	entries, err := h.entryStatuses.ListBySno(c.Param("sno"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to fetch entry statuses",
			Message: err.Error(),
		})
		return
	}
	if entries == nil {
		entries = []models.EntryStatus{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *EntryStatusHandler) CreateEntryStatus(c *gin.Context) {
	var req models.CreateEntryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	entry, err := h.entryStatuses.Add(req)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: ve.Reason})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create entry status",
			Message: err.Error(),
		})
		return
	}

	h.hub.Broadcast("entry_status_added", entry)
	c.JSON(http.StatusCreated, entry)
}

func (h *EntryStatusHandler) DeleteEntryStatus(c *gin.Context) {
	if err := h.entryStatuses.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete entry status",
			Message: err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}
