package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/service"
)

type SyncHandler struct {
	sync *service.Sync
}

func NewSyncHandler(sync *service.Sync) *SyncHandler {
	return &SyncHandler{sync: sync}
}

func (h *SyncHandler) SyncExternal(c *gin.Context) {
	result, err := h.sync.SyncAll()
	if err != nil {
		if errors.Is(err, service.ErrSyncNotConfigured) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "spreadsheet sync not configured, set SHEETS_SYNC_URL",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to sync to spreadsheet",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.SyncResponse{
		Message: "data synced to spreadsheet successfully",
		Result:  result,
	})
}

func (h *SyncHandler) SyncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Status())
}
