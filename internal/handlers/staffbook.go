package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/service"
)

type StaffBookHandler struct {
	staffBook *service.StaffBook
}

func NewStaffBookHandler(staffBook *service.StaffBook) *StaffBookHandler {
	return &StaffBookHandler{staffBook: staffBook}
}

func (h *StaffBookHandler) ListStaffBook(c *gin.Context) {
	entries, err := h.staffBook.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to fetch staff book",
			Message: err.Error(),
		})
		return
	}
	if entries == nil {
		entries = []models.StaffBookEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *StaffBookHandler) CreateStaffBookEntry(c *gin.Context) {
	var req models.CreateStaffBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	entry, err := h.staffBook.Create(req)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: ve.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create staff book entry",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *StaffBookHandler) DeleteStaffBookEntry(c *gin.Context) {
	if err := h.staffBook.Delete(c.Param("range")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete staff book entry",
			Message: err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}
