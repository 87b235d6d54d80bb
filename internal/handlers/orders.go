package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/query"
	"rajmahal-backend/internal/realtime"
	"rajmahal-backend/internal/service"
	"rajmahal-backend/internal/store"
)

type OrdersHandler struct {
	orders *service.Orders
	hub    *realtime.Hub
}

func NewOrdersHandler(orders *service.Orders, hub *realtime.Hub) *OrdersHandler {
	return &OrdersHandler{orders: orders, hub: hub}
}

// ListOrders returns all orders, optionally filtered and sorted through
// query parameters: sno (substring), product (substring, case-insensitive),
// status (exact), window (today|tomorrow|thisweek|thismonth) and
// sort (ascending|descending) on delivery date.
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to fetch orders",
			Message: err.Error(),
		})
		return
	}

	orders = query.FilterOrders(orders, query.Criteria{
		SerialContains:  c.Query("sno"),
		ProductContains: c.Query("product"),
		Status:          c.Query("status"),
		DateWindow:      c.Query("window"),
		DateOrder:       c.Query("sort"),
	})

	c.JSON(http.StatusOK, orders)
}

func (h *OrdersHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Param("sno"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to fetch order",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	order, err := h.orders.Create(req)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: ve.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create order",
			Message: err.Error(),
		})
		return
	}

	h.hub.Broadcast("order_created", order)
	c.JSON(http.StatusCreated, order)
}

func (h *OrdersHandler) UpdateOrder(c *gin.Context) {
	var update models.OrderUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	order, err := h.orders.Update(c.Param("sno"), update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update order",
			Message: err.Error(),
		})
		return
	}

	h.hub.Broadcast("order_updated", order)
	c.JSON(http.StatusOK, order)
}

func (h *OrdersHandler) DeleteOrder(c *gin.Context) {
	sno := c.Param("sno")
	if err := h.orders.Delete(sno); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete order",
			Message: err.Error(),
		})
		return
	}

	h.hub.Broadcast("order_deleted", gin.H{"sno": sno})
	c.Status(http.StatusNoContent)
}
