package handlers

import (
	"errors"
	"net/http"

	"tably/middleware"
	"tably/models"
	"tably/services/menubuilder"
	"tably/services/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler exposes order creation and management endpoints.
type OrderHandler struct {
	Svc order.OrderService
}

func NewOrderHandler(svc order.OrderService) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

// CreateOrderHandler submits a checkout-ready builder session as an order.
// The response carries the authoritative server-computed total; clients must
// use it for payment, never their own advisory figure.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	logger := getLogger(c)
	tenant := middleware.TenantFrom(c)

	var input order.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.CreateFromSession(c.Request.Context(), tenant.ID, input)
	if err != nil {
		if errors.Is(err, menubuilder.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("order creation failed", zap.String("sessionId", input.SessionID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "order creation failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          created.ID,
		"orderNumber": created.OrderNumber,
		"totalCents":  created.TotalCents,
		"order":       created,
	})
}

// GetOrderHandler returns one order.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	found, err := h.Svc.GetByID(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListOrdersHandler returns a user's order history for the reorder picker.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}

	orders, err := h.Svc.ListForUser(c.Request.Context(), tenant.ID, userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load order history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateArrivalHandler re-times an existing (e.g. reordered) order.
func (h *OrderHandler) UpdateArrivalHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)

	var input struct {
		EstimatedArrival string `json:"estimatedArrival" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Svc.UpdateArrival(c.Request.Context(), tenant.ID, c.Param("id"), input.EstimatedArrival)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateStatusHandler moves an order through the kitchen (staff only).
func (h *OrderHandler) UpdateStatusHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)

	var input struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.UpdateStatus(c.Request.Context(), tenant.ID, c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}
