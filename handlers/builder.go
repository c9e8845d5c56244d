package handlers

import (
	"errors"
	"net/http"

	"tably/middleware"
	"tably/services/menubuilder"
	"tably/services/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuilderHandler exposes the menu-builder session endpoints.
type BuilderHandler struct {
	Sessions menubuilder.SessionService
	Orders   order.OrderService
}

func NewBuilderHandler(sessions menubuilder.SessionService, orders order.OrderService) *BuilderHandler {
	return &BuilderHandler{Sessions: sessions, Orders: orders}
}

// StartSessionHandler opens a new builder session, optionally hydrated from
// a prior order for reordering.
func (h *BuilderHandler) StartSessionHandler(c *gin.Context) {
	logger := getLogger(c)
	tenant := middleware.TenantFrom(c)

	var input struct {
		LocationID     string `json:"locationId" binding:"required"`
		UserID         string `json:"userId"`
		ReorderOrderID string `json:"reorderOrderId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var (
		session *menubuilder.BuilderSession
		err     error
	)
	if input.ReorderOrderID != "" {
		session, err = h.Orders.StartReorder(c.Request.Context(), tenant.ID, input.LocationID, input.UserID, input.ReorderOrderID)
	} else {
		session, err = h.Sessions.Start(tenant.ID, input.LocationID, input.UserID, nil)
	}
	if err != nil {
		logger.Error("failed to start builder session", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to start session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSessionHandler returns the current session state and advisory total.
func (h *BuilderHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Sessions.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "builder session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectHandler records the single choice for a SINGLE section.
func (h *BuilderHandler) SelectHandler(c *gin.Context) {
	var input struct {
		SectionID string `json:"sectionId" binding:"required"`
		ItemID    string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Sessions.Select(c.Param("sessionID"), input.SectionID, input.ItemID)
	h.respond(c, session, err)
}

// AdjustHandler applies a +/- quantity delta to a cart item.
func (h *BuilderHandler) AdjustHandler(c *gin.Context) {
	var input struct {
		ItemID string `json:"itemId" binding:"required"`
		Delta  int    `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Sessions.Adjust(c.Param("sessionID"), input.ItemID, input.Delta)
	h.respond(c, session, err)
}

// SetQuantityHandler stores an absolute quantity for a cart item.
func (h *BuilderHandler) SetQuantityHandler(c *gin.Context) {
	var input struct {
		ItemID   string `json:"itemId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Sessions.SetQuantity(c.Param("sessionID"), input.ItemID, input.Quantity)
	h.respond(c, session, err)
}

// SliderHandler writes a slider value (clamped server-side).
func (h *BuilderHandler) SliderHandler(c *gin.Context) {
	var input struct {
		ItemID string `json:"itemId" binding:"required"`
		Value  int    `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Sessions.SetSlider(c.Param("sessionID"), input.ItemID, input.Value)
	h.respond(c, session, err)
}

// AdvanceHandler moves the session to the next wizard step. Incomplete
// required sections block with 409 and the section names for messaging.
func (h *BuilderHandler) AdvanceHandler(c *gin.Context) {
	session, err := h.Sessions.Advance(c.Param("sessionID"))
	if err != nil {
		var vErr *menubuilder.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusConflict, gin.H{"error": vErr.Message, "blockingSections": vErr.Sections})
		case errors.Is(err, menubuilder.ErrNoBaseDish):
			c.JSON(http.StatusConflict, gin.H{"error": menubuilder.ErrNoBaseDish.Error()})
		case errors.Is(err, menubuilder.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSessionHandler discards a session.
func (h *BuilderHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Sessions.Cancel(c.Param("sessionID")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to cancel session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *BuilderHandler) respond(c *gin.Context, session *menubuilder.BuilderSession, err error) {
	if err != nil {
		if errors.Is(err, menubuilder.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}
