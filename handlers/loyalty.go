package handlers

import (
	"net/http"

	"tably/middleware"
	"tably/services/loyalty"
	"tably/utils"

	"github.com/gin-gonic/gin"
)

// LoyaltyHandler exposes the customer's points balance and tier.
type LoyaltyHandler struct {
	Svc loyalty.Service
}

func NewLoyaltyHandler(svc loyalty.Service) *LoyaltyHandler {
	return &LoyaltyHandler{Svc: svc}
}

// BalanceHandler returns the lifetime points and current tier for a user.
func (h *LoyaltyHandler) BalanceHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	userID := c.Param("userID")

	points, tier, err := h.Svc.Balance(c.Request.Context(), tenant.ID, userID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load loyalty balance", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points, "tier": tier})
}
