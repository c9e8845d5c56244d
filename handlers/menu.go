package handlers

import (
	"net/http"

	menuRepo "tably/database/repository/menu"
	"tably/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MenuHandler serves the customer-facing menu catalog.
type MenuHandler struct {
	Repo menuRepo.MenuRepository
}

func NewMenuHandler(repo menuRepo.MenuRepository) *MenuHandler {
	return &MenuHandler{Repo: repo}
}

// GetMenuStepsHandler returns the ordered wizard steps for the tenant.
// A catalog load failure is fatal to the builder, so it maps to 502 and the
// client shows its full-screen retry prompt.
func (h *MenuHandler) GetMenuStepsHandler(c *gin.Context) {
	logger := getLogger(c)
	tenant := middleware.TenantFrom(c)
	locationID := c.Query("locationId")

	steps, err := h.Repo.GetSteps(tenant.ID, locationID)
	if err != nil {
		logger.Error("failed to load menu catalog",
			zap.String("tenantId", tenant.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": steps})
}
