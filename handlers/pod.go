package handlers

import (
	"errors"
	"net/http"

	"tably/middleware"
	"tably/models"
	"tably/services/pod"
	"tably/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PodHandler exposes the pod operations board.
type PodHandler struct {
	Svc pod.Service
}

func NewPodHandler(svc pod.Service) *PodHandler {
	return &PodHandler{Svc: svc}
}

// ListPodsHandler returns the board for one location. Clients poll this.
func (h *PodHandler) ListPodsHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	pods, err := h.Svc.List(tenant.ID, c.Query("locationId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to list pods", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"pods": pods})
}

// CreatePodHandler registers a new pod (staff only).
func (h *PodHandler) CreatePodHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)

	var input struct {
		LocationID string `json:"locationId" binding:"required"`
		Label      string `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p := &models.Pod{
		ID:         uuid.New().String(),
		TenantID:   tenant.ID,
		LocationID: input.LocationID,
		Label:      input.Label,
		Status:     models.PodAvailable,
	}
	if err := h.Svc.CreatePod(p); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to create pod", err.Error())
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ConfirmArrivalHandler flips a reserved pod to occupied.
func (h *PodHandler) ConfirmArrivalHandler(c *gin.Context) {
	h.command(c, func(tenantID, podID string) (*models.Pod, error) {
		return h.Svc.ConfirmArrival(tenantID, podID)
	})
}

// StartCleaningHandler flips an occupied pod to cleaning.
func (h *PodHandler) StartCleaningHandler(c *gin.Context) {
	h.command(c, func(tenantID, podID string) (*models.Pod, error) {
		return h.Svc.StartCleaning(tenantID, podID)
	})
}

// MarkCleanHandler returns a pod to the available pool.
func (h *PodHandler) MarkCleanHandler(c *gin.Context) {
	h.command(c, func(tenantID, podID string) (*models.Pod, error) {
		return h.Svc.MarkClean(tenantID, podID)
	})
}

// DeletePodHandler retires a pod from the board (staff only).
func (h *PodHandler) DeletePodHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	if err := h.Svc.RemovePod(tenant.ID, c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to delete pod", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *PodHandler) command(c *gin.Context, apply func(tenantID, podID string) (*models.Pod, error)) {
	tenant := middleware.TenantFrom(c)
	updated, err := apply(tenant.ID, c.Param("id"))
	if err != nil {
		var tErr *pod.TransitionError
		if errors.As(err, &tErr) {
			c.JSON(http.StatusConflict, gin.H{"error": tErr.Message})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
