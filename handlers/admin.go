package handlers

import (
	"net/http"
	"time"

	menuRepo "tably/database/repository/menu"
	tenantRepo "tably/database/repository/tenant"
	"tably/middleware"
	"tably/models"
	"tably/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const staffTokenTTL = 12 * time.Hour

// AdminHandler covers the back-office surface: staff signin, tenant and
// location management, and menu catalog authoring.
type AdminHandler struct {
	Tenants tenantRepo.TenantRepository
	Menus   menuRepo.MenuRepository
}

func NewAdminHandler(tenants tenantRepo.TenantRepository, menus menuRepo.MenuRepository) *AdminHandler {
	return &AdminHandler{Tenants: tenants, Menus: menus}
}

// StaffSigninHandler exchanges staff credentials for a tenant-scoped JWT.
func (h *AdminHandler) StaffSigninHandler(c *gin.Context) {
	logger := getLogger(c)
	tenant := middleware.TenantFrom(c)

	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var account *models.StaffAccount
	for i := range tenant.Staff {
		if tenant.Staff[i].Email == input.Email {
			account = &tenant.Staff[i]
			break
		}
	}
	if account == nil || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateStaffToken(account.Email, tenant.ID, account.Role, staffTokenTTL)
	if err != nil {
		logger.Error("failed to sign staff token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": account.Role})
}

// CreateTenantHandler provisions a new tenant. This is a platform operation
// and sits outside the tenant-scoped route groups.
func (h *AdminHandler) CreateTenantHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Slug      string            `json:"slug" binding:"required"`
		Name      string            `json:"name" binding:"required"`
		Locations []models.Location `json:"locations"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	existing, err := h.Tenants.GetBySlug(input.Slug)
	if err != nil {
		logger.Error("tenant lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "tenant lookup failed"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		return
	}

	now := time.Now().UTC()
	tenant := &models.Tenant{
		ID:        uuid.New().String(),
		Slug:      input.Slug,
		Name:      input.Name,
		Locations: input.Locations,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Tenants.Create(tenant); err != nil {
		logger.Error("failed to create tenant", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create tenant"})
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

// GetTenantHandler returns the resolved tenant's own record.
func (h *AdminHandler) GetTenantHandler(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.TenantFrom(c))
}

// UpdateTenantHandler edits the tenant's name, locations or active flag.
func (h *AdminHandler) UpdateTenantHandler(c *gin.Context) {
	logger := getLogger(c)
	tenant := middleware.TenantFrom(c)

	var input struct {
		Name      *string           `json:"name"`
		Locations []models.Location `json:"locations"`
		Active    *bool             `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if input.Name != nil {
		tenant.Name = *input.Name
	}
	if input.Locations != nil {
		tenant.Locations = input.Locations
	}
	if input.Active != nil {
		tenant.Active = *input.Active
	}
	tenant.UpdatedAt = time.Now().UTC()

	if err := h.Tenants.Update(tenant); err != nil {
		logger.Error("failed to update tenant", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update tenant"})
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// ListTenantsHandler returns every tenant on the platform.
func (h *AdminHandler) ListTenantsHandler(c *gin.Context) {
	tenants, err := h.Tenants.GetAll()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list tenants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenants": tenants})
}

// DeleteTenantHandler removes a tenant from the platform.
func (h *AdminHandler) DeleteTenantHandler(c *gin.Context) {
	id := c.Param("id")
	if tenant, err := h.Tenants.GetByID(id); err != nil || tenant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tenant"})
		return
	}
	if err := h.Tenants.Delete(id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete tenant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetMenuStepHandler returns one wizard step for editing.
func (h *AdminHandler) GetMenuStepHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	step, err := h.Menus.GetStep(tenant.ID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu step not found"})
		return
	}
	c.JSON(http.StatusOK, step)
}

// UpsertMenuStepHandler creates or replaces one wizard step of the catalog.
func (h *AdminHandler) UpsertMenuStepHandler(c *gin.Context) {
	logger := getLogger(c)
	tenant := middleware.TenantFrom(c)

	var step models.MenuStep
	if err := c.ShouldBindJSON(&step); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if step.ID == "" {
		step.ID = uuid.New().String()
	}
	step.TenantID = tenant.ID
	now := time.Now().UTC()
	if step.CreatedAt.IsZero() {
		step.CreatedAt = now
	}
	step.UpdatedAt = now

	if err := h.Menus.UpsertStep(&step); err != nil {
		logger.Error("failed to upsert menu step", zap.String("stepId", step.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save menu step"})
		return
	}
	c.JSON(http.StatusOK, &step)
}

// DeleteMenuStepHandler removes one wizard step.
func (h *AdminHandler) DeleteMenuStepHandler(c *gin.Context) {
	tenant := middleware.TenantFrom(c)
	if err := h.Menus.DeleteStep(tenant.ID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete menu step"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
