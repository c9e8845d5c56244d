package tenantRepo

import "tably/models"

// TenantRepository defines methods for tenant data access.
type TenantRepository interface {
	// GetBySlug retrieves a tenant by its URL slug. Returns nil when the
	// slug is unknown.
	GetBySlug(slug string) (*models.Tenant, error)
	// GetByID retrieves a tenant by its ID.
	GetByID(id string) (*models.Tenant, error)
	// GetAll retrieves all tenants.
	GetAll() ([]models.Tenant, error)
	// Create inserts a new tenant record.
	Create(tenant *models.Tenant) error
	// Update modifies an existing tenant record.
	Update(tenant *models.Tenant) error
	// Delete removes a tenant record by its ID.
	Delete(id string) error
}
