package menuRepo

import "tably/models"

// MenuRepository defines methods for menu catalog data access.
type MenuRepository interface {
	// GetSteps retrieves a tenant's menu steps in wizard order. Steps bound
	// to a specific location are merged with the tenant-wide ones.
	GetSteps(tenantID, locationID string) ([]models.MenuStep, error)
	// GetStep retrieves one step by its ID.
	GetStep(tenantID, stepID string) (*models.MenuStep, error)
	// UpsertStep inserts or replaces a step.
	UpsertStep(step *models.MenuStep) error
	// DeleteStep removes a step by its ID.
	DeleteStep(tenantID, stepID string) error
}
