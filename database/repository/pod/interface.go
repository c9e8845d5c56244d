package podRepo

import "tably/models"

// PodRepository defines methods for pod data access.
type PodRepository interface {
	// Create inserts a new pod record.
	Create(pod *models.Pod) error
	// GetByID retrieves a pod scoped to a tenant.
	GetByID(tenantID, podID string) (*models.Pod, error)
	// ListByLocation retrieves the pod board for one location.
	ListByLocation(tenantID, locationID string) ([]models.Pod, error)
	// SetStatus transitions a pod from one status to another. The update is
	// conditional on the current status so concurrent board commands cannot
	// double-apply; a failed precondition returns an error.
	SetStatus(tenantID, podID string, from, to models.PodStatus, orderID string) (*models.Pod, error)
	// Delete removes a pod record.
	Delete(tenantID, podID string) error
}
