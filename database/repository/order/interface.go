package orderRepo

import (
	"time"

	"tably/models"
)

// OrderRepository defines methods for order data access.
type OrderRepository interface {
	// Create inserts a new order record.
	Create(order *models.Order) error
	// GetByID retrieves an order scoped to a tenant.
	GetByID(tenantID, orderID string) (*models.Order, error)
	// GetByUser retrieves a user's orders, newest first.
	GetByUser(tenantID, userID string) ([]models.Order, error)
	// UpdateArrival rewrites the estimated arrival of an existing order.
	UpdateArrival(tenantID, orderID string, arrival time.Time) (*models.Order, error)
	// UpdateStatus moves an order to a new status.
	UpdateStatus(tenantID, orderID string, status models.OrderStatus) error
}
