package order

import (
	"context"

	menuRepo "tably/database/repository/menu"
	orderRepo "tably/database/repository/order"
	"tably/models"
	"tably/services/loyalty"
	"tably/services/menubuilder"
	"tably/services/pod"
)

// CreateOrderInput is the checkout request.
type CreateOrderInput struct {
	SessionID       string `json:"sessionId" binding:"required"`
	FulfillmentType string `json:"fulfillmentType"`
	// LeadTime is "asap" or a number of minutes as a string.
	LeadTime string `json:"leadTime"`
	PodID    string `json:"podId,omitempty"`
}

// OrderService turns checkout-ready builder sessions into persisted orders.
type OrderService interface {
	CreateFromSession(ctx context.Context, tenantID string, input CreateOrderInput) (*models.Order, error)
	GetByID(ctx context.Context, tenantID, orderID string) (*models.Order, error)
	// ListForUser returns a user's order history, newest first.
	ListForUser(ctx context.Context, tenantID, userID string) ([]models.Order, error)
	UpdateArrival(ctx context.Context, tenantID, orderID, leadTime string) (*models.Order, error)
	UpdateStatus(ctx context.Context, tenantID, orderID string, status models.OrderStatus) error
	// StartReorder hydrates a new builder session from a prior order's items.
	StartReorder(ctx context.Context, tenantID, locationID, userID, orderID string) (*menubuilder.BuilderSession, error)
}

// DefaultOrderService implements OrderService.
type DefaultOrderService struct {
	Repo     orderRepo.OrderRepository
	MenuRepo menuRepo.MenuRepository
	Sessions menubuilder.SessionService
	Pods     pod.Service
	Loyalty  loyalty.Service
}
