package menubuilder

import (
	"time"

	menuRepo "tably/database/repository/menu"
	"tably/models"
)

// SessionService manages stateful menu-builder sessions. Every mutation
// reloads the session from Redis, applies the change through the selection
// state's operations, recomputes the advisory total and writes the session
// back with a fresh TTL.
type SessionService interface {
	Start(tenantID, locationID, userID string, reorder *models.Order) (*BuilderSession, error)
	Get(sessionID string) (*BuilderSession, error)
	Select(sessionID, sectionID, itemID string) (*BuilderSession, error)
	Adjust(sessionID, itemID string, delta int) (*BuilderSession, error)
	SetQuantity(sessionID, itemID string, quantity int) (*BuilderSession, error)
	SetSlider(sessionID, itemID string, value int) (*BuilderSession, error)
	Advance(sessionID string) (*BuilderSession, error)
	Cancel(sessionID string) error
	// Complete removes a session after its order has been accepted. Failed
	// submissions leave the session in place so the customer can retry.
	Complete(sessionID string) error
}

// DefaultSessionService implements SessionService on top of the session
// Redis DB and the tenant's menu catalog.
type DefaultSessionService struct {
	MenuRepo menuRepo.MenuRepository
	TTL      time.Duration
}
