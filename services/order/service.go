package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tably/config"
	"tably/models"
	"tably/services/menubuilder"
	"tably/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateFromSession turns a checkout-ready builder session into a persisted
// order. The total is recomputed here from the serialized items — whatever
// the builder showed the customer was advisory only. On success the session
// is deleted, which also guards against duplicate submission; on failure it
// is retained so the customer can retry.
func (s *DefaultOrderService) CreateFromSession(ctx context.Context, tenantID string, input CreateOrderInput) (*models.Order, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Get(input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.TenantID != tenantID {
		return nil, fmt.Errorf("builder session does not belong to this tenant")
	}
	if !session.CheckoutReady {
		return nil, fmt.Errorf("builder session has not reached checkout")
	}

	steps, err := s.MenuRepo.GetSteps(session.TenantID, session.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu catalog: %w", err)
	}
	catalog := menubuilder.NewCatalog(steps)

	items := menubuilder.Serialize(session.State, catalog)
	if len(items) == 0 {
		return nil, fmt.Errorf("nothing to order")
	}
	totalCents := menubuilder.PriceOrderItems(items, catalog)

	arrival, err := ParseArrival(input.LeadTime, time.Now())
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:               uuid.New().String(),
		OrderNumber:      newOrderNumber(),
		TenantID:         session.TenantID,
		LocationID:       session.LocationID,
		UserID:           session.UserID,
		PodID:            input.PodID,
		Items:            items,
		TotalCents:       totalCents,
		Currency:         config.AppConfig.Currency,
		FulfillmentType:  input.FulfillmentType,
		EstimatedArrival: arrival,
		Status:           models.OrderPending,
	}

	intentID, err := createPaymentIntent(totalCents, order.Currency, order.ID)
	if err != nil {
		return nil, err
	}
	order.PaymentIntentID = intentID

	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}

	if input.PodID != "" && s.Pods != nil {
		if _, err := s.Pods.Reserve(tenantID, input.PodID, order.ID); err != nil {
			logger.Warn("failed to reserve pod for order",
				zap.String("orderId", order.ID), zap.String("podId", input.PodID), zap.Error(err))
		}
	}

	if order.UserID != "" && s.Loyalty != nil {
		if _, err := s.Loyalty.Accrue(ctx, tenantID, order.UserID, totalCents); err != nil {
			logger.Error("failed to accrue loyalty points",
				zap.String("orderId", order.ID), zap.Error(err))
		}
	}

	if err := s.Sessions.Complete(input.SessionID); err != nil {
		logger.Warn("failed to delete completed builder session",
			zap.String("sessionId", input.SessionID), zap.Error(err))
	}

	return order, nil
}

// GetByID retrieves an order.
func (s *DefaultOrderService) GetByID(ctx context.Context, tenantID, orderID string) (*models.Order, error) {
	return s.Repo.GetByID(tenantID, orderID)
}

// ListForUser returns a user's order history, newest first. The history
// feeds the reorder picker.
func (s *DefaultOrderService) ListForUser(ctx context.Context, tenantID, userID string) ([]models.Order, error) {
	return s.Repo.GetByUser(tenantID, userID)
}

// UpdateArrival re-times an existing order.
func (s *DefaultOrderService) UpdateArrival(ctx context.Context, tenantID, orderID, leadTime string) (*models.Order, error) {
	arrival, err := ParseArrival(leadTime, time.Now())
	if err != nil {
		return nil, err
	}
	return s.Repo.UpdateArrival(tenantID, orderID, arrival)
}

// UpdateStatus moves an order through the kitchen, mirroring terminal
// transitions onto the seated pod: a completed order sends the pod to
// cleaning, a cancelled one releases the reservation.
func (s *DefaultOrderService) UpdateStatus(ctx context.Context, tenantID, orderID string, status models.OrderStatus) error {
	order, err := s.Repo.GetByID(tenantID, orderID)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdateStatus(tenantID, orderID, status); err != nil {
		return err
	}
	if order.PodID == "" || s.Pods == nil {
		return nil
	}
	logger := utils.GetLogger()
	switch status {
	case models.OrderCompleted:
		if _, err := s.Pods.StartCleaning(tenantID, order.PodID); err != nil {
			logger.Warn("pod not moved to cleaning", zap.String("podId", order.PodID), zap.Error(err))
		}
	case models.OrderCancelled:
		if _, err := s.Pods.Release(tenantID, order.PodID); err != nil {
			logger.Warn("pod not released", zap.String("podId", order.PodID), zap.Error(err))
		}
	}
	return nil
}

// StartReorder hydrates a fresh builder session from a prior order. The
// builder then skips the menu steps and goes straight to checkout.
func (s *DefaultOrderService) StartReorder(ctx context.Context, tenantID, locationID, userID, orderID string) (*menubuilder.BuilderSession, error) {
	prior, err := s.Repo.GetByID(tenantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("prior order not found: %w", err)
	}
	if locationID == "" {
		locationID = prior.LocationID
	}
	return s.Sessions.Start(tenantID, locationID, userID, prior)
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return time.Now().Format("060102") + "-" + suffix
}
