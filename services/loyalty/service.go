package loyalty

import (
	"context"
	"errors"
	"fmt"

	"tably/utils"

	"github.com/go-redis/redis/v8"
)

// Service tracks loyalty point balances per user.
type Service interface {
	// Accrue adds the points earned by an order and returns the new balance.
	Accrue(ctx context.Context, tenantID, userID string, totalCents int64) (int64, error)
	// Balance returns the current points and tier for a user.
	Balance(ctx context.Context, tenantID, userID string) (int64, string, error)
}

// DefaultLoyaltyService keeps balances in the loyalty Redis DB. A nil Client
// falls back to the shared loyalty cache client.
type DefaultLoyaltyService struct {
	Client *redis.Client
}

func (s *DefaultLoyaltyService) client() *redis.Client {
	if s.Client != nil {
		return s.Client
	}
	return utils.GetLoyaltyCacheClient()
}

func pointsKey(tenantID, userID string) string {
	return fmt.Sprintf("loyalty:points:%s:%s", tenantID, userID)
}

// Accrue adds the points earned by an order.
func (s *DefaultLoyaltyService) Accrue(ctx context.Context, tenantID, userID string, totalCents int64) (int64, error) {
	points := PointsForOrder(totalCents)
	if points == 0 {
		return s.currentPoints(ctx, tenantID, userID)
	}
	balance, err := s.client().IncrBy(ctx, pointsKey(tenantID, userID), points).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to accrue loyalty points: %w", err)
	}
	return balance, nil
}

// Balance returns the current points and tier for a user.
func (s *DefaultLoyaltyService) Balance(ctx context.Context, tenantID, userID string) (int64, string, error) {
	points, err := s.currentPoints(ctx, tenantID, userID)
	if err != nil {
		return 0, "", err
	}
	return points, TierFor(points), nil
}

func (s *DefaultLoyaltyService) currentPoints(ctx context.Context, tenantID, userID string) (int64, error) {
	points, err := s.client().Get(ctx, pointsKey(tenantID, userID)).Int64()
	if errors.Is(err, redis.Nil) {
		// Missing key means a zero balance.
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read loyalty balance: %w", err)
	}
	return points, nil
}
