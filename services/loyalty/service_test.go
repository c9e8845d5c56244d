package loyalty

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

// unreachableClient returns a client whose every command fails with a dial
// error rather than redis.Nil.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestBalancePropagatesBackendErrors(t *testing.T) {
	svc := &DefaultLoyaltyService{Client: unreachableClient()}

	if _, _, err := svc.Balance(context.Background(), "tenant-1", "user-1"); err == nil {
		t.Fatalf("expected error when the points store is unreachable, got a zero balance")
	}
}

func TestAccrueZeroPointsPropagatesBackendErrors(t *testing.T) {
	svc := &DefaultLoyaltyService{Client: unreachableClient()}

	// A sub-unit total accrues nothing and falls through to a balance read,
	// which must still surface the outage.
	if _, err := svc.Accrue(context.Background(), "tenant-1", "user-1", 50); err == nil {
		t.Fatalf("expected error when the points store is unreachable")
	}
}
