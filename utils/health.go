package utils

import (
	"context"
	"time"

	"tably/database"
)

// HealthStatus reports the state of the service's backing stores.
type HealthStatus struct {
	Mongo string `json:"mongo"`
	Redis string `json:"redis"`
}

// CheckHealth pings Mongo and Redis with a short deadline.
func CheckHealth() HealthStatus {
	status := HealthStatus{Mongo: "ok", Redis: "ok"}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if database.MongoClient == nil || database.MongoClient.Ping(ctx, nil) != nil {
		status.Mongo = "unreachable"
	}
	if err := GetCacheClient().Ping(ctx).Err(); err != nil {
		status.Redis = "unreachable"
	}
	return status
}
