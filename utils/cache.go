package utils

import (
	"context"
	"log"
	"time"

	"tably/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// SessionCacheClient is the dedicated client for menu-builder sessions.
	SessionCacheClient *redis.Client
	// LoyaltyCacheClient is the dedicated client for loyalty point balances.
	LoyaltyCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	LoyaltyCacheClient = newRedisClient(config.AppConfig.RedisLoyaltyDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetSessionCacheClient returns the Redis client holding builder sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}

// GetLoyaltyCacheClient returns the Redis client holding loyalty balances.
func GetLoyaltyCacheClient() *redis.Client {
	if LoyaltyCacheClient == nil {
		LoyaltyCacheClient = newRedisClient(config.AppConfig.RedisLoyaltyDB)
	}
	return LoyaltyCacheClient
}
