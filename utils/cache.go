// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"doctigo/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for booking session storage.
	SessionCacheClient *redis.Client
	// VitalsCacheClient is the dedicated client for published vitals snapshots.
	VitalsCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for booking sessions (using DB from AppConfig).
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the booking session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitVitalsCache initializes the Redis client for vitals snapshots (using DB from AppConfig).
func InitVitalsCache() {
	VitalsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisVitalsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := VitalsCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Vitals Cache): %v", err)
	}
}

// GetVitalsCacheClient returns the vitals snapshot cache client.
func GetVitalsCacheClient() *redis.Client {
	if VitalsCacheClient == nil {
		InitVitalsCache()
	}
	return VitalsCacheClient
}
