// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"eraflix/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for token revocation checks.
	AuthCacheClient *redis.Client
)

// InitAuthCache initializes the Redis client for the token revocation set.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for token revocation checks.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

const revokedTokenPrefix = "revokedToken:"

// IsTokenRevoked reports whether the given token hash is present in the revocation set.
func IsTokenRevoked(client *redis.Client, tokenHash string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := client.Exists(ctx, revokedTokenPrefix+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeToken stores a token hash in the revocation set until its natural expiry.
func RevokeToken(client *redis.Client, tokenHash string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Set(ctx, revokedTokenPrefix+tokenHash, "1", ttl).Err()
}
