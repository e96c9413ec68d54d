// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"venuely/config"

	"github.com/go-redis/redis/v8"
)

// ChatSessionCacheClient is the dedicated client for dialogue session state.
var ChatSessionCacheClient *redis.Client

// InitChatSessionCache initializes the Redis client for dialogue sessions.
func InitChatSessionCache() {
	ChatSessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatSessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Chat Sessions): %v", err)
	}
}

// GetChatSessionCacheClient returns the Redis client for dialogue sessions.
func GetChatSessionCacheClient() *redis.Client {
	if ChatSessionCacheClient == nil {
		InitChatSessionCache()
	}
	return ChatSessionCacheClient
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	InitChatSessionCache()
}
