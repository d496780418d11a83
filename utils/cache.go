package utils

import (
	"context"
	"log"
	"time"

	"classalloc/config"

	"github.com/go-redis/redis/v8"
)

// NotifyClient carries booking change broadcasts.
var NotifyClient *redis.Client

// InitNotifyClient connects the Redis client used for pub/sub notifications.
func InitNotifyClient() {
	NotifyClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := NotifyClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis (Notify): %v", err)
	}
}

// GetNotifyClient returns the notification client.
func GetNotifyClient() *redis.Client {
	if NotifyClient == nil {
		InitNotifyClient()
	}
	return NotifyClient
}
