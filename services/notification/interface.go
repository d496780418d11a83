package notification

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// NotificationService broadcasts booking changes to connected clients.
type NotificationService interface {
	BookingsChanged(ctx context.Context, date string)
}

// RedisClient is the subset of *redis.Client the notifier uses.
type RedisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}
