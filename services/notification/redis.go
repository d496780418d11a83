package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"classalloc/models"

	"go.uber.org/zap"
)

const (
	DefaultChannel = "bookingUpdate"
	publishTimeout = 2 * time.Second
)

var _ NotificationService = (*RedisNotifier)(nil)

// RedisNotifier publishes {"date": D} on a Redis channel whenever the
// bookings of D change. Delivery is at most once.
type RedisNotifier struct {
	client  RedisClient
	channel string
	logger  *zap.Logger
}

func NewRedisNotifier(client RedisClient, channel string, logger *zap.Logger) (*RedisNotifier, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: redis client is nil")
	}
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisNotifier{client: client, channel: channel, logger: logger}, nil
}

// BookingsChanged never fails the caller; publish errors are logged.
func (n *RedisNotifier) BookingsChanged(ctx context.Context, date string) {
	payload, err := json.Marshal(models.BookingUpdate{Date: date})
	if err != nil {
		n.logger.Error("Failed to encode booking update", zap.String("date", date), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.logger.Warn("Failed to publish booking update",
			zap.String("channel", n.channel),
			zap.String("date", date),
			zap.Error(err),
		)
		return
	}
	n.logger.Debug("Booking update published", zap.String("date", date))
}
