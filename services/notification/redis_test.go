package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type published struct {
	channel string
	payload string
}

type fakeRedis struct {
	err  error
	sent []published
}

func (f *fakeRedis) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.sent = append(f.sent, published{channel: channel, payload: string(message.([]byte))})
	return redis.NewIntResult(1, nil)
}

func TestBookingsChanged_Publishes(t *testing.T) {
	client := &fakeRedis{}
	n, err := NewRedisNotifier(client, "", zap.NewNop())
	require.NoError(t, err)

	n.BookingsChanged(context.Background(), "2025-04-07")

	require.Len(t, client.sent, 1)
	assert.Equal(t, DefaultChannel, client.sent[0].channel)
	assert.JSONEq(t, `{"date":"2025-04-07"}`, client.sent[0].payload)
}

func TestBookingsChanged_ErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	n, err := NewRedisNotifier(&fakeRedis{err: errors.New("connection refused")}, "updates", zap.New(core))
	require.NoError(t, err)

	n.BookingsChanged(context.Background(), "2025-04-07")

	entries := logs.FilterMessage("Failed to publish booking update").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "updates", entries[0].ContextMap()["channel"])
}

func TestNewRedisNotifier_RequiresClient(t *testing.T) {
	_, err := NewRedisNotifier(nil, "", nil)
	assert.Error(t, err)
}
