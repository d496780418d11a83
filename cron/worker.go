package cron

import (
	"context"
	"time"

	"classalloc/config"
	"classalloc/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitSweepWorker runs the asynq server handling the retention sweep and the
// scheduler enqueuing it on config.SweepCron. The returned func stops both.
func InitSweepWorker(sweeper *tasks.Sweeper, logger *zap.Logger) (func(), error) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSweepPastBookings, sweeper.HandleSweepTask)

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.Local})
	entryID, err := scheduler.Register(config.AppConfig.SweepCron, tasks.NewSweepTask(), asynq.Unique(time.Hour))
	if err != nil {
		return nil, err
	}
	logger.Info("Retention sweep scheduled", zap.String("cron", config.AppConfig.SweepCron), zap.String("entry", entryID))

	ctx, cancel := context.WithCancel(context.Background())
	go monitorRedisConnection(ctx, redisOpts, logger)

	go func() {
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Start(mux); err != nil {
				logger.Error("Failed to start sweep worker", zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Error("Max retry attempts reached, sweep worker disabled")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
				continue
			}
			break
		}
	}()

	if err := scheduler.Start(); err != nil {
		cancel()
		srv.Shutdown()
		return nil, err
	}

	return func() {
		cancel()
		scheduler.Shutdown()
		srv.Shutdown()
	}, nil
}

// monitorRedisConnection pings the task Redis periodically to surface outages.
func monitorRedisConnection(ctx context.Context, opts asynq.RedisClientOpt, logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	defer client.Close()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Task Redis connection lost", zap.Error(err))
			}
		}
	}
}
