package tasks

import (
	"context"
	"fmt"
	"time"

	"classalloc/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSweepPastBookings = "bookings:sweep_past"

func NewSweepTask() *asynq.Task {
	return asynq.NewTask(TypeSweepPastBookings, nil)
}

// PastBookingDeleter removes bookings dated strictly before a date.
type PastBookingDeleter interface {
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

// Sweeper deletes bookings whose date has passed.
type Sweeper struct {
	Store  PastBookingDeleter
	Logger *zap.Logger
	Now    func() time.Time
}

// DeletePastBookings removes every booking dated before today. Running it
// twice on the same day deletes nothing the second time.
func (s *Sweeper) DeletePastBookings(ctx context.Context, today time.Time) (models.SweepResult, error) {
	date := today.Format("2006-01-02")
	n, err := s.Store.DeleteBefore(ctx, date)
	if err != nil {
		return models.SweepResult{Date: date}, fmt.Errorf("failed to delete bookings before %s: %w", date, err)
	}
	return models.SweepResult{Date: date, DeletedCount: n}, nil
}

// HandleSweepTask is the asynq handler for TypeSweepPastBookings.
func (s *Sweeper) HandleSweepTask(ctx context.Context, _ *asynq.Task) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}

	res, err := s.DeletePastBookings(ctx, now())
	if err != nil {
		log.Error("Past booking cleanup failed", zap.Error(err))
		return err
	}
	log.Info("Past booking cleanup completed", zap.String("before", res.Date), zap.Int64("deleted", res.DeletedCount))
	return nil
}
