package audit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"classalloc/models"

	"go.uber.org/zap"
)

// Writer persists audit records.
type Writer interface {
	Create(ctx context.Context, record models.AuditRecord) (string, error)
}

type failure struct {
	record models.AuditRecord
	err    error
}

// Recorder writes audit records on the caller's goroutine, so a record is
// stored before the caller goes on to mutate the booking, but never hands an
// error back. Failed writes travel over a separate channel to a drain
// goroutine that logs them.
type Recorder struct {
	writer   Writer
	logger   *zap.Logger
	now      func() time.Time
	failures chan failure
	done     chan struct{}
	mu       sync.RWMutex // guards closed against in-flight sends
	closed   bool
	failed   atomic.Int64
	wg       sync.WaitGroup
	once     sync.Once
}

// NewRecorder starts the failure drain. Call Close on shutdown.
func NewRecorder(w Writer, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Recorder{
		writer:   w,
		logger:   logger,
		now:      time.Now,
		failures: make(chan failure, 64),
		done:     make(chan struct{}),
	}
	r.wg.Add(1)
	go r.drain()
	return r
}

// Record stores one audit entry. Failures are reported on the side channel.
func (r *Recorder) Record(ctx context.Context, record models.AuditRecord) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now()
	}
	if _, err := r.writer.Create(ctx, record); err != nil {
		r.failed.Add(1)
		r.report(failure{record: record, err: err})
	}
}

// Failed returns how many writes have failed since start.
func (r *Recorder) Failed() int64 {
	return r.failed.Load()
}

func (r *Recorder) report(f failure) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.logFailure(f)
		return
	}
	select {
	case r.failures <- f:
	default:
		// Drain is behind; log inline rather than block the caller.
		r.logFailure(f)
	}
}

func (r *Recorder) drain() {
	defer r.wg.Done()
	for {
		select {
		case f := <-r.failures:
			r.logFailure(f)
		case <-r.done:
			for {
				select {
				case f := <-r.failures:
					r.logFailure(f)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) logFailure(f failure) {
	r.logger.Error("Failed to create audit record",
		zap.String("action", string(f.record.Action)),
		zap.String("performedBy", f.record.PerformedBy),
		zap.String("affectedUser", f.record.AffectedUser),
		zap.Error(f.err),
	)
}

// Close stops the drain after flushing pending failures.
func (r *Recorder) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()
		close(r.done)
		r.wg.Wait()
	})
}
