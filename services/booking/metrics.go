package booking

import (
	"time"

	"classalloc/models"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts bulk orchestration outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	runs      *prometheus.CounterVec
	bookings  *prometheus.CounterVec
	chunkErrs prometheus.Counter
	duration  prometheus.Histogram
}

// NewMetrics registers the bulk metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "classalloc",
			Subsystem: "bulk",
			Name:      "runs_total",
			Help:      "Bulk booking runs by outcome.",
		}, []string{"outcome"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "classalloc",
			Subsystem: "bulk",
			Name:      "bookings_total",
			Help:      "Bookings touched by bulk runs by kind.",
		}, []string{"kind"}),
		chunkErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "classalloc",
			Subsystem: "bulk",
			Name:      "errors_total",
			Help:      "Recoverable errors reported by bulk runs.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "classalloc",
			Subsystem: "bulk",
			Name:      "duration_seconds",
			Help:      "Wall time of a bulk run.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}
	reg.MustRegister(m.runs, m.bookings, m.chunkErrs, m.duration)
	return m
}

func (m *Metrics) observeBulk(r *models.BulkResult, d time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues("completed").Inc()
	m.bookings.WithLabelValues("created").Add(float64(r.Created))
	m.bookings.WithLabelValues("skipped").Add(float64(r.Skipped))
	m.bookings.WithLabelValues("conflicts").Add(float64(r.Conflicts))
	m.bookings.WithLabelValues("deleted").Add(float64(r.Deleted))
	m.chunkErrs.Add(float64(len(r.Errors)))
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) observeFailure() {
	if m == nil {
		return
	}
	m.runs.WithLabelValues("failed").Inc()
}
