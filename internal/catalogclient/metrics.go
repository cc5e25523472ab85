package catalogclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opListByCategory = "list_by_category"
	opGetByID        = "get_by_id"

	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Metrics holds the client's collectors. A nil *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "storefront",
				Subsystem: "catalog",
				Name:      "requests_total",
				Help:      "Total number of catalog API requests.",
			},
			[]string{"op", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "storefront",
				Subsystem: "catalog",
				Name:      "request_duration_seconds",
				Help:      "Duration of catalog API requests.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
			},
			[]string{"op"},
		),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	m.requests.WithLabelValues(op, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case isNotFound(err):
		return outcomeNotFound
	default:
		return outcomeError
	}
}
