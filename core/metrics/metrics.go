// Package metrics provides Prometheus metrics for the query layer.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "namada"
	subsystem = "queries"

	unmatchedLabel = "none"
)

// Status labels of a handled query.
const (
	StatusOK            = "ok"
	StatusWrongPath     = "wrong_path"
	StatusHandlerError  = "handler_error"
	StatusEncodingError = "encoding_error"
)

// QueryMetrics holds the Prometheus metrics observed for every handled
// query.
type QueryMetrics struct {
	HandledTotal          *prometheus.CounterVec
	HandleDurationSeconds *prometheus.HistogramVec
}

var (
	queryMetricsInstance *QueryMetrics
	queryMetricsOnce     sync.Once
)

// NewQueryMetrics creates a QueryMetrics instance with all metrics
// registered via promauto on the default registry.
func NewQueryMetrics() *QueryMetrics {
	return &QueryMetrics{
		HandledTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "handled_total",
				Help:      "Total number of handled queries by router, handler and status",
			},
			[]string{"router", "handler", "status"},
		),
		HandleDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "handle_duration_seconds",
				Help:      "Time spent resolving and executing one query",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"router", "handler", "status"},
		),
	}
}

// GetQueryMetrics returns the process-wide metrics instance, creating it on
// first use.
func GetQueryMetrics() *QueryMetrics {
	queryMetricsOnce.Do(func() {
		queryMetricsInstance = NewQueryMetrics()
	})

	return queryMetricsInstance
}

// ObserveHandled records one handled query. An empty handler means no route
// matched.
func (m *QueryMetrics) ObserveHandled(router, handler, status string, elapsed time.Duration) {
	if handler == "" {
		handler = unmatchedLabel
	}

	m.HandledTotal.WithLabelValues(router, handler, status).Inc()
	m.HandleDurationSeconds.WithLabelValues(router, handler, status).Observe(elapsed.Seconds())
}
