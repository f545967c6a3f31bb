package exchangerateHost

import (
	"errors"
	"service-exchangerate/internal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeServiceError = "service_error"
	outcomeHTTPError    = "http_error"
	outcomeFailed       = "failed"
)

// Metrics counts requests to exchangerate.host.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchangerate_requests_total",
				Help: "Requests sent to exchangerate.host by endpoint and outcome",
			},
			[]string{"path", "outcome"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchangerate_request_duration_seconds",
				Help:    "Latency of requests to exchangerate.host",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
	}
}

func (m *Metrics) observe(path, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(path, outcome).Inc()
	m.RequestDuration.WithLabelValues(path).Observe(d.Seconds())
}

func outcomeOf(err error) string {
	var svcErr *internal.ServiceError
	var httpErr *HTTPError
	switch {
	case err == nil:
		return outcomeOK
	case errors.As(err, &svcErr):
		return outcomeServiceError
	case errors.As(err, &httpErr):
		return outcomeHTTPError
	default:
		return outcomeFailed
	}
}
