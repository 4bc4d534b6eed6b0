package taxii

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess        = "success"
	outcomeStatusError    = "status_error"
	outcomeTransportError = "transport_error"
	outcomeDecodeError    = "decode_error"
)

// Metrics collects statistics of requests sent by the client.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates metrics and registers them in the registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taxii",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total requests sent to TAXII services.",
			},
			[]string{"service", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "taxii",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "Duration of requests sent to TAXII services.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return m, nil
}

func (m *Metrics) observe(kind ServiceKind, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(string(kind), outcome).Inc()
	m.duration.WithLabelValues(string(kind), outcome).Observe(duration.Seconds())
}
