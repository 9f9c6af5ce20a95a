package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the form components. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	PreviewsRendered     prometheus.Counter
	PreviewReadFailures  prometheus.Counter
	PreviewsSkipped      *prometheus.CounterVec
	ValidityComputations *prometheus.CounterVec
	EndpointLatency      *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		PreviewsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cardform_previews_rendered_total",
			Help: "Total number of image previews rendered",
		}),
		PreviewReadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cardform_preview_read_failures_total",
			Help: "Total number of selected files that could not be read",
		}),
		PreviewsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cardform_previews_skipped_total",
			Help: "Change events that produced no preview, labeled by reason",
		}, []string{"reason"}),
		ValidityComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cardform_validity_computations_total",
			Help: "Valid-until computations, labeled by outcome",
		}, []string{"outcome"}),
		EndpointLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cardform_endpoint_latency_seconds",
			Help:    "Latency of component endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	reg.MustRegister(
		m.PreviewsRendered,
		m.PreviewReadFailures,
		m.PreviewsSkipped,
		m.ValidityComputations,
		m.EndpointLatency,
	)
	return m
}

func (m *Metrics) IncrementPreviewsRendered() {
	if m == nil {
		return
	}
	m.PreviewsRendered.Inc()
}

func (m *Metrics) IncrementPreviewReadFailures() {
	if m == nil {
		return
	}
	m.PreviewReadFailures.Inc()
}

// IncrementPreviewsSkipped records a no-op change event ("no_file",
// "no_target").
func (m *Metrics) IncrementPreviewsSkipped(reason string) {
	if m == nil {
		return
	}
	m.PreviewsSkipped.WithLabelValues(reason).Inc()
}

// IncrementValidity records a computation with outcome "valid", "invalid" or
// "manual".
func (m *Metrics) IncrementValidity(outcome string) {
	if m == nil {
		return
	}
	m.ValidityComputations.WithLabelValues(outcome).Inc()
}

// ObserveEndpointLatency records the time since start for endpoint.
func (m *Metrics) ObserveEndpointLatency(endpoint string, start time.Time) {
	if m == nil {
		return
	}
	m.EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
