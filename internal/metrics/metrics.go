package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes
const (
	OutcomePreflight        = "preflight"
	OutcomeInvalidJSON      = "invalid_json"
	OutcomeInvalid          = "invalid"
	OutcomeRecaptchaMissing = "recaptcha_missing"
	OutcomeRecaptchaFailed  = "recaptcha_failed"
	OutcomeSendFailed       = "send_failed"
	OutcomeInternalError    = "internal_error"
	OutcomeSent             = "sent"
)

// Metrics holds the relay's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactrelay",
		Name:      "submissions_total",
		Help:      "Contact form requests by outcome.",
	}, []string{"outcome"})
	registry.MustRegister(submissions)

	return &Metrics{
		registry:    registry,
		submissions: submissions,
	}
}

// ObserveSubmission counts one request with the given outcome
func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
