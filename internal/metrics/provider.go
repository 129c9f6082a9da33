package metrics

import "github.com/prometheus/client_golang/prometheus"

// Provider-call Prometheus metrics, shared by the embedding and generation
// transports. The "kind" label distinguishes "embedding" from "generation".
var (
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "promptrec",
			Name:      "provider_requests_total",
			Help:      "Total number of AI provider requests",
		},
		[]string{"kind", "model", "status"},
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "promptrec",
			Name:      "provider_request_duration_seconds",
			Help:      "AI provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"kind", "model"},
	)

	ProviderTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "promptrec",
			Name:      "provider_tokens_total",
			Help:      "Total provider tokens consumed",
		},
		[]string{"kind", "model", "type"},
	)

	ProviderErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "promptrec",
			Name:      "provider_errors_total",
			Help:      "Total AI provider errors",
		},
		[]string{"kind", "model", "error_type"},
	)

	ExplanationFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "promptrec",
			Name:      "explanation_fallbacks_total",
			Help:      "Explanations replaced by the constant fallback text",
		},
	)

	HistoryWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "promptrec",
			Name:      "history_writes_total",
			Help:      "Best-effort history persistence outcomes",
		},
		[]string{"status"}, // "success" / "error"
	)
)

var providerMetricsRegistered bool

// RegisterProviderMetrics registers provider Prometheus metrics. Must be called once from main.
func RegisterProviderMetrics() {
	if providerMetricsRegistered {
		return
	}
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderRequestDuration)
	prometheus.MustRegister(ProviderTokensTotal)
	prometheus.MustRegister(ProviderErrorsTotal)
	prometheus.MustRegister(ExplanationFallbacksTotal)
	prometheus.MustRegister(HistoryWritesTotal)
	providerMetricsRegistered = true
}
