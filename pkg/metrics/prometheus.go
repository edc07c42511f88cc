package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments mirrored from the usage ledger.
type Metrics struct {
	ModelRequests *prometheus.CounterVec
	ModelTokens   *prometheus.CounterVec
	ModelCostUSD  prometheus.Counter
	ModelLatency  prometheus.Histogram
}

// New registers and returns the process metrics.
// Call once per process; promauto panics on duplicate registration.
func New(namespace string) *Metrics {
	return &Metrics{
		ModelRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_requests_total",
			Help:      "The total number of text-model calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		ModelTokens: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_tokens_total",
			Help:      "The total number of tokens exchanged with the text model",
		}, []string{"direction"}),
		ModelCostUSD: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_cost_usd_total",
			Help:      "Accumulated dollar cost of text-model calls",
		}),
		ModelLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_call_seconds",
			Help:      "Latency of text-model calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
