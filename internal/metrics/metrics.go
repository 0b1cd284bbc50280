package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPLatency       *prometheus.HistogramVec
	ApprovalDecisions *prometheus.CounterVec
	BotRequests       *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton.
func Registry() *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "bothub",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method, path and status.",
			}, []string{"method", "path", "status"}),
			HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "bothub",
				Name:      "http_request_duration_seconds",
				Help:      "Latency distribution of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "path"}),
			ApprovalDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "bothub",
				Name:      "approval_decisions_total",
				Help:      "Admin approval decisions by entity and outcome.",
			}, []string{"entity", "decision"}),
			BotRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "bothub",
				Name:      "bot_requests_total",
				Help:      "Bot request lifecycle events.",
			}, []string{"event"}),
		}

		prometheus.MustRegister(
			metricsInstance.HTTPRequests,
			metricsInstance.HTTPLatency,
			metricsInstance.ApprovalDecisions,
			metricsInstance.BotRequests,
		)
	})
	return metricsInstance
}
