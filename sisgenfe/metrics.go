package sisgenfe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sisgenfe_client",
			Name:      "requests_total",
			Help:      "Requisições enviadas ao webservice Sisgenfe por endpoint e status HTTP.",
		},
		[]string{"endpoint", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sisgenfe_client",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições ao webservice Sisgenfe.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// observeRequest registra uma requisição concluída.
// status é o código HTTP ou "error" quando não houve resposta.
func observeRequest(endpoint, status string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(endpoint, status).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
