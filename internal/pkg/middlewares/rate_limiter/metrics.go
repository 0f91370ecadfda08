package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal отказы с 429, route берется из шаблона mux.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_rate_limited_requests_total",
		Help: "Requests rejected with 429 by the per-client rate limiter",
	},
	[]string{"method", "route"},
)

// RegisterTrackedClients публикует число адресов, для которых limiter сейчас держит bucket.
// Регистрируется один раз на процесс.
func RegisterTrackedClients(count func() int) prometheus.GaugeFunc {
	return promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "http_rate_limiter_tracked_clients",
			Help: "Client addresses currently tracked by the rate limiter",
		},
		func() float64 { return float64(count()) },
	)
}
