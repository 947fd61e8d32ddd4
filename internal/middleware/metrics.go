package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records HTTP request counts and latencies
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the HTTP metrics on the given registerer
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	auto := promauto.With(registerer)
	return &Metrics{
		requests: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pizza_api",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by endpoint, method and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		duration: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pizza_api",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint", "method", "status_code"},
		),
	}
}

// Handler returns the gin middleware feeding the metrics. Requests that
// match no route are grouped under the "unmatched" endpoint.
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.requests.WithLabelValues(endpoint, c.Request.Method, status).Inc()
		m.duration.WithLabelValues(endpoint, c.Request.Method, status).Observe(time.Since(start).Seconds())
	}
}
