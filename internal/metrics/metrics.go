package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics tracks HTTP traffic plus the order lifecycle counters that
// matter for stock accounting.
type ServerMetrics struct {
	Requests          *prometheus.CounterVec
	LatencyMS         *prometheus.HistogramVec
	OrdersCreated     prometheus.Counter
	OrderTransitions  *prometheus.CounterVec
	SettledDeliveries prometheus.Counter
}

func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marketplace",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: service,
		Name:      "orders_created_total",
		Help:      "Orders created at checkout.",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: service,
		Name:      "order_transitions_total",
		Help:      "Order status transitions by target status.",
	}, []string{"to"})
	settled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: service,
		Name:      "deliveries_settled_total",
		Help:      "Shipped orders auto-delivered when their ETA passed.",
	})

	prometheus.MustRegister(requests, latency, ordersCreated, transitions, settled)
	return &ServerMetrics{
		Requests:          requests,
		LatencyMS:         latency,
		OrdersCreated:     ordersCreated,
		OrderTransitions:  transitions,
		SettledDeliveries: settled,
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// GinMiddleware records request counts and latency per route.
func (m *ServerMetrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		m.Requests.WithLabelValues(handler, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	}
}
