package metrics

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultApplied = "applied"
	ResultError   = "error"
	ResultStale   = "stale"
	ResultEmpty   = "empty"
	ResultOK      = "ok"
)

var (
	BackendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_backend_requests_total",
			Help: "Total number of requests sent to the recruitment backend",
		},
		[]string{"method", "endpoint", "status"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_backend_request_duration_seconds",
			Help:    "Duration of recruitment backend requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	DashboardLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_loads_total",
			Help: "Total number of dashboard data loads by result",
		},
		[]string{"result"},
	)

	ChartRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_chart_renders_total",
			Help: "Total number of chart images rendered",
		},
		[]string{"chart", "result"},
	)
)

// Handler отдает метрики в формате prometheus
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// ObserveBackend status 0 означает ошибку транспорта
func ObserveBackend(method, path string, status int, started time.Time) {
	endpoint := Endpoint(path)
	BackendRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	BackendRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(started).Seconds())
}

var numericSegment = regexp.MustCompile(`/\d+(/|$)`)

// Endpoint путь запроса без идентификаторов: /api/form/config/7 -> /api/form/config/:id
func Endpoint(path string) string {
	switch {
	case strings.HasPrefix(path, "/uploads/"):
		return "/uploads/:file"
	case strings.HasPrefix(path, "/api/form/sections/") && path != "/api/form/sections/reorder":
		return "/api/form/sections/:name"
	}
	return numericSegment.ReplaceAllString(path, "/:id$1")
}
