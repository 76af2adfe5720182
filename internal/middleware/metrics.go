package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ladle_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// RatingsSubmitted counts accepted rating submissions.
var RatingsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ladle_ratings_submitted_total",
	Help: "Total number of accepted rating submissions",
})

var (
	promOnce   sync.Once
	promShared *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the Prometheus HTTP metrics middleware for the
// service. The underlying collectors register against the default
// registry, so the instance is created once and shared.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promShared = fiberprometheus.New(serviceName)
	})
	return promShared
}

// MetricsMiddleware adapts the fiberprometheus middleware to a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
