package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studysmarter_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// RevokedTokenRejections counts requests rejected because the bearer
	// token's identifier was found in the revocation store.
	RevokedTokenRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studysmarter_revoked_token_rejections_total",
		Help: "Total number of requests rejected due to a revoked token",
	})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler recording per-request metrics.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
