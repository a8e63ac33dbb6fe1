package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/observability"
)

const readinessTimeout = 2 * time.Second

// Pinger is any backend the readiness probe can check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	metrics     *observability.Metrics
	deps        map[string]Pinger
}

// NewHealthHandler returns a handler that reports on the named dependencies.
func NewHealthHandler(serviceName, version string, metrics *observability.Metrics, deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, metrics: metrics, deps: deps}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
		"metrics": h.metrics.Snapshot(),
	})
}

// Ready GET /health/ready. Responds 503 when any dependency fails its ping.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readinessTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.deps))
	failed := 0
	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			checks[name] = err.Error()
			failed++
			continue
		}
		checks[name] = "ok"
	}

	if failed > 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"checks": checks,
		})
	}
	return c.JSON(fiber.Map{"status": "ready", "checks": checks})
}
