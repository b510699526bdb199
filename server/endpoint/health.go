package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/articledry/dryer/component"
)

// HealthChecker reports the health of every registered component.
type HealthChecker func(ctx context.Context) []component.Health

// Health reports overall service health: the worst component status
// wins, and an unhealthy service answers 503 so load balancers drop it.
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var components []component.Health
		if checker != nil {
			components = checker(c.Request.Context())
		}
		status := worstStatus(components)

		httpStatus := http.StatusOK
		if status == "unhealthy" {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}

func worstStatus(components []component.Health) string {
	status := "healthy"
	for _, ch := range components {
		switch ch.Status {
		case component.StatusUnhealthy:
			return "unhealthy"
		case component.StatusDegraded:
			status = "degraded"
		}
	}
	return status
}
