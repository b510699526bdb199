package component

import "context"

// HealthStatus classifies a component's health.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health is one component's answer to a health poll.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Component is a lifecycle-managed piece of the service, such as the
// HTTP server or the telemetry exporters.
type Component interface {
	// Name identifies the component; registration requires it to be
	// unique.
	Name() string

	// Start brings the component up. It must be safe to call Stop
	// afterwards even when Start returned an error.
	Start(ctx context.Context) error

	// Stop shuts the component down and releases its resources.
	Stop(ctx context.Context) error

	// Health reports current health.
	Health(ctx context.Context) Health
}
