// Package server provides the HTTP surface of the dryer service: a
// Gin-backed server with the standard middleware stack, operational
// endpoints, and the streaming article-processing API.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: request ID generation and propagation
//   - CORS: cross-origin resource sharing
//   - BodySizeLimit: request body size limits
//   - RateLimit: per-client sliding-window rate limiting
//   - RequestLogger: request logging with duration tracking
//
// # Endpoints
//
// Operational endpoints (server/endpoint):
//
//   - /health: health check aggregation over registered components
//   - /health/live: liveness probe
//   - /health/ready: readiness probe
//   - /info: service version and build information
//   - /metrics: runtime memory and goroutine metrics
//
// The processing API itself is registered with RegisterProcessRoutes.
package server
