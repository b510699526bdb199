// Package component defines the lifecycle interface for long-lived
// parts of the service and a registry that starts them in order and
// stops them in reverse. The HTTP server is registered here; anything
// else with a startup or shutdown step joins the same registry.
package component
