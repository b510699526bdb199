package llm

import (
	"context"
	"fmt"
	"sync"
)

// Provider is the interface remote generator drivers must implement.
type Provider interface {
	// Name returns the driver identifier (e.g. "openai").
	Name() string

	// IsAvailable checks if the remote service is reachable.
	IsAvailable(ctx context.Context) bool

	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// Stream sends a completion request and returns a channel of
	// streamed chunks. The channel is closed when the stream ends or an
	// error occurs; a context cancellation stops forwarding promptly.
	Stream(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error)
}

// Driver builds a Provider from config. Drivers are registered from
// init() in driver sub-packages.
type Driver func(cfg Config) (Provider, error)

var (
	driversMu sync.RWMutex
	drivers   = map[string]Driver{}
)

// RegisterDriver adds a driver to the global registry. Importing a
// driver package registers it as a side effect.
func RegisterDriver(name string, d Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	drivers[name] = d
}

// NewProvider builds the provider named by cfg.Provider.
func NewProvider(cfg Config) (Provider, error) {
	driversMu.RLock()
	d, ok := drivers[cfg.Provider]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("llm: unknown provider %q (forgot to import the driver?)", cfg.Provider)
	}
	return d(cfg)
}

// Drivers returns the names of all registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}
