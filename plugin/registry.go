package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/articledry/dryer/errors"
)

// Constructor builds a plugin from the merged option map.
type Constructor func(options map[string]any) (Plugin, error)

// Factory builds a plugin with no arguments. If the product implements
// Configurable it is configured after construction.
type Factory func() Plugin

// Recipe is the tagged construction variant stored in a Registry.
// Exactly one of the two forms is set, chosen by the caller at
// registration time via ConstructorRecipe or FactoryRecipe.
type Recipe struct {
	ctor    Constructor
	factory Factory
}

// ConstructorRecipe wraps a configurable-constructor form.
func ConstructorRecipe(c Constructor) Recipe {
	return Recipe{ctor: c}
}

// FactoryRecipe wraps a zero-argument factory form.
func FactoryRecipe(f Factory) Recipe {
	return Recipe{factory: f}
}

func (r Recipe) valid() bool {
	return (r.ctor != nil) != (r.factory != nil)
}

// Registry is a catalog of plugin names to construction recipes. It is
// safe for concurrent use and holds no per-request data.
type Registry struct {
	mu      sync.RWMutex
	recipes map[string]Recipe
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{recipes: make(map[string]Recipe)}
}

// Register adds a recipe under name. Registering an already-registered
// name fails with a DUPLICATE_PLUGIN error.
func (r *Registry) Register(name string, recipe Recipe) error {
	if name == "" {
		return fmt.Errorf("plugin: empty name")
	}
	if !recipe.valid() {
		return fmt.Errorf("plugin: recipe for %q must be exactly one of constructor or factory", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.recipes[name]; exists {
		return errors.DuplicatePlugin(name)
	}
	r.recipes[name] = recipe
	return nil
}

// MustRegister registers a recipe and panics on failure. Intended for
// built-in registration at process start.
func (r *Registry) MustRegister(name string, recipe Recipe) {
	if err := r.Register(name, recipe); err != nil {
		panic(err)
	}
}

// Create builds the named plugin with the given options. It fails with
// UNKNOWN_PLUGIN if the name is not registered and PLUGIN_CONSTRUCTION
// wrapping the recipe's failure otherwise.
func (r *Registry) Create(name string, options map[string]any) (Plugin, error) {
	r.mu.RLock()
	recipe, ok := r.recipes[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.UnknownPlugin(name)
	}

	var (
		p   Plugin
		err error
	)
	if recipe.ctor != nil {
		p, err = recipe.ctor(options)
	} else {
		p = recipe.factory()
		err = Configure(p, options)
	}
	if err != nil {
		return nil, errors.PluginConstruction(name, err)
	}
	if p == nil {
		return nil, errors.PluginConstruction(name, fmt.Errorf("recipe returned nil plugin"))
	}
	return p, nil
}

// List returns the registered plugin names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.recipes))
	for name := range r.recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.recipes[name]
	return ok
}

// --- Default registry ---

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry where built-in plugins
// register themselves. Prefer constructing your own Registry and
// passing it explicitly; Default exists for configuration discovery
// only.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
