// Package plugin defines the processing contract for dryer: the
// ContentItem flowing through a pipeline, the OutputEvent side channel,
// the Plugin interface itself, and the Registry that maps plugin names
// to construction recipes.
//
// A Recipe is a tagged variant chosen explicitly at registration time:
// either a Constructor that receives the merged option map, or a
// zero-argument Factory whose product is configured afterwards if it
// implements Configurable. There is no reflection-based dispatch.
//
// Registries are plain values meant to be passed to whoever assembles a
// pipeline. Default() is retained only so built-in plugins have a
// process-wide home; it holds no per-request state.
package plugin
