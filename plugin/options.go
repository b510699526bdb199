package plugin

// Option readers for the loosely-typed maps carried by declarative
// pipeline configuration. Numbers decoded from JSON arrive as float64,
// from YAML as int; both are accepted.

// StringOption returns options[key] as a string, or fallback.
func StringOption(options map[string]any, key, fallback string) string {
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// BoolOption returns options[key] as a bool, or fallback.
func BoolOption(options map[string]any, key string, fallback bool) bool {
	if v, ok := options[key].(bool); ok {
		return v
	}
	return fallback
}

// IntOption returns options[key] as an int, or fallback.
func IntOption(options map[string]any, key string, fallback int) int {
	switch v := options[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

// FloatOption returns options[key] as a float64, or fallback.
func FloatOption(options map[string]any, key string, fallback float64) float64 {
	switch v := options[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}
