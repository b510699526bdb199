package logger

import (
	"testing"
	"time"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("default level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("default format = %q, want console", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "debug", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFields(t *testing.T) {
	m := Fields("plugin", "summarize", "chunks", 3)
	if m["plugin"] != "summarize" {
		t.Errorf("plugin = %v", m["plugin"])
	}
	if m["chunks"] != 3 {
		t.Errorf("chunks = %v", m["chunks"])
	}

	// Odd trailing value is dropped.
	m = Fields("a", 1, "b")
	if len(m) != 1 {
		t.Errorf("len = %d, want 1", len(m))
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("process", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("duration = %v, want 1500", m[FieldDuration])
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test").WithComponent("parser")
	if l == nil {
		t.Fatal("nil logger")
	}
	l.Debug("component logger works")
}
