package validation

import (
	"strings"
	"testing"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "dryer")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v = New()
	v.Required("name", "  ")
	if !v.HasErrors() {
		t.Error("expected error for blank input")
	}
	if err := v.Err(); err == nil || !strings.Contains(err.Error(), "name") {
		t.Errorf("Err = %v, want field name in message", err)
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New().
		Required("url", "").
		Range("port", 99999, 0, 65535).
		OneOf("mode", "carrier-pigeon", []string{"reader", "html"})

	if got := len(v.Errors()); got != 3 {
		t.Fatalf("errors = %d, want 3: %+v", got, v.Errors())
	}
}

func TestValidatorOneOfSkipsEmpty(t *testing.T) {
	v := New().OneOf("mode", "", []string{"reader", "html"})
	if v.HasErrors() {
		t.Error("empty value should not be checked")
	}
}

func TestValidatorErrNilWhenClean(t *testing.T) {
	if err := New().Min("count", 5, 1).Err(); err != nil {
		t.Errorf("Err = %v, want nil", err)
	}
}

func TestValidateStruct(t *testing.T) {
	type req struct {
		Content string `mapstructure:"content" validate:"required"`
		Mode    string `mapstructure:"mode" validate:"omitempty,oneof=reader html"`
	}

	if err := ValidateStruct(req{Content: "text", Mode: "html"}); err != nil {
		t.Errorf("ValidateStruct = %v, want nil", err)
	}

	err := ValidateStruct(req{Mode: "bogus"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "content") || !strings.Contains(msg, "mode") {
		t.Errorf("message missing field names: %q", msg)
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"MaxTokens": "max_tokens",
		"URL":       "u_r_l",
		"content":   "content",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
