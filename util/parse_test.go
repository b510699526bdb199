package util

import "testing"

func TestParseSize(t *testing.T) {
	const fallback = int64(5 << 20)

	tests := []struct {
		input string
		want  int64
	}{
		{"10MB", 10 << 20},
		{"512KB", 512 << 10},
		{"2GB", 2 << 30},
		{"1024", 1024},
		{"10mb", 10 << 20},
		{" 10 MB ", 10 << 20},
		{"", fallback},
		{"not-a-size", fallback},
		{"MB", fallback},
	}
	for _, tc := range tests {
		if got := ParseSize(tc.input, fallback); got != tc.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input  string
		prefix int
		want   string
	}{
		{"sk-abcdef0123456789", 6, "sk-abc***"},
		{"short", 10, "***"},
		{"", 5, "***"},
		{"abcdef", 6, "***"},
	}
	for _, tc := range tests {
		if got := MaskSecret(tc.input, tc.prefix); got != tc.want {
			t.Errorf("MaskSecret(%q, %d) = %q, want %q", tc.input, tc.prefix, got, tc.want)
		}
	}
}
