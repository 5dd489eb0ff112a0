package textutil

import "testing"

func TestStringHelper_TrimWhitespace(t *testing.T) {
	h := NewStringHelper()

	if got := h.TrimWhitespace("\t hello \n"); got != "hello" {
		t.Errorf("TrimWhitespace() = %q, want %q", got, "hello")
	}
}

func TestStringHelper_NormalizeWhitespace(t *testing.T) {
	h := NewStringHelper()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"a", "a"},
		{" a \t b\n\nc ", "a b c"},
		{"already normal", "already normal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := h.NormalizeWhitespace(tt.input); got != tt.expected {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStringHelper_DisplayWidth(t *testing.T) {
	h := NewStringHelper()

	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"消防處", 6},
		{"a消b", 4},
	}

	for _, tt := range tests {
		if got := h.DisplayWidth(tt.input); got != tt.expected {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestStringHelper_PadRight(t *testing.T) {
	h := NewStringHelper()

	if got := h.PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight() = %q, want %q", got, "ab   ")
	}

	if got := h.PadRight("消防", 6); got != "消防  " {
		t.Errorf("PadRight() = %q, want %q", got, "消防  ")
	}

	if got := h.PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight() should not cut, got %q", got)
	}
}

func TestStringHelper_TruncateString(t *testing.T) {
	h := NewStringHelper()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"Fits", "short", 10, "short"},
		{"Exact", "12345", 5, "12345"},
		{"Cut", "1234567890", 6, "123..."},
		{"Zero", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.TruncateString(tt.input, tt.max); got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}
