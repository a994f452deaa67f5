package search

import "testing"

func TestEscapeComponent(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a b", "a%20b"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"a+b", "a%2Bb"},
		{"x&y=z", "x%26y%3Dz"},
		{"50%", "50%25"},
		{"ñ", "%C3%B1"},
		{"日本", "%E6%97%A5%E6%9C%AC"},
		{"a/b?c#d", "a%2Fb%3Fc%23d"},
		{"\"quoted\"", "%22quoted%22"},
	}

	for _, tt := range tests {
		if got := EscapeComponent(tt.in); got != tt.expected {
			t.Errorf("EscapeComponent(%q): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}
