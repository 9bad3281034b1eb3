package intake

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"no digits", "abc-def", ""},
		{"whitespace only", "   ", ""},
		{"ten digits formatted", "5551234567", "(555) 123-4567"},
		{"ten digits with punctuation", "555-123-4567", "(555) 123-4567"},
		{"ten digits with letters", "call 555.123.4567 now", "(555) 123-4567"},
		{"parens and spaces", "(555) 123 4567", "(555) 123-4567"},
		{"nine digits bare", "555123456", "555123456"},
		{"eleven digits bare", "15551234567", "15551234567"},
		{"one digit", "x7y", "7"},
		{"international prefix", "+1 555 123 4567", "15551234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.raw); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
