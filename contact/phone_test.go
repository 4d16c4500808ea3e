package contact

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare ten digits", in: "5551234567", want: "(555) 123-4567"},
		{name: "formatted ten digits", in: "555.123.4567", want: "(555) 123-4567"},
		{name: "dashed ten digits", in: "555-123-4567", want: "(555) 123-4567"},
		{name: "eleven with country code", in: "15551234567", want: "+1 (555) 123-4567"},
		{name: "plus one formatted", in: "+1 (555) 123-4567", want: "+1 (555) 123-4567"},
		{name: "international preserved", in: "+34 91 123 4567", want: "+34 91 123 4567"},
		{name: "international trimmed", in: "  +44 20 7946 0958  ", want: "+44 20 7946 0958"},
		{name: "too short", in: "123-4567", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "no digits", in: "call me", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
