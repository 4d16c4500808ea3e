package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Format
	}{
		{
			name: "json object",
			in:   `{"name": "John Doe", "email": "john@example.com"}`,
			want: JSON,
		},
		{
			name: "json array",
			in:   `[{"name": "John"}, {"name": "Jane"}]`,
			want: JSON,
		},
		{
			name: "json with surrounding whitespace",
			in:   "  \n {\"a\": 1} \n ",
			want: JSON,
		},
		{
			name: "malformed json falls through to plain text",
			in:   `{"name": "John",}`,
			want: PlainText,
		},
		{
			name: "xml document",
			in:   `<contacts><person email="a@b.com">John</person></contacts>`,
			want: XML,
		},
		{
			name: "malformed xml falls through",
			in:   `<contacts><person>John</contacts>`,
			want: PlainText,
		},
		{
			name: "angle brackets without element",
			in:   `<>`,
			want: PlainText,
		},
		{
			name: "comma table",
			in:   "name,email,phone\nJohn,john@example.com,555-123-4567",
			want: Table,
		},
		{
			name: "pipe table without headers",
			in:   "John Doe|john@example.com|555-123-4567\nJane Smith|jane@test.org|555-987-6543",
			want: Table,
		},
		{
			name: "semicolon table",
			in:   "a;b;c\n1;2;3",
			want: Table,
		},
		{
			name: "tab table",
			in:   "a\tb\n1\t2",
			want: Table,
		},
		{
			name: "inconsistent delimiter counts",
			in:   "one, two\nthree,four,five,six",
			want: PlainText,
		},
		{
			name: "single line with commas",
			in:   "one,two,three",
			want: PlainText,
		},
		{
			name: "prose",
			in:   "Contact John at john@example.com or call 555-123-4567.\nAlso reach Jane at jane@test.org.",
			want: PlainText,
		},
		{
			name: "empty",
			in:   "",
			want: PlainText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.in); got != tt.want {
				t.Fatalf("Detect(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
