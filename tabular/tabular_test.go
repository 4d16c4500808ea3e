package tabular

import (
	"errors"
	"testing"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want rune
	}{
		{"comma", "a,b,c\n1,2,3", ','},
		{"semicolon", "a;b;c", ';'},
		{"tab", "a\tb\tc", '\t'},
		{"pipe", "a|b|c", '|'},
		{"comma wins tie by priority", "a,b;c,d;e", ','},
		{"semicolon beats comma on count", "a;b;c;d,e", ';'},
		{"no delimiter defaults to comma", "plain text line", ','},
		{"empty defaults to comma", "", ','},
		{"only first line counts", "a,b\nx;y;z;w", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDelimiter(tt.in); got != tt.want {
				t.Fatalf("DetectDelimiter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWithHeaders(t *testing.T) {
	in := "First Name,Last Name,Email,Phone,Company\n" +
		"John,Doe,john@example.com,555-123-4567,Acme Corp\n" +
		"\n" +
		"Jane,Smith,jane@test.org,555-987-6543,Tech Inc\n"

	tbl, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tbl.Delimiter != ',' {
		t.Fatalf("delimiter = %q, want ','", tbl.Delimiter)
	}
	if !tbl.HasHeader {
		t.Fatal("header not detected")
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2 (blank row dropped)", len(tbl.Rows))
	}
	if tbl.Columns[0] != "First Name" || tbl.Columns[4] != "Company" {
		t.Fatalf("columns = %v", tbl.Columns)
	}
}

func TestParseWithoutHeaders(t *testing.T) {
	in := "John Doe|john@example.com|555-123-4567|Acme Corp\n" +
		"Jane Smith|jane@test.org|555-987-6543|Tech Inc"

	tbl, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tbl.Delimiter != '|' {
		t.Fatalf("delimiter = %q, want '|'", tbl.Delimiter)
	}
	if tbl.HasHeader {
		t.Fatal("header detected on unlabeled data row")
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	want := []string{"column_0", "column_1", "column_2", "column_3"}
	for i, col := range want {
		if tbl.Columns[i] != col {
			t.Fatalf("columns = %v, want %v", tbl.Columns, want)
		}
	}
}

func TestParseQuotedFields(t *testing.T) {
	in := "Name,Company,Notes\n" +
		"\"Doe, John\",\"Acme, Inc.\",\"He said \"\"hi\"\"\"\n"

	tbl, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tbl.Delimiter != ',' {
		t.Fatalf("delimiter = %q, want ','", tbl.Delimiter)
	}
	row := tbl.Rows[0]
	if row[0] != "Doe, John" {
		t.Fatalf("cell 0 = %q, want %q", row[0], "Doe, John")
	}
	if row[1] != "Acme, Inc." {
		t.Fatalf("cell 1 = %q, want %q", row[1], "Acme, Inc.")
	}
	if row[2] != `He said "hi"` {
		t.Fatalf("cell 2 = %q", row[2])
	}
}

func TestParseWithDelimiterUnsupported(t *testing.T) {
	_, err := ParseWithDelimiter("a:b:c", ':')
	if !errors.Is(err, ErrUnsupportedDelimiter) {
		t.Fatalf("err = %v, want ErrUnsupportedDelimiter", err)
	}
}

func TestParseWithDelimiterExplicit(t *testing.T) {
	tbl, err := ParseWithDelimiter("a;b\n1;2", ';')
	if err != nil {
		t.Fatalf("ParseWithDelimiter: %v", err)
	}
	if tbl.Delimiter != ';' || len(tbl.Rows) == 0 {
		t.Fatalf("table = %+v", tbl)
	}
}

// Re-serializing with the detected delimiter and re-parsing must yield the
// same delimiter and an identical row count.
func TestEncodeRoundTrip(t *testing.T) {
	in := "Nombre;Apellidos;Correo\nLuis;García;luis@empresa.es\nMaría;López;maria@test.es"

	tbl, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := tbl.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	again, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if again.Delimiter != tbl.Delimiter {
		t.Fatalf("delimiter changed: %q -> %q", tbl.Delimiter, again.Delimiter)
	}
	if len(again.Rows) != len(tbl.Rows) {
		t.Fatalf("row count changed: %d -> %d", len(tbl.Rows), len(again.Rows))
	}
	if again.HasHeader != tbl.HasHeader {
		t.Fatalf("header flag changed")
	}
}

func TestDetectHeaderScoring(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"all synonyms", []string{"Nombre", "Apellidos", "Correo", "Teléfono"}, true},
		{"english synonyms", []string{"First Name", "Last Name", "Email"}, true},
		{"data row with email and phone", []string{"John Doe", "john@example.com", "555-123-4567", "Acme Corp"}, false},
		{"numeric row", []string{"1", "2", "3"}, false},
		{"empty row", []string{}, false},
		{"mixed header with free-form labels", []string{"Contact", "Primary Info", "Notes"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectHeader(tt.row); got != tt.want {
				t.Fatalf("detectHeader(%v) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}
