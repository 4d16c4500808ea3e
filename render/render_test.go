package render

import (
	"strings"
	"testing"

	"github.com/vortex-fintech/ingest-lib/contact"
)

func TestList(t *testing.T) {
	got := List([]string{"a@b.co", "c@d.co"})
	want := "- a@b.co\n- c@d.co"
	if got != want {
		t.Fatalf("List = %q, want %q", got, want)
	}
	if List(nil) != "" {
		t.Fatal("List(nil) not empty")
	}
}

func TestNumbered(t *testing.T) {
	got := Numbered([]string{"first", "second", "third"})
	want := "1. first\n2. second\n3. third"
	if got != want {
		t.Fatalf("Numbered = %q, want %q", got, want)
	}
}

func TestLines(t *testing.T) {
	got := Lines([]string{"x", "y"})
	if got != "x\ny" {
		t.Fatalf("Lines = %q", got)
	}
}

func TestJSON(t *testing.T) {
	got, err := JSON([]string{"a@b.co"})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(got, `"a@b.co"`) || !strings.HasPrefix(got, "[") {
		t.Fatalf("JSON = %q", got)
	}

	empty, err := JSON(nil)
	if err != nil || empty != "[]" {
		t.Fatalf("JSON(nil) = (%q, %v), want empty array", empty, err)
	}
}

func TestContactsJSON(t *testing.T) {
	got, err := ContactsJSON([]contact.Contact{{FirstName: "John", Email: "john@example.com"}})
	if err != nil {
		t.Fatalf("ContactsJSON: %v", err)
	}
	if !strings.Contains(got, `"first_name": "John"`) {
		t.Fatalf("ContactsJSON = %q", got)
	}
	if strings.Contains(got, "phone") {
		t.Fatalf("empty fields must be omitted: %q", got)
	}
}

func TestContactsCSV(t *testing.T) {
	got, err := ContactsCSV([]contact.Contact{
		{FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "(555) 123-4567", Company: "Acme, Inc."},
	})
	if err != nil {
		t.Fatalf("ContactsCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("ContactsCSV = %q", got)
	}
	if lines[0] != "first_name,last_name,email,phone,company" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Acme, Inc."`) {
		t.Fatalf("comma-bearing company must be quoted: %q", lines[1])
	}
}
