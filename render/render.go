// Package render turns extraction results into display strings. It is
// presentation only and never feeds back into the pipeline.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vortex-fintech/ingest-lib/contact"
)

// List renders items as dashed bullet lines.
func List(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}

// Numbered renders items as "1. item" lines, counting from one.
func Numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, item)
	}
	return b.String()
}

// Lines renders items one per line, the single-column CSV form.
func Lines(items []string) string {
	return strings.Join(items, "\n")
}

// JSON renders items as an indented JSON array.
func JSON(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render: json: %w", err)
	}
	return string(out), nil
}

// ContactsJSON renders contacts as an indented JSON array; empty fields
// are omitted.
func ContactsJSON(contacts []contact.Contact) (string, error) {
	if contacts == nil {
		contacts = []contact.Contact{}
	}
	out, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render: contacts json: %w", err)
	}
	return string(out), nil
}

// contactColumns is the fixed CSV column order.
var contactColumns = []string{"first_name", "last_name", "email", "phone", "company"}

// ContactsCSV renders contacts as comma-separated rows under a fixed
// header. Quoting follows the usual CSV rules.
func ContactsCSV(contacts []contact.Contact) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(contactColumns); err != nil {
		return "", fmt.Errorf("render: contacts csv: %w", err)
	}
	for _, c := range contacts {
		row := []string{c.FirstName, c.LastName, c.Email, c.Phone, c.Company}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("render: contacts csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("render: contacts csv: %w", err)
	}
	return b.String(), nil
}
