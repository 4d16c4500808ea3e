// Package ingest is the entry point of the pipeline: detect the format of
// raw text, parse it into the matching representation, and lower parsed
// documents into contact records.
package ingest

import (
	"github.com/vortex-fintech/ingest-lib/contact"
	"github.com/vortex-fintech/ingest-lib/format"
	"github.com/vortex-fintech/ingest-lib/structured"
	"github.com/vortex-fintech/ingest-lib/tabular"
)

// Document is a parsed input. Exactly one of Table, Value or Text is
// populated, selected by Format (Text for PlainText, Table for Table,
// Value for JSON and XML).
type Document struct {
	Format format.Format
	Table  *tabular.Table
	Value  structured.Value
	Text   string
}

// DetectAndParse classifies text and parses it into a Document.
//
// Detection already proves JSON and XML decodable, so those branches
// cannot fail in practice; a table that fails row parsing degrades to
// PlainText rather than erroring. The error return covers decoder bugs
// only.
func DetectAndParse(text string) (Document, error) {
	switch f := format.Detect(text); f {
	case format.JSON:
		v, err := structured.DecodeJSON(text)
		if err != nil {
			return Document{}, err
		}
		return Document{Format: f, Value: v}, nil

	case format.XML:
		v, err := structured.DecodeXML(text)
		if err != nil {
			return Document{}, err
		}
		return Document{Format: f, Value: v}, nil

	case format.Table:
		t, err := tabular.Parse(text)
		if err != nil {
			return Document{Format: format.PlainText, Text: text}, nil
		}
		return Document{Format: f, Table: t}, nil
	}

	return Document{Format: format.PlainText, Text: text}, nil
}

// NormalizeRecord assembles and validates a contact from a record. It is
// contact.Assemble under the pipeline's name.
func NormalizeRecord(r *contact.Record) (contact.Contact, error) {
	return contact.Assemble(r)
}
