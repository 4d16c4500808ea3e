package ingest

import (
	"fmt"
	"strings"

	"github.com/vortex-fintech/ingest-lib/contact"
	"github.com/vortex-fintech/ingest-lib/extract"
	"github.com/vortex-fintech/ingest-lib/fieldmap"
	"github.com/vortex-fintech/ingest-lib/format"
	"github.com/vortex-fintech/ingest-lib/structured"
	"github.com/vortex-fintech/ingest-lib/tabular"
)

// RecordsFrom lowers a parsed document into contact records, one per row
// or item:
//
//   - Table: one record per data row; header cells resolve through
//     fieldmap, headerless columns are guessed positionally.
//   - JSON/XML: mappings with scalar content become records; container
//     nodes only contribute the records found inside them.
//   - PlainText: a single record holding the raw text under "text",
//     leaving extraction to the assembly fallback scans.
func RecordsFrom(doc Document) []*contact.Record {
	switch doc.Format {
	case format.Table:
		return recordsFromTable(doc.Table)
	case format.JSON, format.XML:
		return recordsFromValue(doc.Value)
	}

	r := contact.NewRecord()
	r.Set("text", doc.Text)
	return []*contact.Record{r}
}

func recordsFromTable(t *tabular.Table) []*contact.Record {
	if t == nil {
		return nil
	}
	out := make([]*contact.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		var r *contact.Record
		if t.HasHeader {
			r = recordFromHeaderedRow(t.Columns, row)
		} else {
			r = recordFromBareRow(row)
		}
		out = append(out, r)
	}
	return out
}

func recordFromHeaderedRow(columns, row []string) *contact.Record {
	r := contact.NewRecord()
	for i, cell := range row {
		header := fmt.Sprintf("column_%d", i)
		if i < len(columns) {
			header = columns[i]
		}
		setField(r, header, strings.TrimSpace(cell))
	}
	return r
}

// recordFromBareRow guesses fields positionally when there is no header:
// a cell with an email match is the email, a normalizable phone is the
// phone, the first cell is the full name, later free-text cells are the
// company. Whatever remains keeps a positional key so fallback scans can
// still see it.
func recordFromBareRow(row []string) *contact.Record {
	r := contact.NewRecord()
	for i, cell := range row {
		c := strings.TrimSpace(cell)
		var key string
		switch {
		case extract.FirstEmail(c) != "":
			key = string(fieldmap.Email)
		case contact.NormalizePhone(c) != "":
			key = string(fieldmap.Phone)
		case i == 0:
			key = string(fieldmap.FullName)
		case i >= 2:
			key = string(fieldmap.Company)
		}
		if key == "" || r.Has(key) {
			key = fmt.Sprintf("column_%d", i)
		}
		r.Set(key, c)
	}
	return r
}

func recordsFromValue(v structured.Value) []*contact.Record {
	var out []*contact.Record
	collectRecords("", v, &out)
	return out
}

// collectRecords walks the value tree. key is the member key (or element
// tag) under which v was reached; "" at the root.
func collectRecords(key string, v structured.Value, out *[]*contact.Record) {
	switch v.Kind {
	case structured.KindScalar:
		// A bare item in a sequence of strings still makes a record, so
		// fallback scans get a chance at its text.
		if strings.TrimSpace(v.Str) == "" {
			return
		}
		r := contact.NewRecord()
		header := key
		if header == "" {
			header = structured.TextKey
		}
		setField(r, header, v.Str)
		*out = append(*out, r)
	case structured.KindSequence:
		for _, item := range v.Items {
			collectRecords(key, item, out)
		}
	case structured.KindMapping:
		if mappingIsRecord(v) {
			*out = append(*out, recordFromMapping(key, v))
			return
		}
		for _, m := range v.Members {
			// Attributes of a pure container are metadata, not records.
			if m.Key == structured.AttributesKey {
				continue
			}
			collectRecords(m.Key, m.Value, out)
		}
	}
}

// mappingIsRecord reports whether a mapping carries scalar content of its
// own, as opposed to being a pure container of nested structures.
func mappingIsRecord(v structured.Value) bool {
	for _, m := range v.Members {
		if m.Key == structured.AttributesKey {
			continue
		}
		if _, ok := leafText(m.Value); ok {
			return true
		}
	}
	return false
}

// recordFromMapping builds one record from a record-shaped mapping. tag
// is the key the mapping was reached under; element character data (the
// "text" pseudo-key) is filed under the resolved tag so that
// <person>John Doe</person> contributes a name field.
func recordFromMapping(tag string, v structured.Value) *contact.Record {
	r := contact.NewRecord()

	if attrs, ok := v.Get(structured.AttributesKey); ok {
		for _, a := range attrs.Members {
			setField(r, a.Key, a.Value.Str)
		}
	}

	for _, m := range v.Members {
		switch m.Key {
		case structured.AttributesKey:
		case structured.TextKey:
			header := tag
			if header == "" {
				header = structured.TextKey
			}
			setField(r, header, m.Value.Str)
		default:
			if text, ok := leafText(m.Value); ok {
				setField(r, m.Key, text)
			} else {
				// Nested container inside a record flattens into one
				// field so fallback scans can still search it.
				setField(r, m.Key, m.Value.Flatten())
			}
		}
	}
	return r
}

// leafText extracts the scalar content of a value: the scalar itself, or
// the character data of an element-shaped mapping that has no child
// elements (only "text" and "@attributes" members).
func leafText(v structured.Value) (string, bool) {
	switch v.Kind {
	case structured.KindScalar:
		return v.Str, true
	case structured.KindMapping:
		for _, m := range v.Members {
			if m.Key != structured.TextKey && m.Key != structured.AttributesKey {
				return "", false
			}
		}
		if t, ok := v.Get(structured.TextKey); ok {
			return t.Str, true
		}
		return "", true
	}
	return "", false
}

// setField stores a value under the canonicalized header. When two
// headers canonicalize to the same field the first keeps it and later
// ones fall back to their normalized original name, so no cell is lost.
func setField(r *contact.Record, header, value string) {
	key := fieldmap.Canonical(header)
	if _, taken := r.Get(key); taken {
		if n := fieldmap.Normalize(header); n != key {
			key = n
		}
	}
	r.Set(key, value)
}
