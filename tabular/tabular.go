// Package tabular parses delimited text into rows with auto-detected
// delimiter and header presence.
//
// The delimiter is fixed once detected and applied to every row; the
// header flag is computed once from the first row and applied uniformly.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/vortex-fintech/ingest-lib/fieldmap"
)

// ErrUnsupportedDelimiter is returned by ParseWithDelimiter when the
// caller bypasses auto-detection with a rune outside the candidate set.
var ErrUnsupportedDelimiter = errors.New("tabular: unsupported delimiter")

// Delimiters is the candidate set in tie-break priority order.
var Delimiters = []rune{',', ';', '\t', '|'}

// Table is the intermediate row/column representation produced before
// canonicalization and extraction.
type Table struct {
	Delimiter rune
	HasHeader bool
	// Columns holds trimmed header cells, or synthesized names
	// "column_0", "column_1", ... when no header was detected.
	Columns []string
	// Rows holds the data rows (the header row excluded) as raw cells.
	Rows [][]string
}

// DetectDelimiter counts candidate occurrences in the first line and picks
// the strictly highest; ties resolve by the fixed priority
// comma > semicolon > tab > pipe; all-zero counts default to comma.
func DetectDelimiter(text string) rune {
	firstLine, _, _ := strings.Cut(text, "\n")

	best := ','
	bestCount := 0
	for _, d := range Delimiters {
		if n := strings.Count(firstLine, string(d)); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}

// Parse auto-detects the delimiter and header presence, then extracts rows.
func Parse(text string) (*Table, error) {
	return parse(text, DetectDelimiter(text))
}

// ParseWithDelimiter parses with an explicit delimiter instead of
// auto-detection.
func ParseWithDelimiter(text string, delimiter rune) (*Table, error) {
	supported := false
	for _, d := range Delimiters {
		if d == delimiter {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDelimiter, delimiter)
	}
	return parse(text, delimiter)
}

func parse(text string, delimiter rune) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tabular: parse: %w", err)
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if allBlank(rec) {
			continue
		}
		rows = append(rows, rec)
	}

	t := &Table{Delimiter: delimiter}
	if len(rows) == 0 {
		return t, nil
	}

	t.HasHeader = detectHeader(rows[0])
	if t.HasHeader {
		t.Columns = trimAll(rows[0])
		t.Rows = rows[1:]
	} else {
		t.Columns = synthesizeColumns(widest(rows))
		t.Rows = rows
	}
	return t, nil
}

// detectHeader scores the first row: a synonym match counts 2, any other
// non-numeric cell without "@" counts 1; a header is declared when the
// total reaches the cell count. Data rows dominated by emails, phones and
// numbers cannot reach the threshold.
func detectHeader(first []string) bool {
	if len(first) == 0 {
		return false
	}
	score := 0
	for _, cell := range first {
		c := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case c == "":
		case fieldmap.IsSynonym(c):
			score += 2
		case !looksNumeric(c) && !strings.Contains(c, "@"):
			score++
		}
	}
	return score >= len(first)
}

// looksNumeric reports whether a cell is digits once common phone/number
// punctuation is stripped.
func looksNumeric(cell string) bool {
	digits := 0
	for _, r := range cell {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(" .-()+", r):
		default:
			return false
		}
	}
	return digits > 0
}

func allBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

func widest(rows [][]string) int {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

func synthesizeColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("column_%d", i)
	}
	return cols
}

// Encode re-serializes the table with its detected delimiter. Parsing the
// result yields the same delimiter and row count (round-trip stability).
func (t *Table) Encode() (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma = t.Delimiter

	if t.HasHeader {
		if err := w.Write(t.Columns); err != nil {
			return "", fmt.Errorf("tabular: encode: %w", err)
		}
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("tabular: encode: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("tabular: encode: %w", err)
	}
	return b.String(), nil
}
