// Package format classifies raw text into one of the supported input
// formats: JSON, XML, delimited table, or plain text.
//
// Detection is total: it returns exactly one Format and never an error.
// Failed structural probes fall through to the next candidate.
package format

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"
)

// Format is the detected shape of an input document.
type Format int

const (
	PlainText Format = iota
	JSON
	XML
	Table
)

var formatNames = [...]string{
	PlainText: "plain_text",
	JSON:      "json",
	XML:       "xml",
	Table:     "table",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// delimiters is the candidate set shared with the tabular package.
// Priority order matters for ties: comma > semicolon > tab > pipe.
var delimiters = []byte{',', ';', '\t', '|'}

// Detect classifies text. The probes run in a fixed order and each
// failure falls through to the next branch:
//
//  1. {...} or [...] and strictly valid JSON -> JSON
//  2. <...> and strictly well-formed XML     -> XML
//  3. multiline with a consistent delimiter  -> Table
//  4. otherwise                              -> PlainText
func Detect(text string) Format {
	s := strings.TrimSpace(text)

	if looksDelimited(s, '{', '}') || looksDelimited(s, '[', ']') {
		if json.Valid([]byte(s)) {
			return JSON
		}
	}

	if looksDelimited(s, '<', '>') {
		if wellFormedXML(s) {
			return XML
		}
	}

	if strings.ContainsRune(text, '\n') && hasConsistentDelimiter(text) {
		return Table
	}

	return PlainText
}

func looksDelimited(s string, open, close byte) bool {
	return len(s) >= 2 && s[0] == open && s[len(s)-1] == close
}

// wellFormedXML walks the full token stream; any decode error means the
// probe fails. At least one element is required so a stray "<>" does not
// classify as XML.
func wellFormedXML(s string) bool {
	dec := xml.NewDecoder(strings.NewReader(s))
	sawElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return sawElement
		}
		if err != nil {
			return false
		}
		if _, ok := tok.(xml.StartElement); ok {
			sawElement = true
		}
	}
}

// hasConsistentDelimiter reports whether a single candidate delimiter
// occurs with the same nonzero count across the first two non-empty lines.
func hasConsistentDelimiter(text string) bool {
	var first, second string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if first == "" {
			first = line
			continue
		}
		second = line
		break
	}
	if second == "" {
		return false
	}

	for _, d := range delimiters {
		n := strings.Count(first, string(d))
		if n > 0 && strings.Count(second, string(d)) == n {
			return true
		}
	}
	return false
}
