// Package extract finds email addresses and phone numbers in strings and
// in arbitrarily nested structured values.
//
// All functions are total: no input can fail extraction, absent matches
// yield empty results. The compiled patterns are package data, safe for
// concurrent use.
package extract

import (
	"regexp"
	"strings"

	"github.com/vortex-fintech/ingest-lib/structured"
)

// emailPattern matches local@domain.tld: local part of letters, digits
// and ._%+-, domain with at least one dot, TLD of two or more letters.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePattern matches candidate runs: optional leading +, then digits
// with space/dash/dot/parenthesis separators. Candidates still need
// MinPhoneDigits digits once punctuation is stripped.
var phonePattern = regexp.MustCompile(`\+?[\d\s\-().]{10,}`)

// MinPhoneDigits is the minimum digit count for a run to qualify as a
// phone number.
const MinPhoneDigits = 10

// Emails returns all non-overlapping email matches in s, left to right.
func Emails(s string) []string {
	return emailPattern.FindAllString(s, -1)
}

// FirstEmail returns the first email in s, or "".
func FirstEmail(s string) string {
	return emailPattern.FindString(s)
}

// Phones returns all non-overlapping phone matches in s, left to right.
// A match is trimmed but otherwise kept as written, separators included.
func Phones(s string) []string {
	var out []string
	for _, cand := range phonePattern.FindAllString(s, -1) {
		if p := qualifyPhone(cand); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FirstPhone returns the first phone in s, or "".
func FirstPhone(s string) string {
	for _, cand := range phonePattern.FindAllString(s, -1) {
		if p := qualifyPhone(cand); p != "" {
			return p
		}
	}
	return ""
}

func qualifyPhone(candidate string) string {
	if DigitCount(candidate) < MinPhoneDigits {
		return ""
	}
	return strings.TrimSpace(candidate)
}

// DigitCount counts decimal digits in s.
func DigitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// EmailsIn collects emails from every scalar reachable in v, depth-first,
// duplicates preserved.
func EmailsIn(v structured.Value) []string {
	var out []string
	v.Walk(func(n structured.Value) bool {
		if n.Kind == structured.KindScalar {
			out = append(out, Emails(n.Str)...)
		}
		return true
	})
	return out
}

// PhonesIn collects phones from every scalar reachable in v, depth-first,
// duplicates preserved.
func PhonesIn(v structured.Value) []string {
	var out []string
	v.Walk(func(n structured.Value) bool {
		if n.Kind == structured.KindScalar {
			out = append(out, Phones(n.Str)...)
		}
		return true
	})
	return out
}

// FieldValues returns the values of every mapping member whose key equals
// name case-insensitively, searching v depth-first.
func FieldValues(v structured.Value, name string) []structured.Value {
	var out []structured.Value
	v.Walk(func(n structured.Value) bool {
		if n.Kind == structured.KindMapping {
			for _, m := range n.Members {
				if strings.EqualFold(m.Key, name) {
					out = append(out, m.Value)
				}
			}
		}
		return true
	})
	return out
}

// FilterRecords keeps the mappings of a sequence whose member named field
// has scalar value equal to want, case-insensitively. Non-sequences and
// non-mapping items yield nothing.
func FilterRecords(v structured.Value, field, want string) []structured.Value {
	if v.Kind != structured.KindSequence {
		return nil
	}
	var out []structured.Value
	for _, item := range v.Items {
		if item.Kind != structured.KindMapping {
			continue
		}
		got, ok := item.Get(field)
		if ok && strings.EqualFold(strings.TrimSpace(got.Flatten()), strings.TrimSpace(want)) {
			out = append(out, item)
		}
	}
	return out
}
