// Package contact turns canonicalized records into validated normalized
// contacts: name splitting, phone normalization and two-tier field
// assembly with fallback scans.
package contact

import "strings"

// Record is an ordered field -> raw value mapping for one row or item.
// Keys are canonical field names or original lower-cased headers.
// Order is significant: fallback scans walk fields in insertion order.
type Record struct {
	fields []recordField
}

type recordField struct {
	key   string
	value string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{}
}

// Set adds a field. The first value set for a key wins; later sets of the
// same key are ignored so that the earliest source column keeps its claim
// on a canonical field.
func (r *Record) Set(key, value string) {
	for _, f := range r.fields {
		if f.key == key {
			return
		}
	}
	r.fields = append(r.fields, recordField{key: key, value: value})
}

// Get returns the value for key.
func (r *Record) Get(key string) (string, bool) {
	for _, f := range r.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return "", false
}

// Has reports whether key is present with a non-blank value.
func (r *Record) Has(key string) bool {
	v, ok := r.Get(key)
	return ok && strings.TrimSpace(v) != ""
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Each walks fields in insertion order; the visitor returns false to stop.
func (r *Record) Each(visit func(key, value string) bool) {
	for _, f := range r.fields {
		if !visit(f.key, f.value) {
			return
		}
	}
}
