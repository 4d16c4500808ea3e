// Package structured models decoded JSON/XML documents as a tagged union
// over {Scalar, Sequence, Mapping}.
//
// Mappings preserve source order (JSON object key order, XML child order)
// so that downstream field-iteration order is deterministic.
package structured

import "strings"

// Kind tags a Value.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// Member is a single ordered key/value pair of a mapping.
type Member struct {
	Key   string
	Value Value
}

// Value is a decoded node: exactly one of Str, Items or Members is
// meaningful, selected by Kind.
type Value struct {
	Kind    Kind
	Str     string
	Items   []Value
	Members []Member
}

// Scalar wraps a string as a scalar Value.
func Scalar(s string) Value {
	return Value{Kind: KindScalar, Str: s}
}

// Sequence wraps items as a sequence Value.
func Sequence(items ...Value) Value {
	return Value{Kind: KindSequence, Items: items}
}

// Mapping wraps ordered members as a mapping Value.
func Mapping(members ...Member) Value {
	return Value{Kind: KindMapping, Members: members}
}

// Get returns the value of the first member whose key equals key,
// case-insensitively.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindMapping {
		return Value{}, false
	}
	for _, m := range v.Members {
		if strings.EqualFold(m.Key, key) {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Flatten joins every scalar reachable from v, depth-first, with single
// spaces. For a scalar it is just the scalar text.
func (v Value) Flatten() string {
	switch v.Kind {
	case KindScalar:
		return v.Str
	case KindSequence:
		parts := make([]string, 0, len(v.Items))
		for _, it := range v.Items {
			if s := it.Flatten(); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case KindMapping:
		parts := make([]string, 0, len(v.Members))
		for _, m := range v.Members {
			if s := m.Value.Flatten(); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// Walk visits v and all its descendants depth-first in source order.
// The visitor returns false to stop the walk.
func (v Value) Walk(visit func(Value) bool) {
	var rec func(Value) bool
	rec = func(n Value) bool {
		if !visit(n) {
			return false
		}
		switch n.Kind {
		case KindSequence:
			for _, it := range n.Items {
				if !rec(it) {
					return false
				}
			}
		case KindMapping:
			for _, m := range n.Members {
				if !rec(m.Value) {
					return false
				}
			}
		}
		return true
	}
	rec(v)
}
