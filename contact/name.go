package contact

import "strings"

// SplitName splits a combined name into (first, last); either may be "".
//
// A comma means "Last, First" order: the string is split on the first
// comma and the halves swap. Otherwise whitespace tokens are used:
// one token is a bare first name, two map directly, three or more keep
// the first token and join the rest as the last name. The rule applies
// identically regardless of which input format produced the field.
func SplitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}

	if before, after, ok := strings.Cut(full, ","); ok {
		return strings.TrimSpace(after), strings.TrimSpace(before)
	}

	tokens := strings.Fields(full)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	case 2:
		return tokens[0], tokens[1]
	default:
		return tokens[0], strings.Join(tokens[1:], " ")
	}
}
