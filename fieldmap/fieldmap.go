// Package fieldmap canonicalizes header names via a static synonym table.
//
// The table is package data built once; all lookups are read-only and safe
// for concurrent use.
package fieldmap

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field is one of the canonical contact fields downstream consumers rely on.
type Field string

const (
	FirstName Field = "first_name"
	LastName  Field = "last_name"
	FullName  Field = "full_name"
	Email     Field = "email"
	Phone     Field = "phone"
	Company   Field = "company"
)

// resolutionOrder fixes which canonical field wins when a header matches
// synonyms of more than one. FullName goes last: its synonyms ("name",
// "contact") are substrings of many more specific headers such as
// "last name" or "company name".
var resolutionOrder = []Field{FirstName, LastName, Email, Phone, Company, FullName}

// synonyms maps each canonical field to recognized header substrings.
// English plus Spanish, French and German variants per field.
var synonyms = map[Field][]string{
	FirstName: {
		"first name", "first_name", "fname", "first",
		"given name", "given_name", "given",
		"nombre", "prenom", "prénom", "vorname",
	},
	LastName: {
		"last name", "last_name", "lname", "last",
		"surname", "family name", "family_name", "family",
		"apellidos", "apellido", "nom", "nachname",
	},
	Email: {
		"email", "e-mail", "email address", "email_address",
		"mail", "correo", "courriel", "e_mail",
	},
	Phone: {
		"phone", "phone number", "phone_number", "tel", "telephone",
		"mobile", "cell", "cellular", "work phone", "home phone",
		"teléfono", "telefono", "téléphone",
	},
	Company: {
		"company", "organization", "org", "employer", "business",
		"empresa", "société", "societe", "unternehmen", "firma",
	},
	FullName: {
		"name", "full name", "full_name", "display name",
		"contact name", "contact", "person", "nombre completo",
	},
}

// Normalize prepares a header for matching: NFKC fold, trim, lower-case.
func Normalize(header string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(header)))
}

// Resolve maps a raw header to its canonical field. The header matches a
// field when any synonym of that field is a substring of the normalized
// header; fields are tested in resolutionOrder and the first match wins.
func Resolve(header string) (Field, bool) {
	h := Normalize(header)
	if h == "" {
		return "", false
	}
	for _, f := range resolutionOrder {
		for _, syn := range synonyms[f] {
			if strings.Contains(h, syn) {
				return f, true
			}
		}
	}
	return "", false
}

// Canonical returns the canonical field name for a header, or the
// normalized header itself when nothing matches. Unmatched headers are
// preserved rather than dropped.
func Canonical(header string) string {
	if f, ok := Resolve(header); ok {
		return string(f)
	}
	return Normalize(header)
}

// IsSynonym reports whether a cell matches any synonym of any canonical
// field. Used by tabular header detection.
func IsSynonym(cell string) bool {
	_, ok := Resolve(cell)
	return ok
}

// CanonicalFields lists the canonical fields in resolution order.
func CanonicalFields() []Field {
	out := make([]Field, len(resolutionOrder))
	copy(out, resolutionOrder)
	return out
}

// IsCanonical reports whether name is one of the fixed canonical fields.
func IsCanonical(name string) bool {
	switch Field(name) {
	case FirstName, LastName, FullName, Email, Phone, Company:
		return true
	}
	return false
}
