package contact

import (
	"strings"

	"github.com/vortex-fintech/ingest-lib/extract"
	"github.com/vortex-fintech/ingest-lib/fieldmap"
)

// Contact is a normalized record. Empty string means absent.
type Contact struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
}

// Assemble builds a validated Contact from a canonicalized record.
// The steps are strictly sequential, with no retries:
//
//  1. name: canonical first/last if either is present, else split full_name
//  2. email: canonical email field when its raw value contains "@", else
//     the first match scanning every field in record order
//  3. phone: same two-tier strategy via NormalizePhone
//  4. company: canonical value verbatim, no fallback
//
// A contact must end up with a name part and a contact method; anything
// less is a *ValidationError, never a silently partial result.
func Assemble(r *Record) (Contact, error) {
	var c Contact

	c.FirstName, c.LastName = assembleName(r)
	c.Email = assembleEmail(r)
	c.Phone = assemblePhone(r)
	if v, ok := r.Get(string(fieldmap.Company)); ok {
		c.Company = v
	}

	verr := &ValidationError{
		MissingName:          c.FirstName == "" && c.LastName == "",
		MissingContactMethod: c.Email == "" && c.Phone == "",
	}
	if verr.MissingName || verr.MissingContactMethod {
		return Contact{}, verr
	}
	return c, nil
}

func assembleName(r *Record) (first, last string) {
	f, _ := r.Get(string(fieldmap.FirstName))
	l, _ := r.Get(string(fieldmap.LastName))
	first, last = strings.TrimSpace(f), strings.TrimSpace(l)
	if first != "" || last != "" {
		return first, last
	}
	if full, ok := r.Get(string(fieldmap.FullName)); ok {
		return SplitName(full)
	}
	return "", ""
}

func assembleEmail(r *Record) string {
	if raw, ok := r.Get(string(fieldmap.Email)); ok && strings.Contains(raw, "@") {
		if email := extract.FirstEmail(raw); email != "" {
			return email
		}
	}

	var found string
	r.Each(func(_, value string) bool {
		if email := extract.FirstEmail(value); email != "" {
			found = email
			return false
		}
		return true
	})
	return found
}

func assemblePhone(r *Record) string {
	if raw, ok := r.Get(string(fieldmap.Phone)); ok {
		if phone := NormalizePhone(raw); phone != "" {
			return phone
		}
	}

	var found string
	r.Each(func(_, value string) bool {
		if phone := NormalizePhone(value); phone != "" {
			found = phone
			return false
		}
		return true
	})
	return found
}
