package contact

import (
	"fmt"
	"strings"

	"github.com/vortex-fintech/ingest-lib/extract"
)

// NormalizePhone canonicalizes a phone-bearing string to a fixed display
// format, or preserves international form:
//
//	10 digits            -> "(DDD) DDD-DDDD"
//	11 digits, leading 1 -> "+1 (DDD) DDD-DDDD"
//	10+ digits otherwise -> first phone match of the original string,
//	                        trimmed, separators and leading + preserved
//	fewer than 10 digits -> ""
func NormalizePhone(raw string) string {
	digits := digitsOf(raw)

	switch {
	case len(digits) == 10:
		return formatUS(digits)
	case len(digits) == 11 && digits[0] == '1':
		return "+1 " + formatUS(digits[1:])
	case len(digits) >= 10:
		// International numbers pass through as written rather than
		// being forced into US formatting.
		return extract.FirstPhone(raw)
	}
	return ""
}

func formatUS(d string) string {
	return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
}

func digitsOf(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
