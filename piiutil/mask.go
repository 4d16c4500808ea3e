// Package piiutil masks personal data before it reaches logs.
package piiutil

import (
	"strings"
	"unicode"
)

const (
	shortDigitCountThreshold = 4
	keepShortDigits          = 1
	keepLongDigits           = 4
)

// MaskEmail masks the local-part of an e-mail while keeping minimal visibility.
// It shows the first and last character of the local-part.
// Examples:
//
//	"user@example.com"    -> "u**r@example.com"
//	"ab@example.com"      -> "a*@example.com"
//	"u@example.com"       -> "u@example.com"  (single char, nothing to hide)
//	"weird"               -> "w***d"
//	"x"                   -> "x"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskGenericToken(email)
	}

	local := email[:at]
	domain := email[at:] // includes '@'
	localRunes := []rune(local)
	if len(localRunes) < 2 {
		return local + domain
	}

	if len(localRunes) == 2 {
		return string(localRunes[0]) + "*" + domain
	}

	var b strings.Builder
	b.Grow(len(local) + len(domain))
	b.WriteRune(localRunes[0])
	for i := 1; i < len(localRunes)-1; i++ {
		b.WriteRune('*')
	}
	b.WriteRune(localRunes[len(localRunes)-1])
	b.WriteString(domain)
	return b.String()
}

// MaskPhone masks a phone value while preserving formatting symbols.
// It keeps the last 1 or 4 digits:
//   - if total digits <= 4 -> keep 1 last digit
//   - if total digits > 4  -> keep 4 last digits
//
// Examples:
//
//	"+1234567890"       -> "+******7890"
//	"(555) 123-4567"    -> "(***) ***-4567"
//	"123"               -> "**3"
//	"1"                 -> "1"
//	"AB-CD" (no digits) -> "**-*D"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	if !maskDigitsKeepLast4Or1(runes) {
		return maskLettersAndDigitsKeepLast(runes, 1)
	}
	return string(runes)
}

// maskGenericToken masks a non-email token keeping first and last rune.
func maskGenericToken(s string) string {
	runes := []rune(s)
	n := len(runes)
	if n == 1 {
		return string(runes)
	}
	if n == 2 {
		return string(runes[0]) + "*"
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(runes[0])
	for i := 1; i < n-1; i++ {
		b.WriteByte('*')
	}
	b.WriteRune(runes[n-1])
	return b.String()
}

// maskDigitsKeepLast4Or1 masks digits in place and keeps:
//   - 1 last digit when total digits <= 4
//   - 4 last digits when total digits > 4
//
// It returns false when there are no digits at all.
func maskDigitsKeepLast4Or1(runes []rune) bool {
	totalDigits := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			totalDigits++
		}
	}
	if totalDigits == 0 {
		return false
	}

	keepDigits := keepLongDigits
	if totalDigits <= shortDigitCountThreshold {
		keepDigits = keepShortDigits
	}

	digitsSeen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			digitsSeen++
			if digitsSeen > keepDigits {
				runes[i] = '*'
			}
		}
	}

	return true
}

// maskLettersAndDigitsKeepLast masks all letters/digits except the last keep
// significant ones.
func maskLettersAndDigitsKeepLast(runes []rune, keep int) string {
	n := len(runes)
	if n == 0 {
		return ""
	}
	if keep < 1 {
		keep = 1
	}

	total := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return string(runes)
	}
	if keep > total {
		keep = total
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}
