package utils

import "strings"

// PhoneDigits strips everything except digits, so "+1-234-5678" and
// "12345678" compare equal-ish.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhonesOverlap reports whether two phone numbers match after digit
// normalization. The match is a symmetric substring check: either side may
// be a partial number of the other. Empty sides never match.
func PhonesOverlap(a, b string) bool {
	da, db := PhoneDigits(a), PhoneDigits(b)
	if da == "" || db == "" {
		return false
	}
	return strings.Contains(da, db) || strings.Contains(db, da)
}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// ValidPhone accepts numbers with 7 to 15 digits after stripping common
// separators, optionally prefixed with +.
func ValidPhone(phone string) bool {
	cleaned := phoneSeparators.Replace(strings.TrimSpace(phone))
	cleaned = strings.TrimPrefix(cleaned, "+")
	digits := PhoneDigits(cleaned)
	return len(digits) >= 7 && len(digits) <= 15 && digits == cleaned
}
