package phone

import (
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"
)

var formatTable = sync.OnceValue(func() map[string]phonenumbers.PhoneNumberFormat {
	return map[string]phonenumbers.PhoneNumberFormat{
		"E164":          phonenumbers.E164,
		"INTERNATIONAL": phonenumbers.INTERNATIONAL,
		"NATIONAL":      phonenumbers.NATIONAL,
		"RFC3966":       phonenumbers.RFC3966,
	}
})

// IsValidFormat reports whether f names or equals a known phone format.
func IsValidFormat(f any) bool {
	_, ok := ParseFormat(f)
	return ok
}

// ParseFormat resolves a format given as a phonenumbers.PhoneNumberFormat,
// its int value, or its case-insensitive name ("E164", "national", ...).
func ParseFormat(f any) (phonenumbers.PhoneNumberFormat, bool) {
	switch v := f.(type) {
	case phonenumbers.PhoneNumberFormat:
		return formatByValue(int(v))
	case int:
		return formatByValue(v)
	case string:
		format, ok := formatTable()[strings.ToUpper(strings.TrimSpace(v))]
		return format, ok
	}
	return 0, false
}

func formatByValue(n int) (phonenumbers.PhoneNumberFormat, bool) {
	for _, format := range formatTable() {
		if int(format) == n {
			return format, true
		}
	}
	return 0, false
}
