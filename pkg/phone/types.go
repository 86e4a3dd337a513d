package phone

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"
)

type typeEntry struct {
	name  string
	value phonenumbers.PhoneNumberType
}

// typeTable is the authored list of phone number types known to the library.
var typeTable = sync.OnceValue(func() []typeEntry {
	return []typeEntry{
		{"FIXED_LINE", phonenumbers.FIXED_LINE},
		{"MOBILE", phonenumbers.MOBILE},
		{"FIXED_LINE_OR_MOBILE", phonenumbers.FIXED_LINE_OR_MOBILE},
		{"TOLL_FREE", phonenumbers.TOLL_FREE},
		{"PREMIUM_RATE", phonenumbers.PREMIUM_RATE},
		{"SHARED_COST", phonenumbers.SHARED_COST},
		{"VOIP", phonenumbers.VOIP},
		{"PERSONAL_NUMBER", phonenumbers.PERSONAL_NUMBER},
		{"PAGER", phonenumbers.PAGER},
		{"UAN", phonenumbers.UAN},
		{"VOICEMAIL", phonenumbers.VOICEMAIL},
		{"UNKNOWN", phonenumbers.UNKNOWN},
	}
})

// IsValidType reports whether t resolves to at least one known phone type.
func IsValidType(t any) bool {
	return len(ParseTypes(t)) > 0
}

// ParseTypes resolves each entry to a phonenumbers.PhoneNumberType.
//
// Entries may be type names in any case ("mobile", "FIXED_LINE"),
// phonenumbers.PhoneNumberType values, ints, numeric strings, or slices of
// those. Unknown entries are dropped and duplicates removed.
func ParseTypes(types ...any) []phonenumbers.PhoneNumberType {
	result := make([]phonenumbers.PhoneNumberType, 0, len(types))
	for _, token := range flattenTokens(types) {
		t, ok := parseType(token)
		if !ok || slices.Contains(result, t) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// TypeName returns the lowercase name of a phone type, e.g. "fixed_line".
// Unknown values yield an empty string.
func TypeName(t phonenumbers.PhoneNumberType) string {
	for _, e := range typeTable() {
		if e.value == t {
			return strings.ToLower(e.name)
		}
	}
	return ""
}

func parseType(token any) (phonenumbers.PhoneNumberType, bool) {
	switch v := token.(type) {
	case phonenumbers.PhoneNumberType:
		return typeByValue(int(v))
	case int:
		return typeByValue(v)
	case int64:
		return typeByValue(int(v))
	case string:
		v = strings.TrimSpace(v)
		if n, err := strconv.Atoi(v); err == nil {
			return typeByValue(n)
		}
		name := strings.ToUpper(v)
		for _, e := range typeTable() {
			if e.name == name {
				return e.value, true
			}
		}
	}
	return 0, false
}

func typeByValue(n int) (phonenumbers.PhoneNumberType, bool) {
	for _, e := range typeTable() {
		if int(e.value) == n {
			return e.value, true
		}
	}
	return 0, false
}

// flattenTokens expands nested string and any slices into a flat token list.
func flattenTokens(tokens []any) []any {
	out := make([]any, 0, len(tokens))
	for _, t := range tokens {
		switch v := t.(type) {
		case []string:
			for _, s := range v {
				out = append(out, s)
			}
		case []phonenumbers.PhoneNumberType:
			for _, p := range v {
				out = append(out, p)
			}
		case []any:
			out = append(out, flattenTokens(v)...)
		default:
			out = append(out, v)
		}
	}
	return out
}
