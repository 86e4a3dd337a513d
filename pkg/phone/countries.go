package phone

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// autoDetect is the candidate country that asks the library to detect the
// region from an international number.
const autoDetect = ""

// IsValidCountryCode reports whether code is an ISO 3166-1 alpha-2 country
// code. The check is case-insensitive.
func IsValidCountryCode(code string) bool {
	_, ok := parseRegion(code)
	return ok
}

// ParseCountries normalizes the given codes to uppercase, drops everything
// that is not a valid country code and removes duplicates, keeping the
// original order.
func ParseCountries(countries ...string) []string {
	result := make([]string, 0, len(countries))
	for _, c := range countries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if !IsValidCountryCode(c) || slices.Contains(result, c) {
			continue
		}
		result = append(result, c)
	}
	return result
}

// CountryName returns the English display name of a country code, or an
// empty string if the code is invalid.
func CountryName(code string) string {
	region, ok := parseRegion(code)
	if !ok {
		return ""
	}
	return display.English.Regions().Name(region)
}

func parseRegion(code string) (language.Region, bool) {
	if len(code) != 2 || !isASCIILetter(code[0]) || !isASCIILetter(code[1]) {
		return language.Region{}, false
	}
	code = strings.ToUpper(code)

	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return language.Region{}, false
	}
	// ParseRegion canonicalizes some deprecated codes; only accept exact matches.
	if region.String() != code {
		return language.Region{}, false
	}
	return region, true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
