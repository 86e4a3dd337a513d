package phone

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"
)

// Number is a phone number together with the countries it may belong to.
// The authoritative country is resolved on first use and cached.
type Number struct {
	raw       string
	countries []string
	lenient   bool
	lib       Library

	once    sync.Once
	country string
	parsed  *phonenumbers.PhoneNumber
	err     error
}

// New creates a Number without candidate countries.
func New(number string, opts ...Option) *Number {
	o := newOptions(opts...)
	return &Number{raw: number, lib: o.lib}
}

// Make creates a Number restricted to the given candidate countries.
// Invalid country codes are dropped.
func Make(number string, countries ...string) *Number {
	return New(number).OfCountry(countries...)
}

// Format is a shortcut for Make(number, countries...).Format(format).
func Format(number string, format any, countries ...string) (string, error) {
	return Make(number, countries...).Format(format)
}

// OfCountry returns a copy of n with the given countries appended to its
// candidates.
func (n *Number) OfCountry(countries ...string) *Number {
	c := n.clone()
	for _, country := range ParseCountries(countries...) {
		if !slices.Contains(c.countries, country) {
			c.countries = append(c.countries, country)
		}
	}
	return c
}

// Lenient returns a copy of n that accepts possible numbers, e.g. landline
// numbers without an area code, when matching candidate countries.
func (n *Number) Lenient() *Number {
	c := n.clone()
	c.lenient = true
	return c
}

// Raw returns the number as it was provided.
func (n *Number) Raw() string {
	return n.raw
}

// Countries returns the candidate countries.
func (n *Number) Countries() []string {
	return slices.Clone(n.countries)
}

// Country returns the resolved country of the number.
func (n *Number) Country() (string, error) {
	n.resolve()
	return n.country, n.err
}

// CountryName returns the English name of the resolved country.
func (n *Number) CountryName() (string, error) {
	country, err := n.Country()
	if err != nil {
		return "", err
	}
	return CountryName(country), nil
}

// IsOfCountry reports whether the resolved country is one of countries.
func (n *Number) IsOfCountry(countries ...string) (bool, error) {
	country, err := n.Country()
	if err != nil {
		return false, err
	}
	return slices.Contains(ParseCountries(countries...), country), nil
}

// PhoneNumber returns the parsed libphonenumber representation.
func (n *Number) PhoneNumber() (*phonenumbers.PhoneNumber, error) {
	n.resolve()
	return n.parsed, n.err
}

// TypeConstant returns the library's type classification of the number.
func (n *Number) TypeConstant() (phonenumbers.PhoneNumberType, error) {
	num, err := n.PhoneNumber()
	if err != nil {
		return phonenumbers.UNKNOWN, err
	}
	return n.lib.NumberType(num), nil
}

// Type returns the lowercase type name of the number, e.g. "mobile".
func (n *Number) Type() (string, error) {
	t, err := n.TypeConstant()
	if err != nil {
		return "", err
	}
	return TypeName(t), nil
}

// IsOfType reports whether the number is of one of the given types.
// Asking for FIXED_LINE or MOBILE also matches FIXED_LINE_OR_MOBILE, which
// the library reports when a region cannot tell the two apart.
func (n *Number) IsOfType(types ...any) (bool, error) {
	wanted := ParseTypes(types...)
	if slices.Contains(wanted, phonenumbers.FIXED_LINE) || slices.Contains(wanted, phonenumbers.MOBILE) {
		wanted = append(wanted, phonenumbers.FIXED_LINE_OR_MOBILE)
	}

	t, err := n.TypeConstant()
	if err != nil {
		return false, err
	}
	return slices.Contains(wanted, t), nil
}

// Format formats the number in the given format.
func (n *Number) Format(format any) (string, error) {
	f, ok := ParseFormat(format)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	}
	num, err := n.PhoneNumber()
	if err != nil {
		return "", err
	}
	return n.lib.Format(num, f), nil
}

// FormatE164 formats the number as "+14155552671".
func (n *Number) FormatE164() (string, error) {
	return n.Format(phonenumbers.E164)
}

// FormatInternational formats the number as "+1 415-555-2671".
func (n *Number) FormatInternational() (string, error) {
	return n.Format(phonenumbers.INTERNATIONAL)
}

// FormatNational formats the number as dialled within its country.
func (n *Number) FormatNational() (string, error) {
	return n.Format(phonenumbers.NATIONAL)
}

// FormatRFC3966 formats the number as a tel: URI.
func (n *Number) FormatRFC3966() (string, error) {
	return n.Format(phonenumbers.RFC3966)
}

// FormatForCountry formats the number the way it is dialled from country.
func (n *Number) FormatForCountry(country string) (string, error) {
	if !IsValidCountryCode(country) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountry, country)
	}
	num, err := n.PhoneNumber()
	if err != nil {
		return "", err
	}
	return n.lib.FormatOutOfCountryCallingNumber(num, strings.ToUpper(country)), nil
}

// FormatForMobileDialingInCountry formats the number the way it is dialled
// from a mobile phone in country.
func (n *Number) FormatForMobileDialingInCountry(country string, withFormatting bool) (string, error) {
	if !IsValidCountryCode(country) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountry, country)
	}
	num, err := n.PhoneNumber()
	if err != nil {
		return "", err
	}
	return n.lib.FormatNumberForMobileDialing(num, strings.ToUpper(country), withFormatting), nil
}

// String returns the E164 form of the number, or the raw input when the
// number cannot be formatted.
func (n *Number) String() string {
	s, err := n.FormatE164()
	if err != nil {
		return n.raw
	}
	return s
}

func (n *Number) resolve() {
	n.once.Do(func() {
		if n.lib == nil {
			n.lib = DefaultLibrary()
		}
		country, err := n.resolveCountry()
		if err != nil {
			n.err = err
			return
		}
		num, err := n.lib.Parse(n.raw, country)
		if err != nil {
			n.err = err
			return
		}
		n.country, n.parsed = country, num
	})
}

// resolveCountry picks the first candidate the number matches for its
// region, and only then falls back to global validity, including library
// detection for international numbers.
func (n *Number) resolveCountry() (string, error) {
	for _, country := range n.countries {
		num, err := n.lib.Parse(n.raw, country)
		if err != nil {
			continue
		}
		if n.lenient {
			if n.lib.IsPossibleNumber(num) {
				return country, nil
			}
		} else if n.lib.IsValidNumberForRegion(num, country) {
			return country, nil
		}
	}

	candidates := slices.Clone(n.countries)
	if n.looksInternational() {
		candidates = append(candidates, autoDetect)
	}

	var parseErr error
	for _, country := range candidates {
		num, err := n.lib.Parse(n.raw, country)
		if err != nil {
			if parseErr == nil {
				parseErr = err
			}
			continue
		}
		if n.lib.IsValidNumber(num) {
			return n.lib.RegionCodeForNumber(num), nil
		}
	}

	if len(n.countries) > 0 {
		return "", errors.Join(
			fmt.Errorf("%w: %q (%s)", ErrCountryMismatch, n.raw, strings.Join(n.countries, ", ")),
			parseErr,
		)
	}
	return "", errors.Join(fmt.Errorf("%w: %q", ErrCountryRequired, n.raw), parseErr)
}

func (n *Number) looksInternational() bool {
	return strings.HasPrefix(n.raw, "+")
}

func (n *Number) clone() *Number {
	return &Number{
		raw:       n.raw,
		countries: slices.Clone(n.countries),
		lenient:   n.lenient,
		lib:       n.lib,
	}
}
