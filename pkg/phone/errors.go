package phone

import "errors"

var (
	// ErrInvalidFormat is returned when a format identifier is not a known phone format.
	ErrInvalidFormat = errors.New("phone: invalid format")

	// ErrInvalidCountry is returned when a country code is not a valid ISO 3166-1 alpha-2 code.
	ErrInvalidCountry = errors.New("phone: invalid country code")

	// ErrAmbiguousCountryField is returned when the input field supplying a
	// country is named like a phone type token.
	ErrAmbiguousCountryField = errors.New("phone: ambiguous country field")

	// ErrCountryRequired is returned when a number cannot be resolved and no
	// candidate country was supplied.
	ErrCountryRequired = errors.New("phone: country required")

	// ErrCountryMismatch is returned when none of the supplied countries
	// matches the number.
	ErrCountryMismatch = errors.New("phone: number does not match the provided countries")

	// ErrInvalidRule is returned when a rule descriptor is not a phone rule.
	ErrInvalidRule = errors.New("phone: invalid rule")

	// ErrNumberParse wraps parse failures reported by the phone number library.
	ErrNumberParse = errors.New("phone: number parse failed")

	// ErrInvalidConfig is returned when a Config value fails validation.
	ErrInvalidConfig = errors.New("phone: invalid config")
)
