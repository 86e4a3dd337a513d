package phone

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/phonekit/pkg/logger"
)

// Params is the resolved parameter bundle of a phone validation rule.
type Params struct {
	Countries []string
	Types     []phonenumbers.PhoneNumberType
	Detect    bool
	Lenient   bool
}

// Validator evaluates phone rules against submitted input.
type Validator struct {
	lib                Library
	logger             *slog.Logger
	countryFieldSuffix string
}

// NewValidator creates a Validator backed by libphonenumber unless
// WithLibrary says otherwise.
func NewValidator(opts ...Option) *Validator {
	o := newOptions(opts...)
	return &Validator{
		lib:                o.lib,
		logger:             o.logger.With(logger.Component("phone.validator")),
		countryFieldSuffix: o.countryFieldSuffix,
	}
}

// ValidateRule parses a "phone:..." rule descriptor and validates value with it.
func (v *Validator) ValidateRule(attribute string, value any, rule string, data map[string]any) (bool, error) {
	params, err := ParseRule(rule)
	if err != nil {
		return false, err
	}
	return v.Validate(attribute, value, params, data)
}

// Validate reports whether value is a phone number satisfying params.
//
// data is the whole submitted input record; it may supply the number's
// country through a field named in params or through "<attribute>_country".
// A non-nil error means the rule itself is misconfigured; an invalid number
// simply yields false.
func (v *Validator) Validate(attribute string, value any, params []string, data map[string]any) (bool, error) {
	p, err := v.ExtractParams(attribute, params, data)
	if err != nil {
		return false, err
	}

	raw, ok := stringValue(value)
	if !ok {
		return false, nil
	}

	attempts := slices.Clone(p.Countries)
	// Auto-detection runs first without a fixed country. Lenient validation
	// without countries gets the same attempt.
	if p.Detect || (p.Lenient && len(p.Countries) == 0) {
		attempts = append([]string{autoDetect}, attempts...)
	}

	for _, country := range attempts {
		if v.matches(attribute, raw, country, p) {
			return true, nil
		}
	}
	return false, nil
}

func (v *Validator) matches(attribute, raw, country string, p Params) bool {
	number := New(raw, WithLibrary(v.lib)).OfCountry(country)

	if len(p.Types) > 0 {
		ok, err := number.IsOfType(p.Types)
		if err != nil {
			v.reject(attribute, raw, country, err)
			return false
		}
		if !ok {
			return false
		}
	}

	if p.Lenient {
		number = number.Lenient()
	}
	num, err := number.PhoneNumber()
	if err != nil {
		v.reject(attribute, raw, country, err)
		return false
	}

	if p.Lenient && v.lib.IsPossibleNumber(num) {
		return true
	}
	if p.Detect && v.lib.IsValidNumber(num) {
		return true
	}
	return country != autoDetect && v.lib.IsValidNumberForRegion(num, country)
}

func (v *Validator) reject(attribute, raw, country string, err error) {
	v.logger.Debug("phone candidate rejected",
		logger.Attribute(attribute),
		logger.Phone(raw),
		logger.Country(country),
		logger.Error(err),
	)
}

// ExtractParams resolves rule parameters and the input record into a Params
// bundle.
//
// The country input field is the first parameter that names a key of the
// flattened record, falling back to "<attribute>_country". Its value is
// added to the candidate countries when it is a valid country code; other
// values are ignored so the field cannot inject rule flags.
func (v *Validator) ExtractParams(attribute string, params []string, data map[string]any) (Params, error) {
	params = slices.Clone(params)

	field := attribute + v.countryFieldSuffix
	flat := Flatten(data)
	for _, param := range params {
		if hasKey(flat, param) {
			field = param
			break
		}
	}

	if value, ok := Lookup(data, field); ok {
		if country, ok := stringValue(value); ok && country != "" {
			if IsValidType(field) {
				return Params{}, fmt.Errorf("%w: %q", ErrAmbiguousCountryField, field)
			}
			if IsValidCountryCode(country) {
				params = append(params, country)
			}
		}
	}

	for i, param := range params {
		params[i] = strings.ToLower(strings.TrimSpace(param))
	}

	return Params{
		Countries: ParseCountries(params...),
		Types:     ParseTypes(params),
		Detect:    slices.Contains(params, "auto"),
		Lenient:   slices.Contains(params, "lenient"),
	}, nil
}

func stringValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}
