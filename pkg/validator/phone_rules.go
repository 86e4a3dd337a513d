package validator

import (
	"strings"
	"sync"

	"github.com/dmitrymomot/phonekit/pkg/phone"
)

var defaultPhoneValidator = sync.OnceValue(func() *phone.Validator {
	return phone.NewValidator()
})

// ValidPhone validates value against a "phone[:...]" rule descriptor.
// data is the submitted input record used to look up country fields.
// Panics if the descriptor is not a phone rule or is ambiguous for data.
func ValidPhone(field string, value any, rule string, data map[string]any) Rule {
	return ValidPhoneWith(defaultPhoneValidator(), field, value, rule, data)
}

// ValidPhoneWith is ValidPhone using a configured phone.Validator.
func ValidPhoneWith(v *phone.Validator, field string, value any, rule string, data map[string]any) Rule {
	params, err := phone.ParseRule(rule)
	if err != nil {
		panic(err)
	}
	p, err := v.ExtractParams(field, params, data)
	if err != nil {
		panic(err)
	}

	return Rule{
		Check: func() bool {
			ok, err := v.Validate(field, value, params, data)
			if err != nil {
				panic(err)
			}
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field":     field,
				"countries": strings.Join(p.Countries, ", "),
			},
		},
	}
}

// PhoneOfCountry validates that value resolves to one of countries.
func PhoneOfCountry(field, value string, countries ...string) Rule {
	return Rule{
		Check: func() bool {
			ok, err := phone.Make(value, countries...).IsOfCountry(countries...)
			return err == nil && ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a phone number from an allowed country",
			TranslationKey: "validation.phone_country",
			TranslationValues: map[string]any{
				"field":     field,
				"countries": strings.Join(phone.ParseCountries(countries...), ", "),
			},
		},
	}
}

// PhoneOfType validates that value, resolved against countries, is of one
// of types ("mobile", "fixed_line", ...).
func PhoneOfType(field, value string, types []string, countries ...string) Rule {
	return Rule{
		Check: func() bool {
			ok, err := phone.Make(value, countries...).IsOfType(types)
			return err == nil && ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a phone number of an allowed type",
			TranslationKey: "validation.phone_type",
			TranslationValues: map[string]any{
				"field": field,
				"types": strings.Join(types, ", "),
			},
		},
	}
}

// E164Phone validates that value is a valid number already in E164 form.
func E164Phone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			formatted, err := phone.Make(value).FormatE164()
			return err == nil && formatted == value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a phone number in E164 format",
			TranslationKey: "validation.phone_e164",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
