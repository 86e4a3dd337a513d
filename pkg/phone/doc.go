// Package phone parses, classifies, formats and validates phone numbers on top
// of github.com/nyaruka/phonenumbers (the Go port of Google's libphonenumber).
//
// The package is a thin orchestration layer: all numbering-plan knowledge
// (country calling codes, national significant numbers, possible versus valid
// lengths) lives in the delegated library. What this package adds is the
// glue a web application needs around it:
//
//   - Resolvers that turn loose input ("us", "mobile", 1, "E164") into the
//     library's enumerated constants, silently dropping unknown entries.
//   - Number, a value object that lazily resolves which of the candidate
//     countries a raw number belongs to and exposes formatting helpers.
//   - Rule, a fluent builder producing a "phone:US,mobile,AUTO" descriptor.
//   - Validator, which evaluates such a descriptor against an attribute of a
//     submitted input record, including a sibling "<attribute>_country" field.
//
// # Country resolution
//
// Number.Country tries the candidate countries in order and picks the first
// one for which the number is valid (or merely possible, in lenient mode).
// When none match and the raw number starts with "+", the library is asked to
// detect the country itself. The order matters: a number that is valid in
// several regions resolves to the first candidate, not to the region the
// library would guess.
//
// # Usage
//
//	n := phone.Make("07400 123456", "US", "GB")
//	country, err := n.Country() // "GB"
//	e164, err := n.FormatE164() // "+447400123456"
//
//	v := phone.NewValidator(phone.WithLogger(log))
//	ok, err := v.ValidateRule("phone", "+447400123456", "phone:AUTO,mobile", nil)
//
// # Error Handling
//
// Resolution and formatting failures are returned as errors that wrap one of
// the sentinels in errors.go, so callers can match them with errors.Is. The
// Validator swallows per-candidate parse failures (they only mean "this
// candidate does not apply") and returns configuration problems such as
// ErrAmbiguousCountryField as errors.
//
// Number values cache their resolved country and parsed instance. Derived
// values (OfCountry, Lenient) are fresh copies, so a Number is safe to share
// between goroutines once constructed.
package phone
