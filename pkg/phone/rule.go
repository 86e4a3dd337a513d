package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// RuleName is the name of the phone validation rule.
const RuleName = "phone"

const (
	flagAuto    = "AUTO"
	flagLenient = "LENIENT"
)

// Rule builds a phone validation rule descriptor such as
// "phone:US,GB,mobile,AUTO".
type Rule struct {
	countries    []string
	countryField string
	types        []any
	detect       bool
	lenient      bool
}

// NewRule returns an empty phone rule.
func NewRule() *Rule {
	return &Rule{}
}

// Country adds allowed countries.
func (r *Rule) Country(countries ...string) *Rule {
	r.countries = append(r.countries, countries...)
	return r
}

// CountryField sets the input field holding the number's country.
func (r *Rule) CountryField(name string) *Rule {
	r.countryField = name
	return r
}

// Type adds allowed phone types, given as names or library constants.
func (r *Rule) Type(types ...any) *Rule {
	r.types = append(r.types, types...)
	return r
}

// Mobile allows mobile numbers.
func (r *Rule) Mobile() *Rule {
	return r.Type(phonenumbers.MOBILE)
}

// FixedLine allows fixed line numbers.
func (r *Rule) FixedLine() *Rule {
	return r.Type(phonenumbers.FIXED_LINE)
}

// Detect enables country auto-detection for international numbers.
func (r *Rule) Detect() *Rule {
	r.detect = true
	return r
}

// Lenient accepts possible numbers, e.g. landline numbers without area code.
func (r *Rule) Lenient() *Rule {
	r.lenient = true
	return r
}

// Params returns the rule parameters in descriptor order.
func (r *Rule) Params() []string {
	params := make([]string, 0, len(r.countries)+len(r.types)+3)
	params = append(params, r.countries...)
	for _, t := range ParseTypes(r.types...) {
		params = append(params, TypeName(t))
	}
	if r.countryField != "" {
		params = append(params, r.countryField)
	}
	if r.detect {
		params = append(params, flagAuto)
	}
	if r.lenient {
		params = append(params, flagLenient)
	}
	return params
}

// String renders the rule descriptor.
func (r *Rule) String() string {
	params := r.Params()
	if len(params) == 0 {
		return RuleName
	}
	return RuleName + ":" + strings.Join(params, ",")
}

// ParseRule splits a "phone[:p1,p2,...]" descriptor into its parameters.
func ParseRule(rule string) ([]string, error) {
	name, rest, _ := strings.Cut(strings.TrimSpace(rule), ":")
	if !strings.EqualFold(strings.TrimSpace(name), RuleName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRule, rule)
	}

	var params []string
	for _, p := range strings.Split(rest, ",") {
		if p = strings.TrimSpace(p); p != "" {
			params = append(params, p)
		}
	}
	return params, nil
}
