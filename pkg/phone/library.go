package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Library is the subset of libphonenumber the package relies on.
// It exists so tests and callers can substitute the numbering-plan backend.
type Library interface {
	Parse(number, region string) (*phonenumbers.PhoneNumber, error)
	IsPossibleNumber(number *phonenumbers.PhoneNumber) bool
	IsValidNumber(number *phonenumbers.PhoneNumber) bool
	IsValidNumberForRegion(number *phonenumbers.PhoneNumber, region string) bool
	RegionCodeForNumber(number *phonenumbers.PhoneNumber) string
	NumberType(number *phonenumbers.PhoneNumber) phonenumbers.PhoneNumberType
	Format(number *phonenumbers.PhoneNumber, format phonenumbers.PhoneNumberFormat) string
	FormatOutOfCountryCallingNumber(number *phonenumbers.PhoneNumber, region string) string
	FormatNumberForMobileDialing(number *phonenumbers.PhoneNumber, region string, withFormatting bool) string
}

// DefaultLibrary returns the libphonenumber-backed Library.
func DefaultLibrary() Library {
	return libphonenumber{}
}

type libphonenumber struct{}

func (libphonenumber) Parse(number, region string) (*phonenumbers.PhoneNumber, error) {
	num, err := phonenumbers.Parse(number, region)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNumberParse, number, err)
	}
	return num, nil
}

func (libphonenumber) IsPossibleNumber(number *phonenumbers.PhoneNumber) bool {
	return phonenumbers.IsPossibleNumber(number)
}

func (libphonenumber) IsValidNumber(number *phonenumbers.PhoneNumber) bool {
	return phonenumbers.IsValidNumber(number)
}

func (libphonenumber) IsValidNumberForRegion(number *phonenumbers.PhoneNumber, region string) bool {
	if region == "" {
		return false
	}
	return phonenumbers.IsValidNumberForRegion(number, region)
}

func (libphonenumber) RegionCodeForNumber(number *phonenumbers.PhoneNumber) string {
	return phonenumbers.GetRegionCodeForNumber(number)
}

func (libphonenumber) NumberType(number *phonenumbers.PhoneNumber) phonenumbers.PhoneNumberType {
	return phonenumbers.GetNumberType(number)
}

func (libphonenumber) Format(number *phonenumbers.PhoneNumber, format phonenumbers.PhoneNumberFormat) string {
	return phonenumbers.Format(number, format)
}

func (libphonenumber) FormatOutOfCountryCallingNumber(number *phonenumbers.PhoneNumber, region string) string {
	return phonenumbers.FormatOutOfCountryCallingNumber(number, region)
}

func (libphonenumber) FormatNumberForMobileDialing(number *phonenumbers.PhoneNumber, region string, withFormatting bool) string {
	return phonenumbers.FormatNumberForMobileDialing(number, region, withFormatting)
}
