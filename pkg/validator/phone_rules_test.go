package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonekit/pkg/phone"
	"github.com/dmitrymomot/phonekit/pkg/validator"
)

func TestValidPhone(t *testing.T) {
	t.Run("valid numbers", func(t *testing.T) {
		cases := []struct {
			value string
			rule  string
			data  map[string]any
		}{
			{"(650) 253-0000", "phone:US", nil},
			{"07400 123456", "phone:US,GB", nil},
			{"+447400123456", "phone:AUTO,mobile", nil},
			{"07400 123456", "phone", map[string]any{"phone_country": "GB"}},
			{"555 555 5555", "phone:US,LENIENT", nil},
		}

		for _, c := range cases {
			err := validator.Apply(validator.ValidPhone("phone", c.value, c.rule, c.data))
			assert.NoError(t, err, "%s should pass %s", c.value, c.rule)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		cases := []struct {
			value string
			rule  string
		}{
			{"07400 123456", "phone:US"},
			{"0121 234 5678", "phone:GB,mobile"},
			{"555 555 5555", "phone:US"},
			{"", "phone:US"},
		}

		for _, c := range cases {
			err := validator.Apply(validator.ValidPhone("phone", c.value, c.rule, nil))
			require.Error(t, err, "%s should fail %s", c.value, c.rule)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "validation.phone", verrs[0].TranslationKey)
			assert.Equal(t, "phone", verrs[0].Field)
		}
	})

	t.Run("translation values list countries", func(t *testing.T) {
		rule := validator.ValidPhone("phone", "x", "phone:us,GB", nil)
		assert.Equal(t, "US, GB", rule.Error.TranslationValues["countries"])
	})

	t.Run("panics on misconfigured rules", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.ValidPhone("phone", "07400 123456", "email", nil)
		})
		assert.Panics(t, func() {
			validator.ValidPhone("phone", "07400 123456", "phone:mobile", map[string]any{"mobile": "GB"})
		})
	})
}

func TestValidPhoneWith(t *testing.T) {
	v := phone.NewValidator(phone.WithCountryFieldSuffix("_region"))
	data := map[string]any{"phone_region": "GB"}

	assert.NoError(t, validator.Apply(validator.ValidPhoneWith(v, "phone", "07400 123456", "phone", data)))
	assert.Error(t, validator.Apply(validator.ValidPhone("phone", "07400 123456", "phone", data)))
}

func TestPhoneOfCountry(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.PhoneOfCountry("phone", "07400 123456", "US", "GB")))
	assert.NoError(t, validator.Apply(validator.PhoneOfCountry("phone", "+447400123456", "gb")))

	err := validator.Apply(validator.PhoneOfCountry("phone", "+447400123456", "US"))
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.phone_country", verrs[0].TranslationKey)
	assert.Equal(t, "US", verrs[0].TranslationValues["countries"])
}

func TestPhoneOfType(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.PhoneOfType("phone", "07400 123456", []string{"mobile"}, "GB")))
	assert.NoError(t, validator.Apply(validator.PhoneOfType("phone", "+16502530000", []string{"mobile"})))

	err := validator.Apply(validator.PhoneOfType("phone", "0121 234 5678", []string{"mobile", "voip"}, "GB"))
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, "validation.phone_type", verrs[0].TranslationKey)
	assert.Equal(t, "mobile, voip", verrs[0].TranslationValues["types"])

	assert.Error(t, validator.Apply(validator.PhoneOfType("phone", "07400 123456", []string{"mobile"})))
}

func TestE164Phone(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.E164Phone("phone", "+447400123456")))

	for _, value := range []string{"+44 7400 123456", "07400 123456", "+4474001234560000", ""} {
		err := validator.Apply(validator.E164Phone("phone", value))
		require.Error(t, err, value)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	}
}
