package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/phonekit/pkg/logger"
	"github.com/dmitrymomot/phonekit/pkg/phone"
)

func testConfig() phone.Config {
	return phone.Config{
		DefaultFormat:      "E164",
		CountryFieldSuffix: phone.DefaultCountryFieldSuffix,
		LogLevel:           "info",
		LogFormat:          "text",
	}
}

func execute(t *testing.T, cfg phone.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out, cfg, logger.Discard())
	return out.String(), err
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no command", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig())
		assert.Error(t, err)
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig(), "dial", "+16502530000")
		assert.ErrorContains(t, err, "unknown command")
	})
}

func TestFormatCommand(t *testing.T) {
	t.Parallel()

	t.Run("default format", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, testConfig(), "format", "-c", "GB", "07400 123456")
		require.NoError(t, err)
		assert.Equal(t, "+447400123456\n", out)
	})

	t.Run("several numbers", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, testConfig(), "format", "-c", "US,GB", "-f", "international", "+16502530000", "07400 123456")
		require.NoError(t, err)
		assert.Equal(t, "+1 650-253-0000\n+44 7400 123456\n", out)
	})

	t.Run("config countries", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.DefaultCountries = []string{"gb"}
		out, err := execute(t, cfg, "format", "-f", "national", "07400 123456")
		require.NoError(t, err)
		assert.Equal(t, "07400 123456\n", out)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig(), "format", "-f", "morse", "+16502530000")
		assert.ErrorIs(t, err, phone.ErrInvalidFormat)
	})

	t.Run("missing country", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig(), "format", "07400 123456")
		assert.ErrorIs(t, err, phone.ErrCountryRequired)
	})

	t.Run("no number", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig(), "format", "-c", "US")
		assert.Error(t, err)
	})
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, testConfig(), "validate", "-r", "phone:AUTO,mobile", "+447400123456")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("country from data", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, testConfig(), "validate", "-d", "phone_country=GB", "07400 123456")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, testConfig(), "validate", "-r", "phone:US", "07400 123456")
		assert.ErrorIs(t, err, errInvalid)
		assert.Equal(t, "invalid\n", out)
	})

	t.Run("wrong rule", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig(), "validate", "-r", "email", "+16502530000")
		assert.ErrorIs(t, err, phone.ErrInvalidRule)
	})

	t.Run("ambiguous field", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig(), "validate", "-r", "phone:mobile", "-d", "mobile=GB", "07400 123456")
		assert.ErrorIs(t, err, phone.ErrAmbiguousCountryField)
	})

	t.Run("bad data flag", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig(), "validate", "-d", "country", "+16502530000")
		assert.Error(t, err)
	})
}

func TestInfoCommand(t *testing.T) {
	t.Parallel()

	want := numberInfo{
		Raw:           "07400 123456",
		Country:       "GB",
		CountryName:   "United Kingdom",
		Type:          "mobile",
		E164:          "+447400123456",
		International: "+44 7400 123456",
		National:      "07400 123456",
		RFC3966:       "tel:+44-7400-123456",
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, testConfig(), "info", "-c", "GB", "07400 123456")
		require.NoError(t, err)

		var got numberInfo
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, testConfig(), "info", "-c", "GB", "-o", "yaml", "07400 123456")
		require.NoError(t, err)

		var got numberInfo
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})

	t.Run("unknown output", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig(), "info", "-o", "xml", "+16502530000")
		assert.ErrorContains(t, err, "unknown output")
	})

	t.Run("unresolvable", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, testConfig(), "info", "07400 123456")
		assert.ErrorIs(t, err, phone.ErrCountryRequired)
	})
}
