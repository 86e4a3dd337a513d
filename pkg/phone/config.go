package phone

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/phonekit/pkg/logger"
)

// Config holds environment driven defaults for phone tooling.
type Config struct {
	DefaultCountries   []string `env:"PHONE_DEFAULT_COUNTRIES" envSeparator:","`
	DefaultFormat      string   `env:"PHONE_DEFAULT_FORMAT" envDefault:"E164"`
	CountryFieldSuffix string   `env:"PHONE_COUNTRY_FIELD_SUFFIX" envDefault:"_country"`
	Lenient            bool     `env:"PHONE_LENIENT" envDefault:"false"`
	LogLevel           string   `env:"PHONE_LOG_LEVEL" envDefault:"info"`
	LogFormat          string   `env:"PHONE_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig loads the given .env files (or the default .env, if present)
// and parses the environment into a Config.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrInvalidConfig, err)
		}
	} else {
		// The default .env file is optional.
		_ = godotenv.Load()
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that formats, countries and log settings are known.
func (c Config) Validate() error {
	if !IsValidFormat(c.DefaultFormat) {
		return fmt.Errorf("%w: unknown default format %q", ErrInvalidConfig, c.DefaultFormat)
	}
	for _, country := range c.DefaultCountries {
		if !IsValidCountryCode(strings.TrimSpace(country)) {
			return fmt.Errorf("%w: unknown default country %q", ErrInvalidConfig, country)
		}
	}
	if c.CountryFieldSuffix == "" {
		return fmt.Errorf("%w: empty country field suffix", ErrInvalidConfig)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	switch logger.Format(c.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Countries returns the normalized default countries.
func (c Config) Countries() []string {
	return ParseCountries(c.DefaultCountries...)
}

// ValidatorOptions translates the config into Validator options.
func (c Config) ValidatorOptions() []Option {
	return []Option{WithCountryFieldSuffix(c.CountryFieldSuffix)}
}

// LoggerOptions translates the config into logger options.
func (c Config) LoggerOptions() []logger.Option {
	return []logger.Option{
		logger.WithLevelName(c.LogLevel),
		logger.WithFormat(logger.Format(c.LogFormat)),
	}
}
