package phone

import "log/slog"

// DefaultCountryFieldSuffix is appended to the validated attribute name to
// guess the input field holding the number's country.
const DefaultCountryFieldSuffix = "_country"

// Option configures a Number or a Validator.
type Option func(*options)

type options struct {
	lib                Library
	logger             *slog.Logger
	countryFieldSuffix string
}

func newOptions(opts ...Option) *options {
	o := &options{
		lib:                DefaultLibrary(),
		logger:             slog.New(slog.DiscardHandler),
		countryFieldSuffix: DefaultCountryFieldSuffix,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLibrary replaces the libphonenumber backend. Nil is ignored.
func WithLibrary(lib Library) Option {
	return func(o *options) {
		if lib != nil {
			o.lib = lib
		}
	}
}

// WithLogger sets the logger used for diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCountryFieldSuffix changes the suffix used to guess the country input
// field ("<attribute><suffix>"). Empty suffixes are ignored.
func WithCountryFieldSuffix(suffix string) Option {
	return func(o *options) {
		if suffix != "" {
			o.countryFieldSuffix = suffix
		}
	}
}
