package logger

import (
	"log/slog"
	"strconv"
	"strings"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil errors yield an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Attribute records the validated input attribute under the key "attribute".
func Attribute(name string) slog.Attr {
	return slog.String("attribute", name)
}

// Phone records a phone number under the key "phone", masking all digits
// but the last four.
func Phone(number string) slog.Attr {
	return slog.String("phone", MaskPhone(number))
}

// Country records a country code under the key "country". The empty code
// stands for library auto-detection and is logged as "auto".
func Country(code string) slog.Attr {
	if code == "" {
		code = "auto"
	}
	return slog.String("country", code)
}

// Countries records candidate countries under the key "countries".
func Countries(codes []string) slog.Attr {
	return slog.String("countries", strings.Join(codes, ","))
}

// Rule records a validation rule descriptor under the key "rule".
func Rule(descriptor string) slog.Attr {
	return slog.String("rule", descriptor)
}

// MaskPhone keeps the last 4 digits of a number and masks the others.
func MaskPhone(number string) string {
	digits := make([]byte, 0, len(number))
	for i := 0; i < len(number); i++ {
		if number[i] >= '0' && number[i] <= '9' {
			digits = append(digits, number[i])
		}
	}
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + string(digits[len(digits)-4:])
}
