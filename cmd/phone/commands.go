package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/phonekit/pkg/logger"
	"github.com/dmitrymomot/phonekit/pkg/phone"
)

// listFlag collects repeated or comma separated flag values.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l = append(*l, v)
		}
	}
	return nil
}

func runFormat(args []string, stdout io.Writer, cfg phone.Config) error {
	fs := newFlagSet("format")
	var countries listFlag
	fs.Var(&countries, "c", "candidate countries")
	format := fs.String("f", cfg.DefaultFormat, "output format: E164, international, national, RFC3966")
	lenient := fs.Bool("lenient", cfg.Lenient, "accept possible numbers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("format: no number given")
	}
	if len(countries) == 0 {
		countries = cfg.Countries()
	}

	for _, raw := range fs.Args() {
		n := phone.Make(raw, countries...)
		if *lenient {
			n = n.Lenient()
		}
		formatted, err := n.Format(*format)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, formatted)
	}
	return nil
}

// dataFlag collects key=value pairs into an input record.
type dataFlag map[string]any

func (d dataFlag) String() string {
	return fmt.Sprint(map[string]any(d))
}

func (d dataFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	d[key] = val
	return nil
}

func runValidate(args []string, stdout io.Writer, cfg phone.Config, log *slog.Logger) error {
	fs := newFlagSet("validate")
	rule := fs.String("r", phone.RuleName, "rule descriptor, e.g. phone:US,mobile")
	attribute := fs.String("a", "phone", "attribute name of the number")
	data := dataFlag{}
	fs.Var(data, "d", "input record field as key=value")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("validate: expected exactly one number")
	}

	params, err := phone.ParseRule(*rule)
	if err != nil {
		return err
	}
	params = append(params, cfg.Countries()...)
	if cfg.Lenient {
		params = append(params, "LENIENT")
	}

	v := phone.NewValidator(append(cfg.ValidatorOptions(), phone.WithLogger(log))...)
	raw := fs.Arg(0)
	ok, err := v.Validate(*attribute, raw, params, map[string]any(data))
	if err != nil {
		return err
	}

	log.Debug("phone validated",
		logger.Phone(raw),
		logger.Rule(*rule),
		slog.Bool("valid", ok),
	)
	if !ok {
		fmt.Fprintln(stdout, "invalid")
		return errInvalid
	}
	fmt.Fprintln(stdout, "valid")
	return nil
}

type numberInfo struct {
	Raw           string `json:"raw" yaml:"raw"`
	Country       string `json:"country" yaml:"country"`
	CountryName   string `json:"country_name" yaml:"country_name"`
	Type          string `json:"type" yaml:"type"`
	E164          string `json:"e164" yaml:"e164"`
	International string `json:"international" yaml:"international"`
	National      string `json:"national" yaml:"national"`
	RFC3966       string `json:"rfc3966" yaml:"rfc3966"`
}

func runInfo(args []string, stdout io.Writer, cfg phone.Config) error {
	fs := newFlagSet("info")
	var countries listFlag
	fs.Var(&countries, "c", "candidate countries")
	output := fs.String("o", "json", "output encoding: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("info: expected exactly one number")
	}
	if len(countries) == 0 {
		countries = cfg.Countries()
	}

	info, err := describe(phone.Make(fs.Arg(0), countries...))
	if err != nil {
		return err
	}

	switch *output {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("info: unknown output %q", *output)
}

func describe(n *phone.Number) (numberInfo, error) {
	info := numberInfo{Raw: n.Raw()}

	var err error
	if info.Country, err = n.Country(); err != nil {
		return numberInfo{}, err
	}
	info.CountryName = phone.CountryName(info.Country)
	if info.Type, err = n.Type(); err != nil {
		return numberInfo{}, err
	}
	if info.E164, err = n.FormatE164(); err != nil {
		return numberInfo{}, err
	}
	if info.International, err = n.FormatInternational(); err != nil {
		return numberInfo{}, err
	}
	if info.National, err = n.FormatNational(); err != nil {
		return numberInfo{}, err
	}
	if info.RFC3966, err = n.FormatRFC3966(); err != nil {
		return numberInfo{}, err
	}
	return info, nil
}
