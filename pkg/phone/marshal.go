package phone

import (
	"encoding/json"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// MarshalText encodes the number in E164 format.
func (n *Number) MarshalText() ([]byte, error) {
	s, err := n.FormatE164()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText decodes a number and detects its country from the number
// itself, so text is expected to be in an international format. Numbers
// that belong to no region fail with ErrCountryRequired.
func (n *Number) UnmarshalText(text []byte) error {
	return n.restore(string(text))
}

// MarshalJSON encodes the number as an E164 JSON string.
func (n *Number) MarshalJSON() ([]byte, error) {
	s, err := n.FormatE164()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON decodes a JSON string the same way as UnmarshalText.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrNumberParse, err)
	}
	return n.restore(s)
}

// MarshalYAML encodes the number as an E164 scalar.
func (n *Number) MarshalYAML() (any, error) {
	return n.FormatE164()
}

// UnmarshalYAML decodes a YAML scalar the same way as UnmarshalText.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: %w", ErrNumberParse, err)
	}
	return n.restore(s)
}

func (n *Number) restore(raw string) error {
	if n.lib == nil {
		n.lib = DefaultLibrary()
	}
	num, err := n.lib.Parse(raw, autoDetect)
	if err != nil {
		return err
	}
	region := n.lib.RegionCodeForNumber(num)
	if region == "" {
		return fmt.Errorf("%w: %q", ErrCountryRequired, raw)
	}

	n.raw = raw
	n.countries = nil
	n.lenient = false
	n.once = sync.Once{}
	n.once.Do(func() {
		n.country = region
		n.parsed = num
		n.err = nil
	})
	return nil
}
