package phone

import (
	"strings"

	"github.com/knadh/koanf/maps"
)

// Flatten flattens nested maps into a single level map with dot-separated
// keys: {"user": {"country": "US"}} becomes {"user.country": "US"}.
// Empty nested maps are kept as values.
func Flatten(data map[string]any) map[string]any {
	flat, _ := maps.Flatten(normalize(data), nil, ".")
	return flat
}

// Lookup returns the value at a dot-separated path. A literal key containing
// dots takes precedence over the nested path.
func Lookup(data map[string]any, path string) (any, bool) {
	if data == nil {
		return nil, false
	}
	if v, ok := data[path]; ok {
		return v, true
	}
	v := maps.Search(normalize(data), strings.Split(path, "."))
	return v, v != nil
}

// hasKey reports whether key is a key of the flattened data record.
func hasKey(flat map[string]any, key string) bool {
	_, ok := flat[key]
	return ok
}

// normalize converts nested map[string]string values to map[string]any so
// they are walked like any other nested record.
func normalize(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case map[string]any:
			out[key] = normalize(v)
		case map[string]string:
			nested := make(map[string]any, len(v))
			for k, s := range v {
				nested[k] = s
			}
			out[key] = nested
		default:
			out[key] = value
		}
	}
	return out
}
