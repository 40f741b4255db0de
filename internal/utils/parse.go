package utils

import (
	"os"

	"github.com/BurntSushi/toml"
)

// ParseTOMLFile parses a TOML file into a generic map so that each value can
// be type checked on its own.
func ParseTOMLFile(configPath string) (map[string]any, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	return ParseTOML(string(data))
}

// ParseTOML parses TOML text into a generic map.
func ParseTOML(data string) (map[string]any, error) {
	values := make(map[string]any)
	if _, err := toml.Decode(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// ExtractSection extracts a specific section from parsed TOML data
func ExtractSection(data map[string]any, sectionName string) (map[string]any, bool) {
	section, ok := data[sectionName].(map[string]any)
	return section, ok
}

// ExtractInt64 safely extracts an int64 value from a map
func ExtractInt64(data map[string]any, key string) (int, bool) {
	if val, ok := data[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

// ExtractFloat extracts a number, accepting both TOML integers and floats.
func ExtractFloat(data map[string]any, key string) (float64, bool) {
	switch val := data[key].(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	}
	return 0, false
}

// ExtractString safely extracts a string value from a map
func ExtractString(data map[string]any, key string) (string, bool) {
	if val, ok := data[key].(string); ok {
		return val, true
	}
	return "", false
}

// ExtractStringSlice extracts an array whose elements are all strings.
func ExtractStringSlice(data map[string]any, key string) ([]string, bool) {
	raw, ok := data[key].([]any)
	if !ok {
		return nil, false
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		values = append(values, s)
	}
	return values, true
}

// ExtractStringMap extracts a table whose values are all strings.
func ExtractStringMap(data map[string]any, key string) (map[string]string, bool) {
	section, ok := ExtractSection(data, key)
	if !ok {
		return nil, false
	}
	values := make(map[string]string, len(section))
	for k, v := range section {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		values[k] = s
	}
	return values, true
}
