package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/tailscale/hujson"
)

// jsonFile is the top-level structure of a huJSON session file.
type jsonFile struct {
	Options  map[string]any `json:"options"`
	Settings *Settings      `json:"settings"`
}

// HuJSONLoader reads session defaults from JSON files, accepting the huJSON
// superset (comments and trailing commas).
type HuJSONLoader struct{}

func (l *HuJSONLoader) Extensions() []string { return []string{extJSON, extHuJSON} }

func (l *HuJSONLoader) Load(ctx context.Context, path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardizing %s: %w", path, err)
	}

	var parsed jsonFile
	if err := json.Unmarshal(standardized, &parsed); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	defaults := &Defaults{}
	if parsed.Settings != nil {
		defaults.Settings = *parsed.Settings
	}

	// JSON objects carry no order, so keys apply lexicographically.
	keys := make([]string, 0, len(parsed.Options))
	for key := range parsed.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		values, err := valuesFromJSON(parsed.Options[key])
		if err != nil {
			return nil, fmt.Errorf("option '%s' in %s: %w", key, path, err)
		}
		defaults.Options = append(defaults.Options, Selection{Key: key, Values: values})
	}
	return defaults, nil
}

// valuesFromJSON coerces an option value: either one scalar or a list of
// scalars.
func valuesFromJSON(v any) ([]string, error) {
	if list, ok := v.([]any); ok {
		values := make([]string, 0, len(list))
		for _, el := range list {
			s, err := jsonScalarToString(el)
			if err != nil {
				return nil, err
			}
			values = append(values, s)
		}
		return values, nil
	}
	s, err := jsonScalarToString(v)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func jsonScalarToString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}
