// Package parameters parses configuration strings of the form "key1=value1,key2,key3=value3"
// into Params, and converts individual values to the type of their defaults.
package parameters

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Params maps configuration keys to their unparsed values. A key given without a value
// maps to "".
type Params map[string]string

// NewFromConfigString creates Params from a configuration string. Empty entries are
// skipped, and only the first "=" splits key and value.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}

// Value types supported by GetParamOr and PopParamOr.
type Value interface {
	bool | int | float64 | string
}

// PopParamOr is like GetParamOr, but it also deletes the key from params, so that
// CheckAllConsumed can report unknown keys.
func PopParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr parses the value of key to the type of defaultValue, or returns defaultValue
// if key is not set.
//
// For bool, a key without a value is interpreted as true.
func GetParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var parsed any
	switch any(defaultValue).(type) {
	case string:
		parsed = value
	case int:
		if value == "" {
			return defaultValue, nil
		}
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
		}
		parsed = i
	case float64:
		if value == "" {
			return defaultValue, nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
		}
		parsed = f
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1":
			parsed = true
		case "false", "0":
			parsed = false
		default:
			return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
		}
	}
	return parsed.(T), nil
}

// CheckAllConsumed returns an error listing the keys still in params, typically called
// after popping all known keys.
func CheckAllConsumed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return errors.Errorf("unknown configuration keys: %s", strings.Join(keys, ", "))
}
