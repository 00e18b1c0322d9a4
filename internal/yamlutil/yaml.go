// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Callers receive plain Go values and never see the YAML library's types.
package yamlutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData       = errors.New("yamlutil: nil or empty data")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping    = errors.New("yamlutil: document is not a mapping")
)

// Field is one key/value pair of a mapping, in document order.
//
// Value holds nil, a string, a bool, a number, []any for sequences or
// []Field for nested mappings. Timestamps are returned as RFC 3339 strings.
type Field struct {
	Key   string
	Value any
}

func validateInput(data []byte) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

// DecodeMapping parses a YAML document whose root is a mapping and returns
// its fields in document order. A null document yields no fields.
func DecodeMapping(data []byte) ([]Field, error) {
	if err := validateInput(data); err != nil {
		return nil, err
	}

	var root any
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}

	switch v := root.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		return toFields(v), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, root)
	}
}

func toFields(m yaml.MapSlice) []Field {
	fields := make([]Field, 0, len(m))
	for _, item := range m {
		fields = append(fields, Field{
			Key:   fmt.Sprint(item.Key),
			Value: toValue(item.Value),
		})
	}
	return fields
}

func toValue(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		return toFields(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toValue(item)
		}
		return out
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return val
	}
}
