package arr

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MarshalJSON encodes the collection as a JSON array.
func (a *Arr[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.All())
}

// UnmarshalJSON accepts a JSON array, null, or an object. Object keys are
// discarded and the values kept in document order, which normalises
// position-keyed payloads such as {"0":"a","2":"b"} into ["a","b"].
func (a *Arr[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	items := []T{}
	switch tok {
	case nil:
	case json.Delim('['):
		for dec.More() {
			var item T
			if err := dec.Decode(&item); err != nil {
				return fmt.Errorf("arr: decode element %d: %w", len(items), err)
			}
			items = append(items, item)
		}
	case json.Delim('{'):
		for dec.More() {
			key, err := dec.Token()
			if err != nil {
				return err
			}
			var item T
			if err := dec.Decode(&item); err != nil {
				return fmt.Errorf("arr: decode element %v: %w", key, err)
			}
			items = append(items, item)
		}
	default:
		return fmt.Errorf("%w: cannot decode %v into a collection", ErrTypeMismatch, tok)
	}
	a.items = items
	return nil
}

// MarshalYAML encodes the collection as a YAML sequence.
func (a *Arr[T]) MarshalYAML() (any, error) {
	return a.All(), nil
}

// UnmarshalYAML accepts a sequence, null, or a mapping whose values are kept
// in document order, mirroring UnmarshalJSON.
func (a *Arr[T]) UnmarshalYAML(data []byte) error {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return err
	}
	var values []any
	switch typed := raw.(type) {
	case nil:
	case []any:
		values = typed
	case yaml.MapSlice:
		values = make([]any, 0, len(typed))
		for _, entry := range typed {
			values = append(values, entry.Value)
		}
	default:
		return fmt.Errorf("%w: cannot decode %T into a collection", ErrTypeMismatch, raw)
	}
	items := make([]T, 0, len(values))
	for i, value := range values {
		item, err := convertYAML[T](value)
		if err != nil {
			return fmt.Errorf("arr: decode element %d: %w", i, err)
		}
		items = append(items, item)
	}
	a.items = items
	return nil
}

func convertYAML[T any](value any) (T, error) {
	var out T
	if _, ordered := value.(yaml.MapSlice); !ordered {
		if typed, ok := value.(T); ok {
			return typed, nil
		}
	}
	encoded, err := yaml.Marshal(value)
	if err != nil {
		return out, err
	}
	err = yaml.Unmarshal(encoded, &out)
	return out, err
}
