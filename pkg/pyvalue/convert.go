package pyvalue

import (
	"fmt"
	"math"
	"sort"
)

// FromGo converts the native Go values produced by YAML/JSON decoding into
// the closed shape model. This is where unsupported Go types surface as
// errors, keeping the renderers total over the values that reach them.
//
// Maps convert with their entries sorted by key text so repeated conversions
// of the same input yield identical Dicts.
func FromGo(input any) (Value, error) {
	switch v := input.(type) {
	case nil:
		return None(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Int(int64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, fmt.Errorf("pyvalue: uint64 %d overflows int64", v)
		}
		return Int(int64(v)), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return Str(v), nil
	case []any:
		return sliceFromGo(v)
	case []string:
		elems := make([]Value, len(v))
		for i, s := range v {
			elems[i] = Str(s)
		}
		return List(elems...), nil
	case map[string]any:
		return stringMapFromGo(v)
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, value := range v {
			ks, ok := key.(string)
			if !ok {
				return dynamicMapFromGo(v)
			}
			converted[ks] = value
		}
		return stringMapFromGo(converted)
	default:
		return Value{}, fmt.Errorf("pyvalue: unsupported Go type %T", input)
	}
}

// MustFromGo panics on conversion failure. Useful for fixtures and tests.
func MustFromGo(input any) Value {
	value, err := FromGo(input)
	if err != nil {
		panic(err)
	}
	return value
}

func sliceFromGo(in []any) (Value, error) {
	elems := make([]Value, len(in))
	for i, item := range in {
		converted, err := FromGo(item)
		if err != nil {
			return Value{}, fmt.Errorf("pyvalue: element %d: %w", i, err)
		}
		elems[i] = converted
	}
	return List(elems...), nil
}

func stringMapFromGo(in map[string]any) (Value, error) {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(in))
	for _, key := range keys {
		converted, err := FromGo(in[key])
		if err != nil {
			return Value{}, fmt.Errorf("pyvalue: key %q: %w", key, err)
		}
		entries = append(entries, Entry{Key: Str(key), Value: converted})
	}
	return Dict(entries...), nil
}

// dynamicMapFromGo handles YAML mappings whose keys are not all strings.
// Keys convert through FromGo like values; entries sort by the key's textual
// form to stay deterministic.
func dynamicMapFromGo(in map[any]any) (Value, error) {
	type pair struct {
		sortKey string
		entry   Entry
	}
	pairs := make([]pair, 0, len(in))
	for key, value := range in {
		convertedKey, err := FromGo(key)
		if err != nil {
			return Value{}, fmt.Errorf("pyvalue: map key %v: %w", key, err)
		}
		convertedValue, err := FromGo(value)
		if err != nil {
			return Value{}, fmt.Errorf("pyvalue: map key %v: %w", key, err)
		}
		pairs = append(pairs, pair{
			sortKey: fmt.Sprintf("%v", key),
			entry:   Entry{Key: convertedKey, Value: convertedValue},
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].sortKey < pairs[j].sortKey })

	entries := make([]Entry, len(pairs))
	for i, p := range pairs {
		entries[i] = p.entry
	}
	return Dict(entries...), nil
}
