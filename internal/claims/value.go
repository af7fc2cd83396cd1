// Package claims holds the closed set of value shapes a token payload may carry.
package claims

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
)

// ErrUnsupportedValue is returned for shapes outside the Value variants.
var ErrUnsupportedValue = errors.New("unsupported claim value")

// Value is one of String, Integer, Float, Boolean, Sequence or Mapping.
type Value interface {
	// Native returns the plain Go representation used for JSON encoding.
	Native() any
	isValue()
}

type (
	String   string
	Integer  int64
	Float    float64
	Boolean  bool
	Sequence []Value
	Mapping  map[string]Value
)

func (String) isValue()   {}
func (Integer) isValue()  {}
func (Float) isValue()    {}
func (Boolean) isValue()  {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

func (v String) Native() any  { return string(v) }
func (v Integer) Native() any { return int64(v) }
func (v Float) Native() any   { return float64(v) }
func (v Boolean) Native() any { return bool(v) }

func (v Sequence) Native() any {
	out := make([]any, len(v))
	for i, item := range v {
		out[i] = item.Native()
	}
	return out
}

func (v Mapping) Native() any {
	return v.NativeMap()
}

// NativeMap is Native without the interface boxing.
func (v Mapping) NativeMap() map[string]any {
	out := make(map[string]any, len(v))
	for k, item := range v {
		out[k] = item.Native()
	}
	return out
}

// Keys returns the mapping keys in sorted order.
func (v Mapping) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromNative converts decoder output into a Value. path names the value in
// error messages, e.g. "payload.tags".
func FromNative(path string, in any) (Value, error) {
	switch v := in.(type) {
	case Value:
		return v, nil
	case string:
		return String(v), nil
	case bool:
		return Boolean(v), nil
	case int:
		return Integer(v), nil
	case int8:
		return Integer(v), nil
	case int16:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case int64:
		return Integer(v), nil
	case uint:
		return fromUnsigned(path, uint64(v))
	case uint8:
		return Integer(v), nil
	case uint16:
		return Integer(v), nil
	case uint32:
		return Integer(v), nil
	case uint64:
		return fromUnsigned(path, v)
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case []any:
		seq := make(Sequence, len(v))
		for i, item := range v {
			conv, err := FromNative(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			seq[i] = conv
		}
		return seq, nil
	case map[string]any:
		return MappingFromNative(path, v)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, item := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w at %s: key %v of type %T is not a string", ErrUnsupportedValue, path, k, k)
			}
			m[key] = item
		}
		return MappingFromNative(path, m)
	case nil:
		return nil, fmt.Errorf("%w at %s: null", ErrUnsupportedValue, path)
	default:
		return nil, fmt.Errorf("%w at %s: %s", ErrUnsupportedValue, path, reflect.TypeOf(in))
	}
}

// MappingFromNative converts every entry of in, prefixing error paths with path.
func MappingFromNative(path string, in map[string]any) (Mapping, error) {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Mapping, len(in))
	for _, k := range keys {
		conv, err := FromNative(join(path, k), in[k])
		if err != nil {
			return nil, err
		}
		out[k] = conv
	}
	return out, nil
}

func fromUnsigned(path string, v uint64) (Value, error) {
	if v > math.MaxInt64 {
		return nil, fmt.Errorf("%w at %s: %d overflows int64", ErrUnsupportedValue, path, v)
	}
	return Integer(v), nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
