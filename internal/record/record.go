// Package record reads loosely typed structured records, the decoded form of
// JSON or YAML documents, into Go values.
//
// Numeric fields are coerced leniently: a field declared as a number may arrive
// as a float, an integer, a json.Number or a numeric string, and is converted
// to the requested kind. Key presence is strict: a required key that is absent
// yields an error wrapping ErrMissingKey; it is never silently defaulted.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrMissingKey marks a required key that is absent from a record.
	ErrMissingKey = errors.New("missing required key")
	// ErrInvalidValue marks a value that cannot be coerced to the expected kind.
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError reports a problem with one field, identified by its dotted path
// (for example "scenes[2].visual.type").
type FieldError struct {
	Path   string
	Err    error
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Path, e.Err, e.Detail)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Fields is a read-only view over one record positioned at a path.
type Fields struct {
	path   string
	values map[string]any
}

// Wrap views values as the root record.
func Wrap(values map[string]any) Fields {
	return Fields{values: values}
}

// Path returns the dotted path of key below f.
func (f Fields) Path(key string) string {
	if f.path == "" {
		return key
	}
	return f.path + "." + key
}

// Keys returns the record keys in sorted order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is present with a non-null value.
func (f Fields) Has(key string) bool {
	v, ok := f.values[key]
	return ok && v != nil
}

func (f Fields) lookup(key string) (any, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, &FieldError{Path: f.Path(key), Err: ErrMissingKey}
	}
	return v, nil
}

func (f Fields) invalid(key string, format string, args ...any) error {
	return &FieldError{Path: f.Path(key), Err: ErrInvalidValue, Detail: fmt.Sprintf(format, args...)}
}

// String returns a required string field.
func (f Fields) String(key string) (string, error) {
	v, err := f.lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", f.invalid(key, "expected string, got %T", v)
	}
	return s, nil
}

// OptionalString returns a string field that may be absent or null.
func (f Fields) OptionalString(key string) (string, bool, error) {
	if !f.Has(key) {
		return "", false, nil
	}
	s, err := f.String(key)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// Float returns a required floating point field.
func (f Fields) Float(key string) (float64, error) {
	v, err := f.lookup(key)
	if err != nil {
		return 0, err
	}
	n, err := ToFloat(v)
	if err != nil {
		return 0, f.invalid(key, "%v", err)
	}
	return n, nil
}

// OptionalFloat returns a floating point field that may be absent or null.
func (f Fields) OptionalFloat(key string) (float64, bool, error) {
	if !f.Has(key) {
		return 0, false, nil
	}
	n, err := f.Float(key)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// Int returns a required integer field.
func (f Fields) Int(key string) (int, error) {
	v, err := f.lookup(key)
	if err != nil {
		return 0, err
	}
	n, err := ToInt(v)
	if err != nil {
		return 0, f.invalid(key, "%v", err)
	}
	return n, nil
}

// Bool returns a required boolean field.
func (f Fields) Bool(key string) (bool, error) {
	v, err := f.lookup(key)
	if err != nil {
		return false, err
	}
	b, err := ToBool(v)
	if err != nil {
		return false, f.invalid(key, "%v", err)
	}
	return b, nil
}

// OptionalBool returns a boolean field that may be absent or null.
func (f Fields) OptionalBool(key string) (bool, bool, error) {
	if !f.Has(key) {
		return false, false, nil
	}
	b, err := f.Bool(key)
	if err != nil {
		return false, false, err
	}
	return b, true, nil
}

// Object returns a required nested record.
func (f Fields) Object(key string) (Fields, error) {
	v, err := f.lookup(key)
	if err != nil {
		return Fields{}, err
	}
	m, ok := asMap(v)
	if !ok {
		return Fields{}, f.invalid(key, "expected object, got %T", v)
	}
	return Fields{path: f.Path(key), values: m}, nil
}

// OptionalObject returns a nested record that may be absent or null.
func (f Fields) OptionalObject(key string) (Fields, bool, error) {
	if !f.Has(key) {
		return Fields{}, false, nil
	}
	obj, err := f.Object(key)
	if err != nil {
		return Fields{}, false, err
	}
	return obj, true, nil
}

// Objects returns a required list of nested records. Each element is
// positioned at "key[i]".
func (f Fields) Objects(key string) ([]Fields, error) {
	v, err := f.lookup(key)
	if err != nil {
		return nil, err
	}
	return f.objects(key, v)
}

// OptionalObjects returns a list of nested records that may be absent or null.
func (f Fields) OptionalObjects(key string) ([]Fields, bool, error) {
	if !f.Has(key) {
		return nil, false, nil
	}
	items, err := f.objects(key, f.values[key])
	if err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (f Fields) objects(key string, v any) ([]Fields, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, f.invalid(key, "expected list, got %T", v)
	}
	var out []Fields
	for i, item := range list {
		itemPath := fmt.Sprintf("%s[%d]", f.Path(key), i)
		m, ok := asMap(item)
		if !ok {
			return nil, &FieldError{Path: itemPath, Err: ErrInvalidValue, Detail: fmt.Sprintf("expected object, got %T", item)}
		}
		out = append(out, Fields{path: itemPath, values: m})
	}
	return out, nil
}

// OptionalStrings returns a list of strings that may be absent or null. A
// present empty list yields a non-nil empty slice.
func (f Fields) OptionalStrings(key string) ([]string, bool, error) {
	if !f.Has(key) {
		return nil, false, nil
	}
	v := f.values[key]
	list, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]string); ok {
			return append([]string{}, typed...), true, nil
		}
		return nil, false, f.invalid(key, "expected list, got %T", v)
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false, &FieldError{
				Path:   fmt.Sprintf("%s[%d]", f.Path(key), i),
				Err:    ErrInvalidValue,
				Detail: fmt.Sprintf("expected string, got %T", item),
			}
		}
		out = append(out, s)
	}
	return out, true, nil
}

// OptionalStringMap returns an object whose values are rendered as strings.
// Non-string values are formatted with fmt.
func (f Fields) OptionalStringMap(key string) (map[string]string, bool, error) {
	obj, ok, err := f.OptionalObject(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	out := make(map[string]string, len(obj.values))
	for k, v := range obj.values {
		switch typed := v.(type) {
		case string:
			out[k] = typed
		case nil:
			out[k] = ""
		default:
			out[k] = fmt.Sprint(typed)
		}
	}
	return out, true, nil
}

func asMap(v any) (map[string]any, bool) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// ToFloat coerces a loosely typed numeric value to float64. NaN and the
// infinities are rejected whatever form they arrive in.
func ToFloat(v any) (float64, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not a finite number", f)
	}
	return f, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

// ToInt coerces a loosely typed numeric value to int. Floating point input
// must be integral, and every input must fit in an int.
func ToInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", n)
		}
		return int(n), nil
	case int32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", n)
		}
		return int(n), nil
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", n)
		}
		return int(n), nil
	case float64:
		return integral(n)
	case float32:
		return integral(float64(n))
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return ToInt(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n.String())
		}
		return integral(f)
	case string:
		trimmed := strings.TrimSpace(n)
		if i, err := strconv.Atoi(trimmed); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n)
		}
		return integral(f)
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

// maxIntFloat is 2^63 on 64-bit platforms, the first float64 above math.MaxInt.
const maxIntFloat = -float64(math.MinInt)

func integral(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	if f < float64(math.MinInt) || f >= maxIntFloat {
		return 0, fmt.Errorf("%v is out of range", f)
	}
	return int(f), nil
}

// ToBool coerces a boolean or a boolean string ("true", "false", "1", "0").
func ToBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("%q is not a boolean", b)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
}
