// Package values resolves the value a form control should display from the
// explicit parameters, the submitted form data, and registered defaults.
package values

import (
	"reflect"
	"strconv"
	"strings"
)

// ParsePath splits a field name into lookup segments: "a[b][c]" yields
// ["a", "b", "c"] and "tags[]" yields ["tags", ""]. A leading bracket group,
// as in "[x]name[b]", is dropped before parsing.
func ParsePath(name string) []string {
	if strings.HasPrefix(name, "[") {
		end := strings.Index(name, "]")
		if end < 0 {
			return nil
		}
		name = name[end+1:]
	}
	if name == "" {
		return nil
	}

	open := strings.IndexByte(name, '[')
	if open < 0 {
		return []string{name}
	}

	segments := []string{name[:open]}
	rest := name[open:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			next := strings.IndexByte(rest, '[')
			if next < 0 {
				break
			}
			rest = rest[next:]
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			segments = append(segments, rest[1:])
			break
		}
		segments = append(segments, rest[1:end])
		rest = rest[end+1:]
	}
	return segments
}

// Resolve looks name up in data, walking nested maps and slices for bracketed
// names. Missing keys and non-container intermediates yield nil. An empty
// segment returns the container reached so far.
func Resolve(name string, data map[string]any) any {
	segments := ParsePath(name)
	if len(segments) == 0 || segments[0] == "" || len(data) == 0 {
		return nil
	}

	var current any = data
	for i, segment := range segments {
		if segment == "" && i > 0 {
			return current
		}
		next, ok := child(current, segment)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func child(container any, key string) (any, bool) {
	if container == nil {
		return nil, false
	}
	if m, ok := container.(map[string]any); ok {
		value, found := m[key]
		return value, found
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Map:
		keyValue, ok := mapKey(rv.Type().Key(), key)
		if !ok {
			return nil, false
		}
		value := rv.MapIndex(keyValue)
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	case reflect.Slice, reflect.Array:
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index >= rv.Len() {
			return nil, false
		}
		return rv.Index(index).Interface(), true
	default:
		return nil, false
	}
}

func mapKey(keyType reflect.Type, key string) (reflect.Value, bool) {
	switch keyType.Kind() {
	case reflect.String:
		return reflect.ValueOf(key).Convert(keyType), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, keyType.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(keyType), true
	case reflect.Interface:
		if reflect.TypeOf(key).Implements(keyType) {
			return reflect.ValueOf(key), true
		}
		return reflect.Value{}, false
	default:
		return reflect.Value{}, false
	}
}
