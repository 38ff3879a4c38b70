package attrs

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Stringify casts a scalar to its string form. Booleans follow the loose
// rules used for value comparison: true is "1", false is "". The second
// result is false for nil and for values that are not scalars.
func Stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		if v {
			return "1", true
		}
		return "", true
	case fmt.Stringer:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		if rv.Bool() {
			return "1", true
		}
		return "", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

// IsScalar reports whether value can be rendered as an attribute value.
func IsScalar(value any) bool {
	_, ok := Stringify(value)
	return ok
}

// IsContainer reports whether value is a slice, array, or string-keyed map.
func IsContainer(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	default:
		return false
	}
}

// Elements returns the members of a slice, array, or map. Map members are
// returned in key order.
func Elements(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.Map:
		keys := rv.MapKeys()
		sortValues(keys)
		out := make([]any, 0, len(keys))
		for _, key := range keys {
			out = append(out, rv.MapIndex(key).Interface())
		}
		return out, true
	default:
		return nil, false
	}
}

// Truthy applies loose truthiness: nil, "", "0", false, zero numbers and
// empty containers are false.
func Truthy(value any) bool {
	if value == nil {
		return false
	}
	if IsContainer(value) {
		return reflect.ValueOf(value).Len() > 0
	}
	s, ok := Stringify(value)
	if !ok {
		return true
	}
	return s != "" && s != "0"
}

// Equal compares two scalars by their string form.
func Equal(a, b any) bool {
	as, aok := Stringify(a)
	bs, bok := Stringify(b)
	return aok && bok && as == bs
}

// Contains reports whether list holds an element string-equal to value.
func Contains(list, value any) bool {
	items, ok := Elements(list)
	if !ok {
		return false
	}
	for _, item := range items {
		if Equal(item, value) {
			return true
		}
	}
	return false
}

func sortValues(keys []reflect.Value) {
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
}
