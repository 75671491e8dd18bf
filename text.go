package valfmt

import (
	"iter"
	"reflect"
	"strings"
)

// Nz returns fallback when v is nil or the empty string, and v otherwise.
// Zero and false are kept.
func Nz(v, fallback any) any {
	if isNull(v) || isEmptyString(v) {
		return fallback
	}
	return v
}

// YesNo returns "No" for nil and for values that compare equal to zero
// (false, 0, "", "0"), and "Yes" for everything else, including the string
// "false".
func YesNo(v any) string {
	if isNull(v) || looseEqualsZero(v) {
		return "No"
	}
	return "Yes"
}

// Upper upper-cases string values. Everything else, fmt.Stringer
// implementations included, is returned unchanged.
func Upper(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return v
	}
	return strings.ToUpper(rv.String())
}

// Listrify joins the elements of a slice, array, string, or iterator with
// sep. Empty sequences and values that are not sequences render as "".
func Listrify(v any, sep string) string {
	elems := elements(v)
	if len(elems) == 0 {
		return ""
	}
	return strings.Join(elems, sep)
}

func elements(v any) []string {
	v = deref(v)
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		return x
	case iter.Seq[string]:
		var out []string
		for s := range x {
			out = append(out, s)
		}
		return out
	case iter.Seq[any]:
		var out []string
		for e := range x {
			out = append(out, display(e))
		}
		return out
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]string, rv.Len())
		for i := range out {
			out[i] = display(rv.Index(i).Interface())
		}
		return out
	case reflect.String:
		var out []string
		for _, r := range rv.String() {
			out = append(out, string(r))
		}
		return out
	default:
		return nil
	}
}

// maxRepeatBytes caps the output of [Repeat].
const maxRepeatBytes = 1 << 20

// Repeat returns the display form of v repeated n times. The result is
// capped at 1 MiB; larger counts are cut to the number of whole copies
// that fit.
func Repeat(v any, n int) string {
	s := display(v)
	if n <= 0 || s == "" {
		return ""
	}
	n = min(n, maxRepeatBytes/len(s))
	return strings.Repeat(s, n)
}

// ToString returns the display form of v.
func ToString(v any) string { return display(v) }

// Lookup returns container[key] for maps and container[index] for slices
// and arrays. Negative indexes count from the end. Missing or unhashable
// keys, out of range indexes, and other containers yield "".
func Lookup(container, key any) any {
	rv := reflect.ValueOf(deref(container))
	switch rv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if !kv.IsValid() || !kv.Comparable() {
			return ""
		}
		kt := rv.Type().Key()
		switch {
		case kv.Type().AssignableTo(kt):
		case kv.Kind() == reflect.String && kt.Kind() == reflect.String:
			kv = kv.Convert(kt)
		default:
			return ""
		}
		if got := rv.MapIndex(kv); got.IsValid() {
			return got.Interface()
		}
		return ""
	case reflect.Slice, reflect.Array:
		f, ok := toFloat(key)
		if !ok || f != float64(int(f)) {
			return ""
		}
		i := int(f)
		if i < 0 {
			i += rv.Len()
		}
		if i >= 0 && i < rv.Len() {
			return rv.Index(i).Interface()
		}
		return ""
	default:
		return ""
	}
}
