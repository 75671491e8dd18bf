package valfmt

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Each formatter has its own absence rule, so the predicates below stay
// separate and are combined at the call site.

// deref follows pointers. A nil pointer of any type becomes an untyped nil.
func deref(v any) any {
	for v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		v = rv.Elem().Interface()
	}
	return nil
}

func isNull(v any) bool { return deref(v) == nil }

func isEmptyString(v any) bool {
	rv := reflect.ValueOf(deref(v))
	return rv.Kind() == reflect.String && rv.Len() == 0
}

func isNaN(v any) bool {
	rv := reflect.ValueOf(deref(v))
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	default:
		return false
	}
}

// isFalsy reports null, false, numeric zero, the empty string, and NaN.
func isFalsy(v any) bool {
	v = deref(v)
	if v == nil || isEmptyString(v) || isNaN(v) {
		return true
	}
	switch x := v.(type) {
	case decimal.Decimal:
		return x.IsZero()
	case json.Number:
		f, err := x.Float64()
		return err == nil && (f == 0 || math.IsNaN(f))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	default:
		return false
	}
}

// looseEqualsZero reports whether v compares equal to 0 under numeric
// coercion: false, numeric zero, blank strings, and strings that parse to 0.
// NaN never equals zero.
func looseEqualsZero(v any) bool {
	v = deref(v)
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return true
		}
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && f == 0
	}
	f, ok := toFloat(v)
	return ok && f == 0
}

// toFloat converts numbers, numeric strings, json.Number and decimal.Decimal.
func toFloat(v any) (float64, bool) {
	v = deref(v)
	switch x := v.(type) {
	case nil:
		return 0, false
	case decimal.Decimal:
		return x.InexactFloat64(), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// toDecimal is toFloat without the float round trip where the input allows
// it. NaN and infinities are not representable and report false.
func toDecimal(v any) (decimal.Decimal, bool) {
	v = deref(v)
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		d, err := decimal.NewFromString(strings.TrimSpace(rv.String()))
		return d, err == nil
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// display renders v the way a template would print it.
func display(v any) string {
	v = deref(v)
	if v == nil {
		return "null"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float())
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
