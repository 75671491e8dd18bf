package valfmt

import (
	"math"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// FloatFormat renders v as grouped decimal text with exactly precision
// fraction digits. Falsy values (nil, 0, "", NaN, false) render as
// [Placeholder]. Values that are not numbers are shown unchanged.
func (f *Formatter) FloatFormat(v any, precision int) string {
	if isFalsy(v) {
		return Placeholder
	}
	d, ok := toDecimal(v)
	if !ok {
		return display(v)
	}
	return f.locale.formatNumber(d, precision)
}

// CurrencyFormat renders v as grouped decimal text without a currency
// symbol. Only nil renders as ""; other values that are not numbers are
// stripped down to their digits first and count as 0 when nothing is left.
func (f *Formatter) CurrencyFormat(v any, precision int) string {
	if isNull(v) {
		return ""
	}
	d, ok := toDecimal(v)
	if !ok {
		d = unformat(v)
	}
	return f.locale.formatNumber(d, precision)
}

// unformat keeps the digits, sign and decimal point of a string such as
// "$1,234.50". Anything else is zero.
func unformat(v any) decimal.Decimal {
	rv := reflect.ValueOf(deref(v))
	if rv.Kind() != reflect.String {
		return decimal.Zero
	}
	s := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' || r == '.' {
			return r
		}
		return -1
	}, rv.String())
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Percentage multiplies v by 100, rounds to decimals fraction digits half
// away from zero, and appends "%". Trailing zeros are not padded, so
// Percentage(0.5, 2) is "50%". Falsy values count as 0.
func Percentage(v any, decimals int) string {
	if isFalsy(v) {
		return "0%"
	}
	d, ok := toDecimal(v)
	if !ok {
		f, isNum := toFloat(v)
		if isNum && math.IsInf(f, 0) {
			return formatFloat(f) + "%"
		}
		return "NaN%"
	}
	return d.Mul(hundred).Round(int32(decimals)).String() + "%"
}

// Zero2NullMark returns [Placeholder] for falsy values, "0.00", and anything
// that compares equal to zero. Other values are returned unchanged.
func Zero2NullMark(v any) any {
	if isFalsy(v) || v == "0.00" || looseEqualsZero(v) {
		return Placeholder
	}
	return v
}

// Multiply returns v*by as a float64, or v unchanged when either side is not
// a number.
func Multiply(v, by any) any {
	a, ok := toFloat(v)
	if !ok {
		return v
	}
	b, ok := toFloat(by)
	if !ok {
		return v
	}
	return a * b
}

// Divide returns v/by as a float64. It returns 0 when v or by is not a
// number and when by is zero.
func Divide(v, by any) any {
	a, ok := toFloat(v)
	if !ok {
		return 0.0
	}
	b, ok := toFloat(by)
	if !ok || b == 0 {
		return 0.0
	}
	return a / b
}

// Subtract returns v-minus as a float64, or "n/a" when either side is not a
// number.
func Subtract(v, minus any) any {
	a, ok := toFloat(v)
	if !ok {
		return "n/a"
	}
	b, ok := toFloat(minus)
	if !ok {
		return "n/a"
	}
	return a - b
}

// Zero2Val returns replacement when v is numerically zero, and v otherwise.
func Zero2Val(v, replacement any) any {
	f, ok := toFloat(v)
	if ok && f == 0 {
		return replacement
	}
	return v
}

// Currency renders v with two grouped fraction digits, prefixed by "$ " when
// withSign is set. Values that are not numbers are returned unchanged.
func (f *Formatter) Currency(v any, withSign bool) any {
	d, ok := toDecimal(v)
	if !ok {
		return v
	}
	s := f.locale.formatNumber(d, 2)
	if withSign {
		return "$ " + s
	}
	return s
}

// KMark renders v in thousands with precision fraction digits, suffixed by
// " K" when withSign is set. Values that are not numbers are returned
// unchanged.
func (f *Formatter) KMark(v any, precision int, withSign bool) any {
	d, ok := toDecimal(v)
	if !ok {
		return v
	}
	s := f.locale.formatNumber(d.Div(thousand), precision)
	if withSign {
		return s + " K"
	}
	return s
}
