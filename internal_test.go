package valfmt

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type label string

func TestDerefNilPointers(t *testing.T) {
	t.Parallel()
	var p *int
	var pp **int = &p
	n := 3
	assert.Nil(t, deref(p))
	assert.Nil(t, deref(pp))
	assert.Equal(t, 3, deref(&n))
}

func TestIsFalsy(t *testing.T) {
	t.Parallel()
	for _, v := range []any{nil, false, 0, int8(0), uint(0), 0.0, float32(0), "", math.NaN(), decimal.Zero, label(""), json.Number("0"), json.Number("-0.0")} {
		assert.True(t, isFalsy(v), "value %#v", v)
	}
	for _, v := range []any{true, 1, -1, 0.1, "0", "false", " ", []int{}, decimal.NewFromInt(1), json.Number("0.5")} {
		assert.False(t, isFalsy(v), "value %#v", v)
	}
}

func TestLooseEqualsZero(t *testing.T) {
	t.Parallel()
	for _, v := range []any{false, 0, 0.0, "", " ", "0", "0.00", "-0", decimal.Zero, json.Number("0")} {
		assert.True(t, looseEqualsZero(v), "value %#v", v)
	}
	for _, v := range []any{nil, true, 1, "abc", "false", math.NaN(), []int{}} {
		assert.False(t, looseEqualsZero(v), "value %#v", v)
	}
}

func TestToDecimalRejectsNonFinite(t *testing.T) {
	t.Parallel()
	_, ok := toDecimal(math.NaN())
	assert.False(t, ok)
	_, ok = toDecimal(math.Inf(1))
	assert.False(t, ok)
	_, ok = toDecimal("NaN")
	assert.False(t, ok)

	d, ok := toDecimal(" 12.50 ")
	assert.True(t, ok)
	assert.Equal(t, "12.5", d.String())
}

func TestDisplay(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "null", display(nil))
	assert.Equal(t, "2.5", display(2.5))
	assert.Equal(t, "100000000", display(1e8))
	assert.Equal(t, "NaN", display(math.NaN()))
	assert.Equal(t, "-Infinity", display(math.Inf(-1)))
	assert.Equal(t, "false", display(false))
	assert.Equal(t, "x", display(label("x")))
	assert.Equal(t, "1.5", display(decimal.RequireFromString("1.5")))
	assert.Equal(t, "[1 2]", display([]int{1, 2}))
}

func TestWrapCellWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is two columns wide and never fits a one column line.
	lines := wrapCell("你好", 1)
	assert.Equal(t, []string{"你", "好"}, lines)
}

func TestWrapCellNoWrap(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"hi"}, wrapCell("hi", 0))
	assert.Equal(t, []string{"hi"}, wrapCell("hi", 5))
}

func TestWrapCellBasic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Hel", "lo"}, wrapCell("Hello", 3))
}

func TestWrapWordsWideRunes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"你好", "世界"}, wrapWords("你好 世界", 4))
}

func TestUnformat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-1234.5", unformat("-$1,234.50").String())
	assert.True(t, unformat("n/a").IsZero())
	assert.True(t, unformat(12).IsZero())
}

func TestFormatNumberClampsPrecision(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1,235", EnUS().formatNumber(decimal.NewFromFloat(1234.5), -2))
}

func TestGroupDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"12345678901234567", "12,345,678,901,234,567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupDigits(tt.in, ","), tt.in)
	}
}

func TestSeparatorsFromPrinter(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ",", EnUS().groupSep)
	assert.Equal(t, ".", EnUS().decimalSep)
	assert.Equal(t, ".", DeDE().groupSep)
	assert.Equal(t, ",", DeDE().decimalSep)
}

func TestSplitHyphens(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"well-", "known-", "thing"}, splitHyphens("well-known-thing"))
	assert.Equal(t, []string{"-flag"}, splitHyphens("-flag"))
	assert.Equal(t, []string{"a--b"}, splitHyphens("a--b"))
	assert.Equal(t, []string{"trail-"}, splitHyphens("trail-"))
}
