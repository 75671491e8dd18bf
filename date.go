package valfmt

import (
	"log/slog"
	"math"
	"reflect"
	"strings"
	"time"
)

// Layouts tried in order when a date arrives as a string. Strings without a
// zone are read in the formatter's location.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006",
	"January 2, 2006",
}

// maxEpochMillis bounds epoch input to 100,000,000 days either side of
// 1970, the range a browser Date accepts.
const maxEpochMillis = 8.64e15

// Date renders v as a calendar date in the formatter's locale and location.
//
// v may be a time.Time, a date string, or epoch milliseconds. nil and ""
// render as [Placeholder] unless [WithLegacyDateGuard] is set, in which case
// they are parsed like any other value. Anything unparsable renders as
// [InvalidDate].
func (f *Formatter) Date(v any) string {
	if !f.legacyDates && (isNull(v) || isEmptyString(v)) {
		return Placeholder
	}
	t, ok := f.parseDate(v)
	if !ok {
		f.logger.Debug("valfmt: unparsable date", slog.Any("value", v))
		return InvalidDate
	}
	return t.In(f.location).Format(f.locale.dateLayout)
}

func (f *Formatter) parseDate(v any) (time.Time, bool) {
	v = deref(v)
	switch x := v.(type) {
	case nil:
		return time.UnixMilli(0), true
	case time.Time:
		return x, true
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, f.location); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	ms, ok := toFloat(v)
	if !ok || math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

// TimeDelta returns the number of whole days from since to v, floored, so
// one hour before since is -1. It returns "" when either side is absent or
// not a date.
func (f *Formatter) TimeDelta(v, since any) any {
	if isNull(v) || isNull(since) {
		return ""
	}
	a, ok := f.parseDate(v)
	if !ok {
		return ""
	}
	b, ok := f.parseDate(since)
	if !ok {
		return ""
	}
	const dayMillis = 24 * 60 * 60 * 1000
	return int(math.Floor(float64(a.UnixMilli()-b.UnixMilli()) / dayMillis))
}
