package valfmt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownFormatter = errors.New("unknown formatter")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnflattenable    = errors.New("value cannot be flattened")
	ErrInvalidLocale    = errors.New("invalid locale")
	ErrInvalidTemplate  = errors.New("invalid template")
)

// Placeholder is substituted for absent values.
const Placeholder = "---"

// InvalidDate is rendered for values that cannot be read as a date.
const InvalidDate = "Invalid Date"

// Name identifies a formatter in a [Registry].
type Name string

const (
	NameFloatformat    Name = "floatformat"
	NameNz             Name = "nz"
	NameDate           Name = "date"
	NamePercentage     Name = "percentage"
	NameYesNo          Name = "yesNo"
	NameZero2NullMark  Name = "zero2NullMark"
	NameUpper          Name = "upper"
	NameCurrencyFormat Name = "currencyFormat"
	NameListrify       Name = "listrify"
	NameMultiply       Name = "multiply"
	NameDivide         Name = "divide"
	NameSubtract       Name = "subtract"
	NameZero2Val       Name = "zero2val"
	NameCurrency       Name = "currency"
	NameKMark          Name = "kmark"
	NameRepeat         Name = "repeat"
	NameTextWrap       Name = "textWrap"
	NameLookup         Name = "lookup"
	NameTimeDelta      Name = "timedelta"
	NameToString       Name = "tostring"
)

var names = []Name{
	NameFloatformat, NameNz, NameDate, NamePercentage, NameYesNo,
	NameZero2NullMark, NameUpper, NameCurrencyFormat, NameListrify,
	NameMultiply, NameDivide, NameSubtract, NameZero2Val, NameCurrency,
	NameKMark, NameRepeat, NameTextWrap, NameLookup, NameTimeDelta,
	NameToString,
}

// String returns the formatter name.
func (n Name) String() string { return string(n) }

// Names returns every formatter name in registration order.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// ParseName parses a formatter name as written in a template.
func ParseName(s string) (Name, error) {
	for _, n := range names {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormatter, s)
}

// Formatter carries the configuration shared by the locale-aware formatters.
// It is immutable after [New] and safe for concurrent use.
type Formatter struct {
	locale      *Locale
	location    *time.Location
	legacyDates bool
	logger      *slog.Logger
}

// Option configures a [Formatter].
type Option func(*Formatter)

// WithLocale sets the locale used for number grouping and date layouts.
// A nil locale is ignored.
func WithLocale(l *Locale) Option {
	return func(f *Formatter) {
		if l != nil {
			f.locale = l
		}
	}
}

// WithLocation sets the time zone dates are rendered in.
// Default: time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// WithLegacyDateGuard makes [Formatter.Date] parse absent values instead of
// returning [Placeholder]: nil becomes the Unix epoch and "" renders as
// [InvalidDate].
func WithLegacyDateGuard() Option {
	return func(f *Formatter) {
		f.legacyDates = true
	}
}

// WithLogger sets the logger used for debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.logger = l
		}
	}
}

// New returns a Formatter. Without options it formats for en-US in the
// local time zone and logs nothing.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		locale:   EnUS(),
		location: time.Local,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Locale returns the formatter's locale.
func (f *Formatter) Locale() *Locale { return f.locale }
