package valfmt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale holds the rules for grouping numbers and laying out dates.
// It is immutable after creation and safe for concurrent use.
type Locale struct {
	tag        language.Tag
	dateLayout string
	groupSep   string
	decimalSep string
}

// NewLocale returns a Locale for tag that renders dates with the Go time
// layout dateLayout. An empty layout falls back to the layout known for the
// tag's language, or ISO 8601.
func NewLocale(tag language.Tag, dateLayout string) *Locale {
	if dateLayout == "" {
		dateLayout = defaultDateLayout(tag)
	}
	group, dec := separators(message.NewPrinter(tag))
	return &Locale{
		tag:        tag,
		dateLayout: dateLayout,
		groupSep:   group,
		decimalSep: dec,
	}
}

// separators reads the grouping and decimal separators off the locale's
// printer. Locales that print non-ASCII digits fall back to "," and ".".
func separators(p *message.Printer) (group, dec string) {
	sample := p.Sprintf("%.1f", 1234.5)
	rest, ok := strings.CutPrefix(sample, "1")
	if !ok {
		return ",", "."
	}
	i := strings.Index(rest, "234")
	if i < 0 {
		return ",", "."
	}
	group = rest[:i]
	dec, ok = strings.CutSuffix(rest[i+3:], "5")
	if !ok || dec == "" {
		return ",", "."
	}
	return group, dec
}

// ParseLocale parses a BCP 47 tag such as "en-CA" and picks its date layout.
func ParseLocale(s string) (*Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidLocale, s, err)
	}
	return NewLocale(tag, ""), nil
}

// Tag returns the locale's language tag.
func (l *Locale) Tag() language.Tag { return l.tag }

// DateLayout returns the Go time layout used for dates.
func (l *Locale) DateLayout() string { return l.dateLayout }

// String returns the BCP 47 form of the tag.
func (l *Locale) String() string { return l.tag.String() }

// EnUS returns the US English locale (1,234.50 and 3/5/2024).
func EnUS() *Locale { return NewLocale(language.AmericanEnglish, "1/2/2006") }

// EnGB returns the British English locale (1,234.50 and 05/03/2024).
func EnGB() *Locale { return NewLocale(language.BritishEnglish, "02/01/2006") }

// EnCA returns the Canadian English locale (1,234.50 and 2024-03-05).
func EnCA() *Locale { return NewLocale(language.MustParse("en-CA"), "2006-01-02") }

// FrCA returns the Canadian French locale.
func FrCA() *Locale { return NewLocale(language.CanadianFrench, "2006-01-02") }

// FrFR returns the French locale.
func FrFR() *Locale { return NewLocale(language.French, "02/01/2006") }

// DeDE returns the German locale (1.234,50 and 5.3.2024).
func DeDE() *Locale { return NewLocale(language.German, "2.1.2006") }

var knownLayouts = map[string]string{
	"en-US": "1/2/2006",
	"en-GB": "02/01/2006",
	"en-CA": "2006-01-02",
	"fr-CA": "2006-01-02",
	"fr-FR": "02/01/2006",
	"de-DE": "2.1.2006",
	"en":    "1/2/2006",
	"fr":    "02/01/2006",
	"de":    "2.1.2006",
}

func defaultDateLayout(tag language.Tag) string {
	if layout, ok := knownLayouts[tag.String()]; ok {
		return layout
	}
	base, _ := tag.Base()
	if layout, ok := knownLayouts[base.String()]; ok {
		return layout
	}
	return "2006-01-02"
}

// formatNumber renders d as grouped decimal text with exactly precision
// fraction digits. Rounding is half away from zero on the exact decimal and
// every digit is kept, so values beyond float64 precision print in full.
// A negative value that rounds to zero keeps its sign ("-0.00").
func (l *Locale) formatNumber(d decimal.Decimal, precision int) string {
	precision = max(precision, 0)
	fixed := d.Abs().Round(int32(precision)).StringFixed(int32(precision))
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(groupDigits(whole, l.groupSep))
	if frac != "" {
		b.WriteString(l.decimalSep)
		b.WriteString(frac)
	}
	return b.String()
}

// groupDigits inserts sep between groups of three digits.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
