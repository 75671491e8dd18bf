// Package valfmt renders raw values into display strings for templates.
//
// The formatters cover the value shapes a data-entry UI shows: numbers that
// may be missing, dates, yes/no flags, lists, and nullable fields. Each one
// is a pure function that never panics on missing or degenerate input and
// instead returns a well-defined placeholder.
//
// # Formatters
//
// Locale-independent formatters are package functions:
//
//   - [Nz] — fallback for nil and ""
//   - [Percentage] — v*100 rounded half away from zero, with "%"
//   - [YesNo] — "Yes" or "No"
//   - [Zero2NullMark] — [Placeholder] for zero-like values
//   - [Upper] — upper-cases strings only
//   - [Listrify] — joins a sequence with a separator
//
// Formatters that depend on the locale or time zone are methods on
// [Formatter], built with [New]:
//
//   - [Formatter.FloatFormat] — grouped decimal, fixed fraction digits
//   - [Formatter.CurrencyFormat] — grouped decimal without a symbol
//   - [Formatter.Date] — calendar date in the locale's layout
//
// [Multiply], [Divide], [Subtract], [Zero2Val], [Repeat], [TextWrap],
// [Lookup], [ToString], [Formatter.TimeDelta], [Formatter.Currency], and
// [Formatter.KMark] round out the set.
//
// # Absent Values
//
// What counts as absent differs per formatter on purpose. [Nz] only treats
// nil and "" as absent, so 0 and false survive. [Formatter.FloatFormat]
// treats every falsy value (nil, false, 0, "", NaN) as absent.
// [Formatter.CurrencyFormat] only treats nil as absent. Nil pointers count
// as nil everywhere.
//
// Formatters are not idempotent: feeding a formatted string back into a
// formatter is not guaranteed to produce the same string.
//
// # Registry
//
// A [Registry] maps template names such as "floatformat" to [Func] values
// bound to one [Formatter]. Build it once and share it:
//
//	reg := valfmt.NewRegistry(valfmt.New(valfmt.WithLocale(valfmt.EnCA())))
//	out, err := reg.Apply("floatformat", 1234.5, 1)
//
// [Registry.FuncMap] plugs the registry into text/template and
// html/template:
//
//	tmpl := template.New("row").Funcs(reg.FuncMap())
//
// # Locales
//
// Numbers are grouped with golang.org/x/text/message and dates use a Go
// time layout per locale. Predefined locales are [EnUS], [EnGB], [EnCA],
// [FrCA], [FrFR], and [DeDE]; [ParseLocale] accepts any BCP 47 tag and
// [LoadLocales] reads YAML definitions from an fs.FS.
//
// # Flattening
//
// [Flatten] turns a validation payload into one line of text with the JSON
// punctuation removed.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownFormatter] — no formatter with that name
//   - [ErrInvalidArgument] — a template parameter has the wrong type or count
//   - [ErrUnflattenable] — [Flatten] could not encode the value
//   - [ErrInvalidLocale] — a locale tag or file could not be read
//   - [ErrInvalidTemplate] — [Registry.Execute] got invalid template syntax
package valfmt
