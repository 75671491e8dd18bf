package valfmt

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strconv"
)

// Func is a formatter as a template layer calls it: the bound value first,
// then the literal parameters written at the call site. A nil parameter
// selects the default.
type Func func(v any, args ...any) (any, error)

// Registry maps formatter names to functions. It is built once by
// [NewRegistry], never modified afterwards, and safe for concurrent use.
type Registry struct {
	funcs  map[Name]Func
	logger *slog.Logger
}

// NewRegistry binds every formatter to f. A nil f uses [New] defaults.
func NewRegistry(f *Formatter) *Registry {
	if f == nil {
		f = New()
	}
	return &Registry{
		logger: f.logger,
		funcs: map[Name]Func{
			NameFloatformat: func(v any, args ...any) (any, error) {
				p, err := intArg(NameFloatformat, args, 0, 2, 1)
				if err != nil {
					return nil, err
				}
				return f.FloatFormat(v, p), nil
			},
			NameNz: func(v any, args ...any) (any, error) {
				if err := maxArgs(NameNz, args, 1); err != nil {
					return nil, err
				}
				if len(args) == 0 || args[0] == nil {
					return Nz(v, Placeholder), nil
				}
				return Nz(v, args[0]), nil
			},
			NameDate: func(v any, args ...any) (any, error) {
				if err := maxArgs(NameDate, args, 0); err != nil {
					return nil, err
				}
				return f.Date(v), nil
			},
			NamePercentage: func(v any, args ...any) (any, error) {
				if len(args) > 0 && isFalsy(args[0]) {
					args = append([]any{nil}, args[1:]...)
				}
				d, err := intArg(NamePercentage, args, 0, 0, 1)
				if err != nil {
					return nil, err
				}
				return Percentage(v, d), nil
			},
			NameYesNo: func(v any, args ...any) (any, error) {
				if err := maxArgs(NameYesNo, args, 0); err != nil {
					return nil, err
				}
				return YesNo(v), nil
			},
			NameZero2NullMark: func(v any, args ...any) (any, error) {
				if err := maxArgs(NameZero2NullMark, args, 0); err != nil {
					return nil, err
				}
				return Zero2NullMark(v), nil
			},
			NameUpper: func(v any, args ...any) (any, error) {
				if err := maxArgs(NameUpper, args, 0); err != nil {
					return nil, err
				}
				return Upper(v), nil
			},
			NameCurrencyFormat: func(v any, args ...any) (any, error) {
				p, err := intArg(NameCurrencyFormat, args, 0, 2, 1)
				if err != nil {
					return nil, err
				}
				return f.CurrencyFormat(v, p), nil
			},
			NameListrify: func(v any, args ...any) (any, error) {
				sep, err := stringArg(NameListrify, args, 0, ", ", 1)
				if err != nil {
					return nil, err
				}
				return Listrify(v, sep), nil
			},
			NameMultiply: func(v any, args ...any) (any, error) {
				if err := exactArgs(NameMultiply, args, 1); err != nil {
					return nil, err
				}
				return Multiply(v, args[0]), nil
			},
			NameDivide: func(v any, args ...any) (any, error) {
				if err := exactArgs(NameDivide, args, 1); err != nil {
					return nil, err
				}
				return Divide(v, args[0]), nil
			},
			NameSubtract: func(v any, args ...any) (any, error) {
				if err := exactArgs(NameSubtract, args, 1); err != nil {
					return nil, err
				}
				return Subtract(v, args[0]), nil
			},
			NameZero2Val: func(v any, args ...any) (any, error) {
				if err := exactArgs(NameZero2Val, args, 1); err != nil {
					return nil, err
				}
				return Zero2Val(v, args[0]), nil
			},
			NameCurrency: func(v any, args ...any) (any, error) {
				sign, err := boolArg(NameCurrency, args, 0, 1)
				if err != nil {
					return nil, err
				}
				return f.Currency(v, sign), nil
			},
			NameKMark: func(v any, args ...any) (any, error) {
				p, err := intArg(NameKMark, args, 0, 0, 2)
				if err != nil {
					return nil, err
				}
				sign, err := boolArg(NameKMark, args, 1, 2)
				if err != nil {
					return nil, err
				}
				return f.KMark(v, p, sign), nil
			},
			NameRepeat: func(v any, args ...any) (any, error) {
				n, err := intArg(NameRepeat, args, 0, 1, 1)
				if err != nil {
					return nil, err
				}
				return Repeat(v, n), nil
			},
			NameTextWrap: func(v any, args ...any) (any, error) {
				width, err := intArg(NameTextWrap, args, 0, 70, 1)
				if err != nil {
					return nil, err
				}
				return TextWrap(v, width), nil
			},
			NameLookup: func(v any, args ...any) (any, error) {
				if err := exactArgs(NameLookup, args, 1); err != nil {
					return nil, err
				}
				return Lookup(v, args[0]), nil
			},
			NameTimeDelta: func(v any, args ...any) (any, error) {
				if err := exactArgs(NameTimeDelta, args, 1); err != nil {
					return nil, err
				}
				return f.TimeDelta(v, args[0]), nil
			},
			NameToString: func(v any, args ...any) (any, error) {
				if err := maxArgs(NameToString, args, 0); err != nil {
					return nil, err
				}
				return ToString(v), nil
			},
		},
	}
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[Name(name)]
	return fn, ok
}

// Apply calls the formatter registered under name.
func (r *Registry) Apply(name string, v any, args ...any) (any, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		r.logger.Debug("valfmt: unknown formatter", slog.String("name", name))
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormatter, name)
	}
	out, err := fn(v, args...)
	if err != nil {
		r.logger.Debug("valfmt: formatter rejected arguments", slog.String("name", name), slog.Any("error", err))
		return nil, err
	}
	return out, nil
}

// Names returns the registered formatter names in registration order.
func (r *Registry) Names() []Name {
	out := make([]Name, 0, len(r.funcs))
	for _, n := range names {
		if _, ok := r.funcs[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// --- Argument helpers ---

func maxArgs(name Name, args []any, n int) error {
	if len(args) > n {
		return fmt.Errorf("%w: %s takes at most %d parameters, got %d", ErrInvalidArgument, name, n, len(args))
	}
	return nil
}

func exactArgs(name Name, args []any, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d parameters, got %d", ErrInvalidArgument, name, n, len(args))
	}
	return nil
}

func intArg(name Name, args []any, i, def, limit int) (int, error) {
	if err := maxArgs(name, args, limit); err != nil {
		return 0, err
	}
	if i >= len(args) || isNull(args[i]) {
		return def, nil
	}
	f, ok := toFloat(args[i])
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s parameter %d must be an integer, got %T", ErrInvalidArgument, name, i+1, args[i])
	}
	return int(f), nil
}

func stringArg(name Name, args []any, i int, def string, limit int) (string, error) {
	if err := maxArgs(name, args, limit); err != nil {
		return "", err
	}
	if i >= len(args) || isNull(args[i]) {
		return def, nil
	}
	rv := reflect.ValueOf(deref(args[i]))
	if rv.Kind() != reflect.String {
		return "", fmt.Errorf("%w: %s parameter %d must be a string, got %T", ErrInvalidArgument, name, i+1, args[i])
	}
	return rv.String(), nil
}

func boolArg(name Name, args []any, i, limit int) (bool, error) {
	if err := maxArgs(name, args, limit); err != nil {
		return false, err
	}
	if i >= len(args) || isNull(args[i]) {
		return false, nil
	}
	rv := reflect.ValueOf(deref(args[i]))
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		b, err := strconv.ParseBool(rv.String())
		if err == nil {
			return b, nil
		}
	}
	return false, fmt.Errorf("%w: %s parameter %d must be a boolean, got %T", ErrInvalidArgument, name, i+1, args[i])
}
