// Package literal turns command-line text into native property values.
//
// Literals are CUE expressions, so `42`, `1.5`, `"Alice"`, `[1, "a"]`,
// `{since: 2014}`, `'\x00\xff'` and `null` all parse without a custom
// grammar. CUE numbers have no width, so untyped integers become int64 and
// untyped floats float64; an explicit kind narrows the result.
package literal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Kinds accepted by Parse.
var Kinds = []string{
	"bool", "int16", "int32", "int64", "float32", "float64",
	"decimal", "id", "string", "bytes", "datetime",
}

// Parse evaluates expr and converts the result. An empty as keeps the
// default mapping; otherwise the value must be a scalar convertible to that
// kind.
func Parse(expr, as string) (any, error) {
	v := cuecontext.New().CompileString(expr)
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}
	if as == "" {
		return Native(v)
	}
	return Narrow(v, as)
}

// Native converts a concrete CUE value.
func Native(v cue.Value) (any, error) {
	switch k := v.Kind(); k {
	case cue.NullKind:
		return nil, nil
	case cue.BoolKind:
		return v.Bool()
	case cue.IntKind:
		i, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("%v: integer out of int64 range, use decimal", v)
		}
		return i, nil
	case cue.FloatKind:
		return v.Float64()
	case cue.StringKind:
		return v.String()
	case cue.BytesKind:
		return v.Bytes()
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		list := []any{}
		for i := 0; iter.Next(); i++ {
			x, err := Native(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			list = append(list, x)
		}
		return list, nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		m := map[string]any{}
		for iter.Next() {
			x, err := Native(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", iter.Label(), err)
			}
			m[iter.Label()] = x
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported literal kind %v", k)
	}
}

// Narrow converts a concrete scalar CUE value to the named kind.
func Narrow(v cue.Value, as string) (any, error) {
	switch as {
	case "bool":
		return v.Bool()
	case "int16":
		return intIn(v, math.MinInt16, math.MaxInt16, func(i int64) any { return int16(i) })
	case "int32":
		return intIn(v, math.MinInt32, math.MaxInt32, func(i int64) any { return int32(i) })
	case "int64":
		return v.Int64()
	case "float32":
		f, err := v.Float64()
		return float32(f), err
	case "float64":
		return v.Float64()
	case "decimal":
		return decimal(v)
	case "id":
		s, err := v.String()
		if err != nil {
			return nil, err
		}
		return uuid.Parse(s)
	case "string":
		return v.String()
	case "bytes":
		return v.Bytes()
	case "datetime":
		s, err := v.String()
		if err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, err
		}
		return t.UTC(), nil
	default:
		return nil, fmt.Errorf("unknown kind %q: must be one of %s", as, strings.Join(Kinds, ", "))
	}
}

func intIn(v cue.Value, lo, hi int64, conv func(int64) any) (any, error) {
	i, err := v.Int64()
	if err != nil {
		return nil, err
	}
	if i < lo || i > hi {
		return nil, fmt.Errorf("%d out of range [%d, %d]", i, lo, hi)
	}
	return conv(i), nil
}

// decimal keeps the literal's digits, so 1.50 stays 1.50.
func decimal(v cue.Value) (*apd.Decimal, error) {
	var text string
	switch v.Kind() {
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, err
		}
		text = s
	case cue.IntKind, cue.FloatKind:
		b, err := v.MarshalJSON()
		if err != nil {
			return nil, formatCUEError(err)
		}
		text = string(b)
	default:
		return nil, fmt.Errorf("cannot use %v as decimal", v.Kind())
	}
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", text, err)
	}
	return d, nil
}

func formatCUEError(err error) error {
	return fmt.Errorf("literal: %s", strings.TrimSpace(errors.Details(err, nil)))
}
