package testutil

import (
	"math"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Sample is a named native property value used across codec tests.
type Sample struct {
	Name  string
	Value any
}

// Samples returns representative values for every supported kind, including
// boundary values. Each call returns fresh values that callers may modify.
func Samples() []Sample {
	return []Sample{
		{"bool/true", true},
		{"bool/false", false},

		{"int16/zero", int16(0)},
		{"int16/min", int16(math.MinInt16)},
		{"int16/max", int16(math.MaxInt16)},

		{"int32/zero", int32(0)},
		{"int32/negative", int32(-100)},
		{"int32/min", int32(math.MinInt32)},
		{"int32/max", int32(math.MaxInt32)},

		{"int64/zero", int64(0)},
		{"int64/negative", int64(-1)},
		{"int64/min", int64(math.MinInt64)},
		{"int64/max", int64(math.MaxInt64)},

		{"float32/zero", float32(0)},
		{"float32/fraction", float32(1.5)},
		{"float32/negative", float32(-3.25)},
		{"float32/max", float32(math.MaxFloat32)},

		{"float64/zero", float64(0)},
		{"float64/pi", math.Pi},
		{"float64/negative", -1e300},
		{"float64/smallest", math.SmallestNonzeroFloat64},

		{"string/empty", ""},
		{"string/ascii", "gradoop"},
		{"string/utf8", "Grüße, 世界"},
		{"string/long", strings.Repeat("x", 100_000)},

		{"decimal/zero", Decimal("0")},
		{"decimal/precise", Decimal("12345678901234567890.000000000000000001")},
		{"decimal/negative", Decimal("-0.5")},

		{"id/nil", uuid.Nil},
		{"id/seq", ID(42)},

		{"datetime/epoch", time.Unix(0, 0).UTC()},
		{"datetime/before-epoch", time.Date(1900, 1, 1, 12, 30, 0, 5, time.UTC)},
		{"datetime/nanos", time.Date(2024, 2, 29, 23, 59, 59, 999_999_999, time.UTC)},

		{"bytes/empty", []byte{}},
		{"bytes/data", []byte{0x00, 0xFF, 0x10}},

		{"list/empty", []any{}},
		{"list/mixed", []any{int32(1), "two", true, nil}},
		{"list/nested", []any{[]any{int64(1)}, map[string]any{"k": 2.5}}},

		{"map/empty", map[string]any{}},
		{"map/flat", map[string]any{"name": "Alice", "age": int32(42)}},
		{"map/nested", map[string]any{"tags": []any{"a", "b"}, "meta": map[string]any{}}},
	}
}

// Decimal parses s and panics if it is not a valid decimal.
func Decimal(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
