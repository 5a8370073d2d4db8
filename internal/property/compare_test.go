package property

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rascat/gradoop/internal/testutil"
)

func compareValues(t *testing.T, a, b any) (int, error) {
	t.Helper()
	return mustCreate(t, a).Compare(mustCreate(t, b))
}

func TestCompare_SameKindTotalOrder(t *testing.T) {
	// Each group is listed in ascending order.
	groups := map[string][]any{
		"bool":     {false, true},
		"int16":    {int16(math.MinInt16), int16(-1), int16(0), int16(math.MaxInt16)},
		"int32":    {int32(math.MinInt32), int32(-100), int32(0), int32(5), int32(math.MaxInt32)},
		"int64":    {int64(math.MinInt64), int64(-1), int64(0), int64(math.MaxInt64)},
		"float32":  {float32(math.NaN()), float32(math.Inf(-1)), float32(-1.5), float32(0), float32(1.5)},
		"float64":  {math.NaN(), math.Inf(-1), -1e300, 0.0, math.Pi, math.Inf(1)},
		"string":   {"", "A", "a", "aa", "b", "ä"},
		"bytes":    {[]byte{}, []byte{0x00}, []byte{0x00, 0x01}, []byte{0xFF}},
		"decimal":  {testutil.Decimal("-10"), testutil.Decimal("0.001"), testutil.Decimal("1"), testutil.Decimal("1e3")},
		"id":       {testutil.ID(1), testutil.ID(2), testutil.ID(300)},
		"datetime": {time.Unix(-5, 0), time.Unix(0, 0), time.Unix(0, 1), time.Unix(100, 0)},
		"list":     {[]any{}, []any{int32(1)}, []any{int32(1), "a"}, []any{int32(2)}},
		"map": {
			map[string]any{},
			map[string]any{"a": int32(1)},
			map[string]any{"a": int32(1), "b": int32(0)},
			map[string]any{"a": int32(2)},
			map[string]any{"b": int32(0)},
		},
	}

	for name, values := range groups {
		t.Run(name, func(t *testing.T) {
			for i, a := range values {
				for j, b := range values {
					c, err := compareValues(t, a, b)
					require.NoError(t, err)

					switch {
					case i < j:
						assert.Equal(t, -1, c, "%v vs %v", a, b)
					case i > j:
						assert.Equal(t, 1, c, "%v vs %v", a, b)
					default:
						assert.Equal(t, 0, c, "%v vs itself", a)
					}
				}
			}
		})
	}
}

func TestCompare_Reflexive(t *testing.T) {
	for _, s := range testutil.Samples() {
		t.Run(s.Name, func(t *testing.T) {
			c, err := compareValues(t, s.Value, s.Value)
			require.NoError(t, err)
			assert.Equal(t, 0, c)
		})
	}
}

func TestCompare_NumericPromotion(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"int32 vs int64 equal", int32(5), int64(5), 0},
		{"float32 vs int32", float32(1.5), int32(1), 1},
		{"int16 vs int64", int16(-2), int64(3), -1},
		{"int64 beyond float precision", int64(1<<53 + 1), int64(1 << 53), 1},
		{"int64 vs int32 large", int64(math.MaxInt64), int32(math.MaxInt32), 1},
		{"float64 vs int64", 2.0, int64(2), 0},
		{"float32 vs float64", float32(0.5), 0.5, 0},
		{"decimal vs int32", testutil.Decimal("5.000"), int32(5), 0},
		{"decimal vs float64", testutil.Decimal("0.1"), 0.1, 0},
		{"decimal vs float64 smaller", testutil.Decimal("0.09"), 0.1, -1},
		{"int64 vs decimal", int64(7), testutil.Decimal("6.999"), 1},
		{"NaN vs int", math.NaN(), int32(0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := compareValues(t, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)

			c, err = compareValues(t, tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, -tt.want, c, "antisymmetry")
		})
	}
}

func TestCompare_IncompatibleTypes(t *testing.T) {
	tests := []struct {
		name string
		a, b any
	}{
		{"bool vs string", true, "x"},
		{"string vs int32", "1", int32(1)},
		{"list vs map", []any{}, map[string]any{}},
		{"id vs bytes", testutil.ID(1), []byte{1}},
		{"datetime vs int64", time.Unix(0, 0), int64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compareValues(t, tt.a, tt.b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncompatibleTypes)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, CodeIncompatibleTypes, perr.Code)
		})
	}
}

func TestCompare_IncompatibleNestedElements(t *testing.T) {
	_, err := compareValues(t, []any{true}, []any{"x"})
	assert.ErrorIs(t, err, ErrIncompatibleTypes)
}

func TestCompare_NestedNumericPromotion(t *testing.T) {
	c, err := compareValues(t, []any{int32(1), 2.5}, []any{int64(1), float32(2.5)})
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestCompare_Unset(t *testing.T) {
	c, err := Null.Compare(mustCreate(t, int32(-100)))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = mustCreate(t, "").Compare(Null)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = Null.Compare(Null)
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = Null.Compare(FromRawBytes([]byte{byte(TagNull)}))
	require.NoError(t, err)
	assert.Equal(t, 0, c, "explicit null orders like unset")
}

func TestCompare_NilElementsSortFirst(t *testing.T) {
	c, err := compareValues(t, []any{nil}, []any{int32(math.MinInt32)})
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestCompare_UnknownSameTag(t *testing.T) {
	a := FromRawBytes([]byte{0xEE, 0x01})
	b := FromRawBytes([]byte{0xEE, 0x02})

	c, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestCompare_UnknownTagAgainstKnown(t *testing.T) {
	_, err := FromRawBytes([]byte{0xEE}).Compare(mustCreate(t, int32(1)))
	assert.ErrorIs(t, err, ErrIncompatibleTypes)
}

func TestCompare_CorruptRawPayload(t *testing.T) {
	good := mustCreate(t, int32(1))
	bad := FromRawBytes([]byte{byte(TagInt32), 0x00})

	_, err := good.Compare(bad)
	assert.ErrorIs(t, err, ErrCorruptPayload)

	_, err = FromRawBytes([]byte{byte(TagString), 0, 0, 0, 9, 'a'}).Compare(mustCreate(t, "a"))
	assert.ErrorIs(t, err, ErrCorruptPayload)
}

func TestCompare_NullWithTrailingBytes(t *testing.T) {
	bad := FromRawBytes([]byte{byte(TagNull), 0x09})

	_, err := bad.Compare(Null)
	assert.ErrorIs(t, err, ErrCorruptPayload)

	_, err = mustCreate(t, int32(1)).Compare(bad)
	assert.ErrorIs(t, err, ErrCorruptPayload)

	_, err = Builtin().Decode(bad.RawBytes())
	assert.ErrorIs(t, err, ErrCorruptPayload)
}

func TestCompare_RawMatchesDecoded(t *testing.T) {
	reg := Builtin()
	values := []any{int32(-4), int32(3), int32(0)}
	for _, a := range values {
		for _, b := range values {
			raw, err := reg.Compare(mustCreate(t, a), mustCreate(t, b))
			require.NoError(t, err)
			native, err := reg.CompareNative(a, b)
			require.NoError(t, err)
			assert.Equal(t, native, raw)
		}
	}
}

func TestCompareNative_Transitive(t *testing.T) {
	reg := Builtin()
	values := []any{int16(-3), int32(-1), float32(0.5), int64(1), testutil.Decimal("1.5"), 2.0}
	for i := range values {
		for j := range values {
			for k := range values {
				ij, err := reg.CompareNative(values[i], values[j])
				require.NoError(t, err)
				jk, err := reg.CompareNative(values[j], values[k])
				require.NoError(t, err)
				ik, err := reg.CompareNative(values[i], values[k])
				require.NoError(t, err)
				if ij <= 0 && jk <= 0 {
					assert.LessOrEqual(t, ik, 0, "%v <= %v <= %v", values[i], values[j], values[k])
				}
			}
		}
	}
}
