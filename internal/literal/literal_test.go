package literal

import (
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	tests := []struct {
		expr string
		want any
	}{
		{"null", nil},
		{"true", true},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"1.5", 1.5},
		{`"Alice"`, "Alice"},
		{`'\x00\xff'`, []byte{0x00, 0xFF}},
		{`[1, "a", false]`, []any{int64(1), "a", false}},
		{`[]`, []any{}},
		{`{since: 2014, tags: ["db"]}`, map[string]any{"since": int64(2014), "tags": []any{"db"}}},
		{`{}`, map[string]any{}},
		{`1 + 2`, int64(3)},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Narrow(t *testing.T) {
	tests := []struct {
		expr string
		as   string
		want any
	}{
		{"7", "int16", int16(7)},
		{"-100", "int32", int32(-100)},
		{"1", "int64", int64(1)},
		{"1.5", "float32", float32(1.5)},
		{"2", "float64", float64(2)},
		{"true", "bool", true},
		{`"x"`, "string", "x"},
		{`'ab'`, "bytes", []byte("ab")},
		{`"00000000-0000-0000-0000-000000000001"`, "id", uuid.MustParse("00000000-0000-0000-0000-000000000001")},
		{`"2015-06-01T12:00:00+02:00"`, "datetime", time.Date(2015, 6, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.as+"/"+tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr, tt.as)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Decimal(t *testing.T) {
	got, err := Parse(`"1.50"`, "decimal")
	require.NoError(t, err)
	d, ok := got.(*apd.Decimal)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, "1.50", d.String())

	got, err = Parse("1.5", "decimal")
	require.NoError(t, err)
	d = got.(*apd.Decimal)
	assert.Equal(t, 0, d.Cmp(apd.New(15, -1)))

	got, err = Parse("123456789012345678901234567890", "decimal")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", got.(*apd.Decimal).String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		as   string
	}{
		{"syntax", "{", ""},
		{"incomplete", "int", ""},
		{"int64 overflow", "123456789012345678901234567890", ""},
		{"int16 overflow", "40000", "int16"},
		{"int32 overflow", "3000000000", "int32"},
		{"not an int", `"a"`, "int32"},
		{"bad id", `"nope"`, "id"},
		{"bad datetime", `"yesterday"`, "datetime"},
		{"decimal from list", `[1]`, "decimal"},
		{"unknown kind", "1", "uint8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr, tt.as)
			assert.Error(t, err)
		})
	}
}
