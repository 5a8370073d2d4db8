package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rascat/gradoop/internal/graph"
	"github.com/Rascat/gradoop/internal/property"
	"github.com/Rascat/gradoop/internal/testutil"
)

func value(t *testing.T, x any) property.Value {
	t.Helper()
	v, err := property.Create(x)
	require.NoError(t, err)
	return v
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		a    any
		op   Operator
		b    any
		want bool
	}{
		{"int eq across widths", int32(5), OpEq, int64(5), true},
		{"int ne", int32(5), OpNe, int64(6), true},
		{"lt", int16(1), OpLt, 1.5, true},
		{"le equal", 2.0, OpLe, int32(2), true},
		{"gt false", "a", OpGt, "b", false},
		{"ge strings", "b", OpGe, "b", true},
		{"incompatible eq", "5", OpEq, int32(5), false},
		{"incompatible ne", "5", OpNe, int32(5), false},
		{"bool lt", false, OpLt, true, true},
		{"unset lt anything", nil, OpLt, int32(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(value(t, tt.a), tt.op, value(t, tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := Evaluate(value(t, int32(1)), Operator("~"), value(t, int32(1)))
	assert.Error(t, err)

	bad := property.FromRawBytes([]byte{byte(property.TagInt64), 0x00})
	_, err = Evaluate(bad, OpEq, value(t, int64(1)))
	assert.ErrorIs(t, err, property.ErrCorruptPayload)
}

func TestParseOperator(t *testing.T) {
	for in, want := range map[string]Operator{
		"=": OpEq, "==": OpEq, "ne": OpNe, "<": OpLt, "le": OpLe, "gt": OpGt, ">=": OpGe,
	} {
		got, err := ParseOperator(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOperator("<>")
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	g, err := graph.LoadYAMLFile("../graph/testdata/community.yaml", testutil.NewDeterministicIDs())
	require.NoError(t, err)

	got, err := Filter(g.Vertices, "age", OpGe, value(t, int64(35)))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, g.Vertices[1].ID, got[0].ID)
	assert.Equal(t, g.Vertices[2].ID, got[1].ID)

	got, err = Filter(g.Vertices, "city", OpEq, value(t, "Leipzig"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, g.Vertices[0].ID, got[0].ID)

	// score is a string on nobody, so nothing is comparable
	got, err = Filter(g.Vertices, "score", OpNe, value(t, "x"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Filter(g.Edges, "since", OpLt, value(t, int32(2014)))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, g.Edges[1].ID, got[0].ID)
}

func TestFilter_SkipsUnsetValues(t *testing.T) {
	set := graph.NewVertex(testutil.ID(1), "V")
	_, err := set.Properties.Set("n", int32(7))
	require.NoError(t, err)

	unset := graph.NewVertex(testutil.ID(2), "V")
	stored, err := unset.Properties.Set("n", 7) // plain int has no strategy
	require.NoError(t, err)
	require.False(t, stored)
	require.True(t, unset.Properties.Has("n"))

	for _, op := range []Operator{OpLt, OpLe, OpNe} {
		got, err := Filter([]*graph.Element{unset, set}, "n", op, value(t, int32(100)))
		require.NoError(t, err, op)
		require.Len(t, got, 1, op)
		assert.Equal(t, set.ID, got[0].ID, op)
	}
}
