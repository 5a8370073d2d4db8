package graph

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rascat/gradoop/internal/property"
	"github.com/Rascat/gradoop/internal/testutil"
)

func TestProperties_NFCKeys(t *testing.T) {
	var p Properties
	decomposed := "Gru\u0308\u00dfe"
	composed := "Gr\u00fc\u00dfe"

	_, err := p.Set(decomposed, "x")
	require.NoError(t, err)

	assert.True(t, p.Has(composed))
	assert.Equal(t, []string{composed}, p.Keys())
	assert.Equal(t, 1, p.Len())
}

func TestProperties_SetUnsupported(t *testing.T) {
	var p Properties

	ok, err := p.Set("weird", struct{}{})
	require.NoError(t, err)
	assert.False(t, ok)

	v, present := p.Get("weird")
	require.True(t, present, "unsupported kinds are kept as unset")
	assert.True(t, v.IsNull())
}

func TestProperties_SetRawPassthrough(t *testing.T) {
	var p Properties
	p.SetRaw("flag", []byte{byte(property.TagBool), 0xFF})

	v, ok := p.Get("flag")
	require.True(t, ok)
	b, err := v.AsBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestProperties_RemoveAndKeys(t *testing.T) {
	var p Properties
	for _, k := range []string{"c", "a", "b"} {
		_, err := p.Set(k, int64(1))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
	assert.True(t, p.Remove("b"))
	assert.False(t, p.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, p.Keys())
}

func TestProperties_CloneIsIndependent(t *testing.T) {
	raw := []byte{byte(property.TagInt32), 0, 0, 0, 1}
	var p Properties
	p.SetRaw("n", raw)

	c := p.Clone()
	raw[4] = 9

	v, _ := c.Get("n")
	n, err := v.AsInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(1), n)
	assert.False(t, p.Equal(&c))
}

func TestElement_Copy(t *testing.T) {
	v := NewVertex(testutil.ID(1), "Person", testutil.ID(9))
	_, err := v.Properties.Set("name", "Alice")
	require.NoError(t, err)

	c := v.Copy()
	_, err = c.Properties.Set("name", "Bob")
	require.NoError(t, err)
	c.GraphIDs[0] = testutil.ID(10)

	name, _ := v.Properties.Get("name")
	assert.Equal(t, "Alice", name.String())
	assert.Equal(t, testutil.ID(9), v.GraphIDs[0])
}

func TestParseElementKind(t *testing.T) {
	k, err := ParseElementKind("edge")
	require.NoError(t, err)
	assert.Equal(t, KindEdge, k)

	_, err = ParseElementKind("node")
	assert.Error(t, err)
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator(testutil.ID(1), testutil.ID(2))

	assert.Equal(t, testutil.ID(1), gen.Generate())
	assert.Equal(t, testutil.ID(2), gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestUUIDv7Generator_Sortable(t *testing.T) {
	var gen UUIDv7Generator
	a := gen.Generate()
	time.Sleep(2 * time.Millisecond)
	b := gen.Generate()

	assert.Equal(t, 7, int(a.Version()))
	assert.Less(t, a.String(), b.String())
}

func TestLoadYAMLFile(t *testing.T) {
	g, err := LoadYAMLFile("testdata/community.yaml", testutil.NewDeterministicIDs())
	require.NoError(t, err)

	require.NotNil(t, g.Head)
	assert.Equal(t, "00000000-0000-0000-0000-0000000000aa", g.Head.ID.String())
	assert.Equal(t, "Community", g.Head.Label)
	require.Len(t, g.Vertices, 3)
	require.Len(t, g.Edges, 3)
	assert.Len(t, g.Elements(), 7)

	alice, bob, eve := g.Vertices[0], g.Vertices[1], g.Vertices[2]
	assert.Equal(t, testutil.ID(1), alice.ID)
	assert.Equal(t, []uuid.UUID{g.Head.ID}, alice.GraphIDs)

	age, _ := alice.Properties.Get("age")
	assert.True(t, age.IsInt32())
	age, _ = bob.Properties.Get("age")
	assert.True(t, age.IsInt64())
	age, _ = eve.Properties.Get("age")
	assert.True(t, age.IsShort())

	score, _ := bob.Properties.Get("score")
	d, err := score.AsDecimal()
	require.NoError(t, err)
	assert.Equal(t, "3.75", d.String())

	tags, _ := bob.Properties.Get("tags")
	list, err := tags.AsList()
	require.NoError(t, err)
	assert.Equal(t, []any{"db", "graphs"}, list)

	avatar, _ := eve.Properties.Get("avatar")
	b, err := avatar.AsBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF}, b)

	profile, _ := eve.Properties.Get("profile")
	m, err := profile.AsMap()
	require.NoError(t, err)
	assert.Equal(t, true, m["verified"])
	joined, ok := m["joined"].(time.Time)
	require.True(t, ok, "got %T", m["joined"])
	assert.True(t, joined.Equal(time.Date(2015, 6, 1, 10, 0, 0, 0, time.UTC)))

	knows := g.Edges[0]
	assert.Equal(t, alice.ID, knows.Source)
	assert.Equal(t, bob.ID, knows.Target)

	weight, _ := g.Edges[1].Properties.Get("weight")
	assert.True(t, weight.IsFloat32())

	ref, _ := g.Edges[2].Properties.Get("ref")
	id, err := ref.AsID()
	require.NoError(t, err)
	assert.Equal(t, g.Head.ID, id)
	token, _ := g.Edges[2].Properties.Get("token")
	tb, err := token.AsBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCA, 0xFE}, tb)
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown source",
			doc:  "vertices: [{key: a, label: V}]\nedges: [{label: e, source: x, target: a}]",
			want: "unknown source vertex",
		},
		{
			name: "duplicate key",
			doc:  "vertices: [{key: a, label: V}, {key: a, label: V}]",
			want: "duplicate key",
		},
		{
			name: "bad tag",
			doc:  "vertices: [{key: a, label: V, properties: {x: !unknown 1}}]",
			want: "unsupported tag",
		},
		{
			name: "bad int32",
			doc:  "vertices: [{key: a, label: V, properties: {x: !int32 99999999999}}]",
			want: "vertices[0]",
		},
		{
			name: "properties not a map",
			doc:  "vertices: [{key: a, label: V, properties: [1, 2]}]",
			want: "must be a mapping",
		},
		{
			name: "unknown field",
			doc:  "vertices: [{key: a, lable: V}]",
			want: "lable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc), testutil.NewDeterministicIDs())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	g, err := LoadYAML(strings.NewReader(""), testutil.NewDeterministicIDs())
	require.NoError(t, err)
	assert.Empty(t, g.Vertices)
	assert.Equal(t, testutil.ID(1), g.Head.ID)
}

func TestGraph_CopyRelaysRawBytes(t *testing.T) {
	g, err := LoadYAMLFile("testdata/community.yaml", testutil.NewDeterministicIDs())
	require.NoError(t, err)

	c := g.Copy()
	require.Len(t, c.Vertices, len(g.Vertices))
	for i := range g.Vertices {
		assert.True(t, g.Vertices[i].Properties.Equal(&c.Vertices[i].Properties))
		assert.NotSame(t, g.Vertices[i], c.Vertices[i])
	}
	assert.True(t, g.Head.Properties.Equal(&c.Head.Properties))
}
